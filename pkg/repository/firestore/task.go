package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_tasks"
	}
	return "tasks"
}

func (r *taskRepository) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	created := *t
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	var t model.Task
	if err := docSnap.DataTo(&t); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}

	return &t, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	return r.collect(iter)
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).
		Where("Project", "==", projectID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return r.collect(iter)
}

func (r *taskRepository) collect(iter *firestore.DocumentIterator) ([]*model.Task, error) {
	var tasks []*model.Task
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks")
		}

		var t model.Task
		if err := docSnap.DataTo(&t); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		tasks = append(tasks, &t)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, t *model.Task) (*model.Task, error) {
	docRef := r.client.Collection(r.collection()).Doc(t.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", t.ID))
		}
		return nil, goerr.Wrap(err, "failed to check task existence", goerr.V("id", t.ID))
	}

	var stored model.Task
	if err := existing.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", t.ID))
	}

	updated := *t
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("id", t.ID))
	}

	return &updated, nil
}
