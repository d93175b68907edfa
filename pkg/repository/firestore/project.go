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

type projectRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProjectRepository(client *firestore.Client) *projectRepository {
	return &projectRepository{client: client}
}

func (r *projectRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_projects"
	}
	return "projects"
}

func (r *projectRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	now := time.Now().UTC()
	created := *p
	if created.ID == "" {
		created.ID = types.NewProjectID()
	}
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *projectRepository) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("id", id))
	}

	var p model.Project
	if err := docSnap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project", goerr.V("id", id))
	}

	return &p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var projects []*model.Project
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate projects")
		}

		var p model.Project
		if err := docSnap.DataTo(&p); err != nil {
			return nil, goerr.Wrap(err, "failed to decode project", goerr.V("doc_id", docSnap.Ref.ID))
		}

		projects = append(projects, &p)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	docRef := r.client.Collection(r.collection()).Doc(p.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", p.ID))
		}
		return nil, goerr.Wrap(err, "failed to check project existence", goerr.V("id", p.ID))
	}

	var stored model.Project
	if err := existing.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project", goerr.V("id", p.ID))
	}

	updated := *p
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update project", goerr.V("id", p.ID))
	}

	return &updated, nil
}
