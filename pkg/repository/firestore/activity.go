package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type activityRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newActivityRepository(client *firestore.Client) *activityRepository {
	return &activityRepository{client: client}
}

func (r *activityRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_activities"
	}
	return "activities"
}

func (r *activityRepository) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	created := *a
	if created.ID == "" {
		created.ID = types.NewActivityID()
	}
	created.CreatedAt = time.Now().UTC()

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create activity", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *activityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var activities []*model.Activity
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate activities")
		}

		var a model.Activity
		if err := docSnap.DataTo(&a); err != nil {
			return nil, goerr.Wrap(err, "failed to decode activity", goerr.V("doc_id", docSnap.Ref.ID))
		}

		activities = append(activities, &a)
	}

	return activities, nil
}
