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

type notificationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNotificationRepository(client *firestore.Client) *notificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_notifications"
	}
	return "notifications"
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	created := *n
	if created.ID == "" {
		created.ID = types.NewNotificationID()
	}
	created.Timestamp = time.Now().UTC()

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *notificationRepository) Get(ctx context.Context, id types.NotificationID) (*model.Notification, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get notification", goerr.V("id", id))
	}

	var n model.Notification
	if err := docSnap.DataTo(&n); err != nil {
		return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("id", id))
	}

	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	iter := r.client.Collection(r.collection()).
		Where("User", "==", userID.String()).
		OrderBy("Timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*model.Notification
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications")
		}

		var n model.Notification
		if err := docSnap.DataTo(&n); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("doc_id", docSnap.Ref.ID))
		}

		notifications = append(notifications, &n)
	}

	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	docRef := r.client.Collection(r.collection()).Doc(n.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", n.ID))
		}
		return nil, goerr.Wrap(err, "failed to check notification existence", goerr.V("id", n.ID))
	}

	var stored model.Notification
	if err := existing.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("id", n.ID))
	}

	updated := *n
	updated.Timestamp = stored.Timestamp

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update notification", goerr.V("id", n.ID))
	}

	return &updated, nil
}
