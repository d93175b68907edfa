package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
)

// Firestore is the production repository backend. Each entity type lives
// in its own collection.
type Firestore struct {
	client       *firestore.Client
	project      *projectRepository
	task         *taskRepository
	user         *userRepository
	activity     *activityRepository
	notification *notificationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes every collection name, for sharing one
// database between environments.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.project.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
		f.activity.collectionPrefix = prefix
		f.notification.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:       client,
		project:      newProjectRepository(client),
		task:         newTaskRepository(client),
		user:         newUserRepository(client),
		activity:     newActivityRepository(client),
		notification: newNotificationRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Project() interfaces.ProjectRepository {
	return f.project
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Activity() interfaces.ActivityRepository {
	return f.activity
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
