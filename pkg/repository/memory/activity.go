package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities map[types.ActivityID]*model.Activity
}

func newActivityRepository() *activityRepository {
	return &activityRepository{
		activities: make(map[types.ActivityID]*model.Activity),
	}
}

func copyActivity(a *model.Activity) *model.Activity {
	copied := *a
	return &copied
}

func (r *activityRepository) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyActivity(a)
	if created.ID == "" {
		created.ID = types.NewActivityID()
	}
	created.CreatedAt = time.Now().UTC()

	r.activities[created.ID] = created
	return copyActivity(created), nil
}

func (r *activityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]*model.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		activities = append(activities, copyActivity(a))
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	return activities, nil
}
