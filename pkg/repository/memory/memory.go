package memory

import (
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
)

// Memory is an in-memory repository used for development and tests.
type Memory struct {
	project      *projectRepository
	task         *taskRepository
	user         *userRepository
	activity     *activityRepository
	notification *notificationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		project:      newProjectRepository(),
		task:         newTaskRepository(),
		user:         newUserRepository(),
		activity:     newActivityRepository(),
		notification: newNotificationRepository(),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Activity() interfaces.ActivityRepository {
	return m.activity
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) Close() error {
	return nil
}
