package usecase

import (
	"github.com/taskdeck-io/taskdeck/pkg/domain/interfaces"
)

// UseCases bundles the application's use cases around one repository.
type UseCases struct {
	repo interfaces.Repository

	Project      *ProjectUseCase
	Task         *TaskUseCase
	User         *UserUseCase
	Activity     *ActivityUseCase
	Notification *NotificationUseCase
	Dashboard    *DashboardUseCase
}

func New(repo interfaces.Repository) *UseCases {
	activity := NewActivityUseCase(repo)
	notification := NewNotificationUseCase(repo)

	return &UseCases{
		repo:         repo,
		Activity:     activity,
		Notification: notification,
		Project:      NewProjectUseCase(repo, activity, notification),
		Task:         NewTaskUseCase(repo, activity),
		User:         NewUserUseCase(repo),
		Dashboard:    NewDashboardUseCase(repo),
	}
}
