package interfaces

// Repository defines the interface for data persistence. Each entity
// lives in its own document collection.
type Repository interface {
	Project() ProjectRepository
	Task() TaskRepository
	User() UserRepository
	Activity() ActivityRepository
	Notification() NotificationRepository

	Close() error
}
