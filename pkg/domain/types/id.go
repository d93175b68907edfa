package types

import "github.com/google/uuid"

// ID types for each entity collection. All IDs are UUID strings assigned
// by the repository layer at creation time.

type UserID string

func NewUserID() UserID { return UserID(uuid.NewString()) }

func (id UserID) String() string { return string(id) }

type ProjectID string

func NewProjectID() ProjectID { return ProjectID(uuid.NewString()) }

func (id ProjectID) String() string { return string(id) }

type TaskID string

func NewTaskID() TaskID { return TaskID(uuid.NewString()) }

func (id TaskID) String() string { return string(id) }

type ActivityID string

func NewActivityID() ActivityID { return ActivityID(uuid.NewString()) }

func (id ActivityID) String() string { return string(id) }

type NotificationID string

func NewNotificationID() NotificationID { return NotificationID(uuid.NewString()) }

func (id NotificationID) String() string { return string(id) }
