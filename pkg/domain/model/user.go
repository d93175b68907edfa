package model

import "github.com/taskdeck-io/taskdeck/pkg/domain/types"

// User is a member of the roster. Users are referenced by projects,
// tasks, activities and notifications but are not mutated by this
// service; the roster is loaded at startup.
type User struct {
	ID       types.UserID `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email" masq:"secret"`
}
