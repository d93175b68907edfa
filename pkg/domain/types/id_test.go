package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

func TestNewIDs(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		id := types.NewUserID()
		gt.Value(t, id.String()).NotEqual("")
		gt.Value(t, types.NewUserID()).NotEqual(id)
	})

	t.Run("project", func(t *testing.T) {
		id := types.NewProjectID()
		gt.Value(t, id.String()).NotEqual("")
		gt.Value(t, types.NewProjectID()).NotEqual(id)
	})

	t.Run("task", func(t *testing.T) {
		id := types.NewTaskID()
		gt.Value(t, id.String()).NotEqual("")
		gt.Value(t, types.NewTaskID()).NotEqual(id)
	})

	t.Run("activity", func(t *testing.T) {
		id := types.NewActivityID()
		gt.Value(t, id.String()).NotEqual("")
		gt.Value(t, types.NewActivityID()).NotEqual(id)
	})

	t.Run("notification", func(t *testing.T) {
		id := types.NewNotificationID()
		gt.Value(t, id.String()).NotEqual("")
		gt.Value(t, types.NewNotificationID()).NotEqual(id)
	})
}
