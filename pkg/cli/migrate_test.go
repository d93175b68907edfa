package cli

import (
	"testing"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
)

func TestIndexConfigCoversCompositeQueries(t *testing.T) {
	cfg := getIndexConfig()

	byName := make(map[string]fireconf.Collection)
	for _, c := range cfg.Collections {
		byName[c.Name] = c
	}

	tasks, ok := byName["tasks"]
	gt.Bool(t, ok).True()
	gt.Array(t, tasks.Indexes).Length(1)
	gt.Value(t, tasks.Indexes[0].Fields[0].Path).Equal("Project")
	gt.Value(t, tasks.Indexes[0].Fields[0].Order).Equal(fireconf.OrderAscending)
	gt.Value(t, tasks.Indexes[0].Fields[1].Path).Equal("CreatedAt")
	gt.Value(t, tasks.Indexes[0].Fields[1].Order).Equal(fireconf.OrderDescending)

	notifications, ok := byName["notifications"]
	gt.Bool(t, ok).True()
	gt.Array(t, notifications.Indexes).Length(1)
	gt.Value(t, notifications.Indexes[0].Fields[0].Path).Equal("User")
	gt.Value(t, notifications.Indexes[0].Fields[1].Path).Equal("Timestamp")
	gt.Value(t, notifications.Indexes[0].Fields[1].Order).Equal(fireconf.OrderDescending)
}
