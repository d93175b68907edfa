package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.Status
		want   bool
	}{
		{
			name:   "valid backlog",
			status: types.StatusBacklog,
			want:   true,
		},
		{
			name:   "valid in progress",
			status: types.StatusInProgress,
			want:   true,
		},
		{
			name:   "valid review",
			status: types.StatusReview,
			want:   true,
		},
		{
			name:   "valid done",
			status: types.StatusDone,
			want:   true,
		},
		{
			name:   "invalid status",
			status: types.Status("Shipped"),
			want:   false,
		},
		{
			name:   "empty status",
			status: types.Status(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Status
		wantErr bool
	}{
		{
			name:  "valid backlog",
			input: "Backlog",
			want:  types.StatusBacklog,
		},
		{
			name:  "valid done",
			input: "Done",
			want:  types.StatusDone,
		},
		{
			name:    "lowercase is invalid",
			input:   "done",
			wantErr: true,
		},
		{
			name:    "empty status",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseStatus(tt.input)
			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestStatus_Normalize(t *testing.T) {
	gt.Value(t, types.Status("").Normalize()).Equal(types.StatusBacklog)
	gt.Value(t, types.StatusDone.Normalize()).Equal(types.StatusDone)
}

func TestAllStatuses(t *testing.T) {
	all := types.AllStatuses()
	gt.Number(t, len(all)).Equal(4)
	gt.Value(t, all[0]).Equal(types.StatusBacklog)
	gt.Value(t, all[3]).Equal(types.StatusDone)
}
