package interfaces

import (
	"context"

	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// RollCallRequest carries an optional target time. An invalid Day or a nil
// or out-of-range Minute falls back to the current local time.
type RollCallRequest struct {
	Day    types.Day
	Minute *types.ClockTime
}

// EditRequest changes a post's status, comment, or both.
type EditRequest struct {
	PostID             types.PostID
	Status             *string
	Comment            *string
	AcknowledgePrivacy bool
	// Origin is the editor identity attached to the postUpdated broadcast.
	Origin string
}

type RollCallUsecases interface {
	TriggerRollCall(ctx context.Context, req RollCallRequest) (*alert.Alert, post.Posts, error)
	Preview(ctx context.Context, req RollCallRequest) (roster.Entries, error)
	UpdatePost(ctx context.Context, req EditRequest) (*post.Post, error)
	ListAlerts(ctx context.Context) (alert.Alerts, error)
	// GetRoster returns the posts of alertID, or of the live alert when
	// alertID is empty. The returned alert is nil when nothing is live.
	GetRoster(ctx context.Context, alertID types.AlertID) (*alert.Alert, post.Posts, error)
	Running() bool
}
