package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// Repository is the document store for alerts, posts and audit entries.
// Get* methods return (nil, nil) when the document does not exist.
type Repository interface {
	PutAlert(ctx context.Context, alert *alert.Alert) error
	GetAlert(ctx context.Context, alertID types.AlertID) (*alert.Alert, error)
	GetLiveAlert(ctx context.Context) (*alert.Alert, error)
	// ListAlerts returns every alert ordered by creation time, oldest first.
	ListAlerts(ctx context.Context) (alert.Alerts, error)
	// ArchiveLiveAlerts marks all non-archived alerts as archived and returns them.
	ArchiveLiveAlerts(ctx context.Context) (alert.Alerts, error)
	// UpdateAlertStats writes only the stats and updated timestamp so that a
	// concurrent archive is never reverted.
	UpdateAlertStats(ctx context.Context, alertID types.AlertID, stats alert.Stats, updatedAt time.Time) error
	DeleteAlerts(ctx context.Context, alertIDs []types.AlertID) error

	BatchPutPosts(ctx context.Context, posts post.Posts) error
	PutPost(ctx context.Context, post *post.Post) error
	GetPost(ctx context.Context, postID types.PostID) (*post.Post, error)
	GetPostsByAlert(ctx context.Context, alertID types.AlertID) (post.Posts, error)
	CountPostsByStatus(ctx context.Context, alertID types.AlertID) (map[types.PostStatus]int, error)
	// DeleteStalePosts removes every post whose alert is not in keep, which
	// includes orphans. It returns the number of deleted posts.
	DeleteStalePosts(ctx context.Context, keep []types.AlertID) (int, error)

	PutAudit(ctx context.Context, entry *audit.Entry) error
	GetAuditsByPost(ctx context.Context, postID types.PostID) ([]*audit.Entry, error)
}
