package alert

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
)

type Stats struct {
	Total      int `json:"total" firestore:"total"`
	Complete   int `json:"complete" firestore:"complete"`
	Incomplete int `json:"incomplete" firestore:"incomplete"`
	Undefined  int `json:"undefined" firestore:"undefined"`
}

// NewStats builds the aggregate from per-status counts.
func NewStats(counts map[types.PostStatus]int) Stats {
	s := Stats{
		Complete:   counts[types.PostStatusComplete],
		Incomplete: counts[types.PostStatusIncomplete],
		Undefined:  counts[types.PostStatusUndefined],
	}
	s.Total = s.Complete + s.Incomplete + s.Undefined
	return s
}

// Alert is one fire-drill occurrence. Only one alert is live
// (Archived == false) at any time.
type Alert struct {
	ID          types.AlertID `json:"id" firestore:"id"`
	ClassCount  int           `json:"class_count" firestore:"class_count"`
	Archived    bool          `json:"archived" firestore:"archived"`
	Stats       Stats         `json:"stats" firestore:"stats"`
	TriggeredBy string        `json:"triggered_by" firestore:"triggered_by"`
	CreatedAt   time.Time     `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" firestore:"updated_at"`
}

// New creates a live alert for a roster of classCount rows, all undefined.
func New(ctx context.Context, classCount int, triggeredBy string) Alert {
	now := clock.LocalNow(ctx)
	return Alert{
		ID:          types.NewAlertID(),
		ClassCount:  classCount,
		TriggeredBy: triggeredBy,
		Stats: Stats{
			Total:     classCount,
			Undefined: classCount,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (x *Alert) Validate() error {
	if x.ID == types.EmptyAlertID {
		return goerr.New("alert has empty ID")
	}
	if x.ClassCount < 0 {
		return goerr.New("negative class count", goerr.V("alert_id", x.ID), goerr.V("class_count", x.ClassCount))
	}
	return nil
}

func (x *Alert) Live() bool {
	return !x.Archived
}

type Alerts []*Alert

// Live returns the first non-archived alert, or nil.
func (x Alerts) Live() *Alert {
	for _, a := range x {
		if a.Live() {
			return a
		}
	}
	return nil
}

func (x Alerts) IDs() []types.AlertID {
	ids := make([]types.AlertID, len(x))
	for i, a := range x {
		ids[i] = a.ID
	}
	return ids
}

// Expired returns the alerts beyond the newest keep entries. The receiver
// must be ordered oldest first.
func (x Alerts) Expired(keep int) Alerts {
	if keep < 0 || len(x) <= keep {
		return nil
	}
	return x[:len(x)-keep]
}
