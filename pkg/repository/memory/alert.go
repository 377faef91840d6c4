package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
)

func (r *Memory) PutAlert(ctx context.Context, a *alert.Alert) error {
	if err := a.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid alert", goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seq[a.ID]; !ok {
		r.seq[a.ID] = r.nextSeq
		r.nextSeq++
	}
	c := *a
	r.alerts[a.ID] = &c
	return nil
}

func (r *Memory) GetAlert(ctx context.Context, alertID types.AlertID) (*alert.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alerts[alertID]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *Memory) GetLiveAlert(ctx context.Context) (*alert.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live := r.sortedAlerts().Live()
	if live == nil {
		return nil, nil
	}
	c := *live
	return &c, nil
}

func (r *Memory) ListAlerts(ctx context.Context) (alert.Alerts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedAlerts()
	alerts := make(alert.Alerts, len(sorted))
	for i, a := range sorted {
		c := *a
		alerts[i] = &c
	}
	return alerts, nil
}

// sortedAlerts must be called with r.mu held.
func (r *Memory) sortedAlerts() alert.Alerts {
	alerts := make(alert.Alerts, 0, len(r.alerts))
	for _, a := range r.alerts {
		alerts = append(alerts, a)
	}
	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].CreatedAt.Equal(alerts[j].CreatedAt) {
			return alerts[i].CreatedAt.Before(alerts[j].CreatedAt)
		}
		return r.seq[alerts[i].ID] < r.seq[alerts[j].ID]
	})
	return alerts
}

func (r *Memory) ArchiveLiveAlerts(ctx context.Context) (alert.Alerts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var archived alert.Alerts
	for _, a := range r.sortedAlerts() {
		if a.Archived {
			continue
		}
		a.Archived = true
		c := *a
		archived = append(archived, &c)
	}
	return archived, nil
}

func (r *Memory) UpdateAlertStats(ctx context.Context, alertID types.AlertID, stats alert.Stats, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[alertID]
	if !ok {
		return r.eb.New("alert not found",
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagNotFound))
	}
	a.Stats = stats
	a.UpdatedAt = updatedAt
	return nil
}

func (r *Memory) DeleteAlerts(ctx context.Context, alertIDs []types.AlertID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range alertIDs {
		delete(r.alerts, id)
		delete(r.seq, id)
	}
	return nil
}
