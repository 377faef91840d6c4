package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Firestore) PutAlert(ctx context.Context, a *alert.Alert) error {
	if err := a.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid alert", goerr.T(errs.TagValidation))
	}

	if _, err := r.db.Collection(collectionAlerts).Doc(a.ID.String()).Set(ctx, a); err != nil {
		return r.eb.Wrap(err, "failed to put alert",
			goerr.TV(errutil.AlertIDKey, a.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) GetAlert(ctx context.Context, alertID types.AlertID) (*alert.Alert, error) {
	doc, err := r.db.Collection(collectionAlerts).Doc(alertID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get alert",
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDatabase))
	}

	var a alert.Alert
	if err := doc.DataTo(&a); err != nil {
		return nil, r.eb.Wrap(err, "failed to convert data to alert",
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagInternal))
	}
	return &a, nil
}

func (r *Firestore) GetLiveAlert(ctx context.Context) (*alert.Alert, error) {
	alerts, err := r.queryAlerts(ctx, r.db.Collection(collectionAlerts).
		Where("archived", "==", false).
		OrderBy("created_at", firestore.Desc).
		Limit(1))
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}
	return alerts[0], nil
}

func (r *Firestore) ListAlerts(ctx context.Context) (alert.Alerts, error) {
	return r.queryAlerts(ctx, r.db.Collection(collectionAlerts).OrderBy("created_at", firestore.Asc))
}

func (r *Firestore) queryAlerts(ctx context.Context, q firestore.Query) (alert.Alerts, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var alerts alert.Alerts
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to iterate alerts", goerr.T(errs.TagDatabase))
		}

		var a alert.Alert
		if err := doc.DataTo(&a); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to alert",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagInternal))
		}
		alerts = append(alerts, &a)
	}
	return alerts, nil
}

func (r *Firestore) ArchiveLiveAlerts(ctx context.Context) (alert.Alerts, error) {
	live, err := r.queryAlerts(ctx, r.db.Collection(collectionAlerts).Where("archived", "==", false))
	if err != nil {
		return nil, err
	}
	if len(live) == 0 {
		return nil, nil
	}

	bw := r.db.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, a := range live {
		job, err := bw.Update(r.db.Collection(collectionAlerts).Doc(a.ID.String()), []firestore.Update{
			{Path: "archived", Value: true},
		})
		if err != nil {
			bw.End()
			return nil, r.eb.Wrap(err, "failed to enqueue archive",
				goerr.TV(errutil.AlertIDKey, a.ID),
				goerr.T(errs.TagDatabase))
		}
		jobs = append(jobs, job)
		a.Archived = true
	}
	if err := r.commit(bw, jobs, collectionAlerts); err != nil {
		return nil, err
	}
	return live, nil
}

func (r *Firestore) UpdateAlertStats(ctx context.Context, alertID types.AlertID, stats alert.Stats, updatedAt time.Time) error {
	_, err := r.db.Collection(collectionAlerts).Doc(alertID.String()).Update(ctx, []firestore.Update{
		{Path: "stats", Value: stats},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r.eb.Wrap(err, "alert not found",
				goerr.TV(errutil.AlertIDKey, alertID),
				goerr.T(errs.TagNotFound))
		}
		return r.eb.Wrap(err, "failed to update alert stats",
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) DeleteAlerts(ctx context.Context, alertIDs []types.AlertID) error {
	if len(alertIDs) == 0 {
		return nil
	}

	bw := r.db.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, id := range alertIDs {
		job, err := bw.Delete(r.db.Collection(collectionAlerts).Doc(id.String()))
		if err != nil {
			bw.End()
			return r.eb.Wrap(err, "failed to enqueue alert deletion",
				goerr.TV(errutil.AlertIDKey, id),
				goerr.T(errs.TagDatabase))
		}
		jobs = append(jobs, job)
	}
	return r.commit(bw, jobs, collectionAlerts)
}
