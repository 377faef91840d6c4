package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

// TriggerRollCall builds a roster for the requested time, archives the
// live alert and stores the new one with its posts. Viewers receive the
// new roster and then the alert history before the next roll-call can
// start.
func (uc *UseCases) TriggerRollCall(ctx context.Context, req interfaces.RollCallRequest) (*alert.Alert, post.Posts, error) {
	release, err := uc.coordinator.acquire()
	if err != nil {
		return nil, nil, err
	}
	defer release()

	identity := user.From(ctx)
	if err := identity.Validate(); err != nil {
		return nil, nil, goerr.Wrap(err, "roll-call requires an authenticated user", goerr.T(errs.TagUnauthorized))
	}

	day, at := resolveTarget(ctx, req)
	logger := logging.From(ctx).With(slog.Any("day", day), slog.Any("minute", at))
	ctx = logging.With(ctx, logger)
	logger.Info("roll-call started", "triggered_by", identity.ID)

	entries, err := uc.buildRoster(ctx, day, at)
	if err != nil {
		return nil, nil, err
	}

	newAlert, posts, archived, err := uc.persistRoster(ctx, entries, identity.ID)
	if err != nil {
		return nil, nil, err
	}

	uc.prune(ctx)

	uc.broadcaster.PublishRoster(ctx, newAlert.ID, posts)
	if alerts, err := uc.ListAlerts(ctx); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to list alerts for broadcast"))
	} else {
		uc.broadcaster.PublishHistory(ctx, alerts)
	}

	uc.snapshot(ctx, archived)

	logger.Info("roll-call completed",
		"alert_id", newAlert.ID,
		"classes", len(posts),
		"archived", len(archived))
	return newAlert, posts, nil
}

// Preview builds the roster that a roll-call would produce without storing
// or broadcasting anything.
func (uc *UseCases) Preview(ctx context.Context, req interfaces.RollCallRequest) (roster.Entries, error) {
	day, at := resolveTarget(ctx, req)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.Any("day", day), slog.Any("minute", at)))
	return uc.buildRoster(ctx, day, at)
}

func resolveTarget(ctx context.Context, req interfaces.RollCallRequest) (types.Day, types.ClockTime) {
	now := clock.LocalNow(ctx)

	day := req.Day
	if !day.Valid() {
		day = types.DayOf(now)
	}

	at := types.ClockTimeOf(now)
	if req.Minute != nil && req.Minute.Valid() {
		at = *req.Minute
	}
	return day, at
}

func (uc *UseCases) buildRoster(ctx context.Context, day types.Day, at types.ClockTime) (roster.Entries, error) {
	if uc.timetable == nil {
		return nil, goerr.New("timetable client is not configured", goerr.T(errs.TagInternal))
	}

	session, err := uc.timetable.Authenticate(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate to timetable", goerr.T(errs.TagTimetableAuth))
	}
	defer func() {
		if err := uc.timetable.Logout(ctx, session); err != nil {
			logging.From(ctx).Warn("failed to logout from timetable", logging.ErrAttr(err))
		}
	}()

	dir, err := uc.fetchDirectory(ctx, session)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, classID types.ClassID) ([]*timetable.Lesson, error) {
		lessons, err := uc.timetable.ListLessons(ctx, session, classID, day)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list lessons",
				goerr.TV(errutil.ClassIDKey, classID),
				goerr.TV(errutil.DayKey, day),
				goerr.T(errs.TagTimetableLesson))
		}
		return lessons, nil
	}

	return uc.builder.Build(ctx, dir, day, at, fetch)
}

func (uc *UseCases) fetchDirectory(ctx context.Context, session *timetable.Session) (*timetable.Directory, error) {
	teachers, err := uc.timetable.ListTeachers(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list teachers", goerr.T(errs.TagTimetableTeacher))
	}
	classes, err := uc.timetable.ListClasses(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list classes", goerr.T(errs.TagTimetableClass))
	}
	rooms, err := uc.timetable.ListRooms(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list rooms", goerr.T(errs.TagTimetableRoom))
	}

	logging.From(ctx).Debug("timetable directory fetched",
		"teachers", len(teachers),
		"classes", len(classes),
		"rooms", len(rooms))

	return &timetable.Directory{
		Teachers: teachers,
		Classes:  classes,
		Rooms:    rooms,
	}, nil
}

// persistRoster archives the live alerts and stores the new alert with its
// posts. When the new alert or its posts cannot be stored, the new alert is
// removed and the archived alerts are made live again.
func (uc *UseCases) persistRoster(ctx context.Context, entries roster.Entries, triggeredBy string) (*alert.Alert, post.Posts, alert.Alerts, error) {
	archived, err := uc.repository.ArchiveLiveAlerts(ctx)
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to archive live alerts", goerr.T(errs.TagPersistence))
	}

	newAlert := alert.New(ctx, len(entries), triggeredBy)
	if err := uc.repository.PutAlert(ctx, &newAlert); err != nil {
		uc.restoreLiveAlerts(ctx, archived)
		return nil, nil, nil, goerr.Wrap(err, "failed to put alert",
			goerr.TV(errutil.AlertIDKey, newAlert.ID),
			goerr.T(errs.TagPersistence))
	}

	posts := entries.ToPosts(newAlert.ID, newAlert.CreatedAt)
	if err := uc.repository.BatchPutPosts(ctx, posts); err != nil {
		if delErr := uc.repository.DeleteAlerts(context.WithoutCancel(ctx), []types.AlertID{newAlert.ID}); delErr != nil {
			errs.Handle(ctx, goerr.Wrap(delErr, "failed to roll back alert", goerr.TV(errutil.AlertIDKey, newAlert.ID)))
		}
		uc.restoreLiveAlerts(ctx, archived)
		return nil, nil, nil, goerr.Wrap(err, "failed to put posts",
			goerr.TV(errutil.AlertIDKey, newAlert.ID),
			goerr.TV(errutil.CountKey, len(posts)),
			goerr.T(errs.TagPersistence))
	}

	return &newAlert, posts, archived, nil
}

// restoreLiveAlerts undoes ArchiveLiveAlerts after a failed roll-call. It
// runs on a detached context because the failure is often a cancellation.
func (uc *UseCases) restoreLiveAlerts(ctx context.Context, archived alert.Alerts) {
	ctx = context.WithoutCancel(ctx)
	for _, a := range archived {
		c := *a
		c.Archived = false
		if err := uc.repository.PutAlert(ctx, &c); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to restore live alert", goerr.TV(errutil.AlertIDKey, a.ID)))
		}
	}
}

// prune keeps the newest alerts up to the retention limit. Posts go first,
// and alerts are deleted only when that succeeded. Failures are reported
// but do not fail the roll-call.
func (uc *UseCases) prune(ctx context.Context) {
	alerts, err := uc.repository.ListAlerts(ctx)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to list alerts for retention"))
		return
	}

	expired := alerts.Expired(uc.retention)
	keep := alerts[len(expired):].IDs()

	deleted, err := uc.repository.DeleteStalePosts(ctx, keep)
	if err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to delete stale posts", goerr.V("keep", len(keep))))
		return
	}

	if len(expired) > 0 {
		if err := uc.repository.DeleteAlerts(ctx, expired.IDs()); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to delete expired alerts", goerr.TV(errutil.CountKey, len(expired))))
			return
		}
	}

	if deleted > 0 || len(expired) > 0 {
		logging.From(ctx).Info("alerts pruned",
			"alerts", len(expired),
			"posts", deleted,
			"retention", uc.retention)
	}
}
