package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/async"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

// editStatusInvalid is accepted from clients but leaves the status as is.
const editStatusInvalid = "invalid"

// UpdatePost changes the status and/or comment of a post of the live
// alert. The comment is checked before anything is loaded or written.
func (uc *UseCases) UpdatePost(ctx context.Context, req interfaces.EditRequest) (*post.Post, error) {
	identity := user.From(ctx)
	if err := identity.Validate(); err != nil {
		return nil, goerr.Wrap(err, "edit requires an authenticated user", goerr.T(errs.TagUnauthorized))
	}
	if err := req.PostID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid post ID", goerr.T(errs.TagInvalidEdit))
	}

	status, err := parseEditStatus(req)
	if err != nil {
		return nil, err
	}

	if req.Comment != nil {
		if err := uc.privacy.Check(*req.Comment, req.AcknowledgePrivacy); err != nil {
			logging.From(ctx).Info("comment rejected",
				"post_id", req.PostID,
				"reason", errs.ReasonOf(err))
			return nil, goerr.Wrap(err, "comment rejected", goerr.TV(errutil.PostIDKey, req.PostID))
		}
	}

	p, err := uc.repository.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get post", goerr.TV(errutil.PostIDKey, req.PostID))
	}
	if p == nil {
		return nil, goerr.New("post not found", goerr.TV(errutil.PostIDKey, req.PostID), goerr.T(errs.TagNotFound))
	}

	live, err := uc.repository.GetLiveAlert(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get live alert")
	}
	if live == nil || live.ID != p.AlertID {
		return nil, goerr.New("this roster is already archived",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.TV(errutil.AlertIDKey, p.AlertID),
			goerr.T(errs.TagAlertArchived))
	}

	before := p.Copy()
	now := clock.LocalNow(ctx)
	p.UpdatedAt = now
	if status != "" {
		p.Status = status
	}
	if req.Comment != nil {
		p.Comment = *req.Comment
	}

	if err := uc.repository.PutPost(ctx, p); err != nil {
		return nil, goerr.Wrap(err, "failed to put post", goerr.TV(errutil.PostIDKey, p.ID), goerr.T(errs.TagPersistence))
	}

	if err := uc.refreshStats(ctx, p.AlertID); err != nil {
		errs.Handle(ctx, err)
	}

	uc.recordAudit(ctx, identity, before, p, req.AcknowledgePrivacy)
	uc.broadcaster.PublishPost(ctx, p, req.Origin)

	return p, nil
}

// parseEditStatus returns the status to store, or "" to keep the current
// one. An unknown status is tolerated only when a non-empty comment comes
// with it.
func parseEditStatus(req interfaces.EditRequest) (types.PostStatus, error) {
	if req.Status == nil {
		if req.Comment == nil {
			return "", goerr.New("neither status nor comment given",
				goerr.TV(errutil.PostIDKey, req.PostID),
				goerr.T(errs.TagInvalidEdit))
		}
		return "", nil
	}

	switch strings.ToLower(strings.TrimSpace(*req.Status)) {
	case string(types.PostStatusComplete):
		return types.PostStatusComplete, nil
	case string(types.PostStatusIncomplete):
		return types.PostStatusIncomplete, nil
	case editStatusInvalid:
		return "", nil
	}

	if req.Comment != nil && *req.Comment != "" {
		return "", nil
	}
	return "", goerr.New("unknown status",
		goerr.TV(errutil.PostIDKey, req.PostID),
		goerr.TV(errutil.StatusKey, *req.Status),
		goerr.T(errs.TagInvalidEdit))
}

func (uc *UseCases) refreshStats(ctx context.Context, alertID types.AlertID) error {
	counts, err := uc.repository.CountPostsByStatus(ctx, alertID)
	if err != nil {
		return goerr.Wrap(err, "failed to count posts", goerr.TV(errutil.AlertIDKey, alertID))
	}
	if err := uc.repository.UpdateAlertStats(ctx, alertID, alert.NewStats(counts), clock.LocalNow(ctx)); err != nil {
		return goerr.Wrap(err, "failed to update alert stats", goerr.TV(errutil.AlertIDKey, alertID))
	}
	return nil
}

// recordAudit sends one entry per changed field in the background. A
// failing recorder is only logged.
func (uc *UseCases) recordAudit(ctx context.Context, identity *auth.Identity, before, after *post.Post, privacyOverride bool) {
	newEntry := func(field audit.Field, oldValue, newValue string) *audit.Entry {
		return &audit.Entry{
			ID:         types.NewAuditID(),
			EditorID:   identity.ID,
			EditorName: identity.DisplayName(),
			PostID:     after.ID,
			AlertID:    after.AlertID,
			Class:      after.Class.Number,
			Field:      field,
			OldValue:   oldValue,
			NewValue:   newValue,
			CreatedAt:  after.UpdatedAt,
		}
	}

	var entries []*audit.Entry
	if before.Status != after.Status {
		entries = append(entries, newEntry(audit.FieldStatus, before.Status.String(), after.Status.String()))
	}
	if before.Comment != after.Comment {
		e := newEntry(audit.FieldComment, before.Comment, after.Comment)
		e.PrivacyOverride = privacyOverride
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return
	}

	recorder := uc.auditRecorder
	async.Dispatch(ctx, func(ctx context.Context) error {
		for _, e := range entries {
			if err := recorder.Record(ctx, e); err != nil {
				logging.From(ctx).Warn("failed to record audit entry",
					logging.ErrAttr(err),
					"post_id", e.PostID,
					"field", e.Field)
			}
		}
		return nil
	})
}
