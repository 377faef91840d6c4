package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
)

// ListAlerts returns every stored alert, newest first.
func (uc *UseCases) ListAlerts(ctx context.Context) (alert.Alerts, error) {
	alerts, err := uc.repository.ListAlerts(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list alerts")
	}

	result := make(alert.Alerts, len(alerts))
	for i, a := range alerts {
		result[len(alerts)-1-i] = a
	}
	return result, nil
}

func (uc *UseCases) GetRoster(ctx context.Context, alertID types.AlertID) (*alert.Alert, post.Posts, error) {
	var (
		target *alert.Alert
		err    error
	)

	if alertID == types.EmptyAlertID {
		target, err = uc.repository.GetLiveAlert(ctx)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to get live alert")
		}
		if target == nil {
			return nil, nil, nil
		}
	} else {
		target, err = uc.repository.GetAlert(ctx, alertID)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to get alert", goerr.TV(errutil.AlertIDKey, alertID))
		}
		if target == nil {
			return nil, nil, goerr.New("alert not found", goerr.TV(errutil.AlertIDKey, alertID), goerr.T(errs.TagNotFound))
		}
	}

	posts, err := uc.repository.GetPostsByAlert(ctx, target.ID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get posts", goerr.TV(errutil.AlertIDKey, target.ID))
	}
	posts.Sort()

	return target, posts, nil
}
