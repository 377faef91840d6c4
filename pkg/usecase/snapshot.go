package usecase

import (
	"context"
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/async"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
)

func snapshotObjectName(alertID types.AlertID) string {
	return "alerts/" + alertID.String() + ".jsonl"
}

// snapshot writes the rosters of the archived alerts to object storage in
// the background. Nothing happens without a storage client.
func (uc *UseCases) snapshot(ctx context.Context, archived alert.Alerts) {
	if uc.storageClient == nil || len(archived) == 0 {
		return
	}

	ids := archived.IDs()
	async.Dispatch(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			if err := uc.writeSnapshot(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *UseCases) writeSnapshot(ctx context.Context, alertID types.AlertID) error {
	posts, err := uc.repository.GetPostsByAlert(ctx, alertID)
	if err != nil {
		return goerr.Wrap(err, "failed to get posts for snapshot", goerr.TV(errutil.AlertIDKey, alertID))
	}

	object := snapshotObjectName(alertID)
	w := uc.storageClient.PutObject(ctx, object)
	if err := writeJSONL(w, posts); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write snapshot", goerr.TV(errutil.AlertIDKey, alertID), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close snapshot writer",
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.V("object", object),
			goerr.T(errs.TagExternal))
	}

	logging.From(ctx).Info("roster snapshot stored", "alert_id", alertID, "object", object, "posts", len(posts))
	return nil
}

// ExportRoster writes the posts of alertID as JSON lines.
func (uc *UseCases) ExportRoster(ctx context.Context, alertID types.AlertID, w io.Writer) error {
	a, err := uc.repository.GetAlert(ctx, alertID)
	if err != nil {
		return goerr.Wrap(err, "failed to get alert", goerr.TV(errutil.AlertIDKey, alertID))
	}
	if a == nil {
		return goerr.New("alert not found", goerr.TV(errutil.AlertIDKey, alertID), goerr.T(errs.TagNotFound))
	}

	posts, err := uc.repository.GetPostsByAlert(ctx, alertID)
	if err != nil {
		return goerr.Wrap(err, "failed to get posts", goerr.TV(errutil.AlertIDKey, alertID))
	}
	posts.Sort()

	return writeJSONL(w, posts)
}

func writeJSONL(w io.Writer, posts post.Posts) error {
	enc := json.NewEncoder(w)
	for _, p := range posts {
		if err := enc.Encode(p); err != nil {
			return goerr.Wrap(err, "failed to encode post", goerr.TV(errutil.PostIDKey, p.ID))
		}
	}
	return nil
}
