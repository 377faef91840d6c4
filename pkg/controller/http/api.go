package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	websocket_controller "github.com/secmon-lab/rollcall/pkg/controller/websocket"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/secmon-lab/rollcall/pkg/utils/safe"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

type HealthResponse struct {
	State   usecase.State `json:"state"`
	Viewers int           `json:"viewers"`
}

type RosterResponse struct {
	Alert *alert.Alert `json:"alert"`
	Posts post.Posts   `json:"posts"`
}

type RollCallRequest struct {
	Day    types.Day        `json:"day,omitempty"`
	Minute *types.ClockTime `json:"minute,omitempty"`
}

type PreviewResponse struct {
	Entries roster.Entries `json:"entries"`
}

type EditRequest struct {
	Status             *string `json:"status,omitempty"`
	Comment            *string `json:"comment,omitempty"`
	AcknowledgePrivacy bool    `json:"acknowledge_privacy,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errs.Handle(r.Context(), goerr.Wrap(err, "failed to marshal response"))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(errs.TagValidation))
	}
	return nil
}

func healthHandler(uc interfaces.RollCallUsecases, ws *websocket_controller.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{State: usecase.StateIdle}
		if uc.Running() {
			resp.State = usecase.StateRunning
		}
		if ws != nil {
			resp.Viewers = ws.ClientCount()
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func listAlertsHandler(uc interfaces.RollCallUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := uc.ListAlerts(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		if alerts == nil {
			alerts = alert.Alerts{}
		}
		writeJSON(w, r, http.StatusOK, alerts)
	}
}

// rosterHandler serves the posts of the alert in the path, or of the live
// alert for /alerts/live/posts.
func rosterHandler(uc interfaces.RollCallUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID := types.AlertID(chi.URLParam(r, "alertID"))

		a, posts, err := uc.GetRoster(r.Context(), alertID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		if posts == nil {
			posts = post.Posts{}
		}
		writeJSON(w, r, http.StatusOK, RosterResponse{Alert: a, Posts: posts})
	}
}

func downloadRosterHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		alertID := types.AlertID(chi.URLParam(r, "alertID"))

		// Buffered so that a failure can still be reported with a status code
		var buf bytes.Buffer
		if err := uc.ExportRoster(ctx, alertID, &buf); err != nil {
			handleError(w, r, err)
			return
		}

		filename := fmt.Sprintf("rollcall-%s-%s.jsonl", alertID, clock.LocalNow(ctx).Format("20060102-150405"))
		w.Header().Set("Content-Type", "application/jsonl")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		safe.Write(ctx, w, buf.Bytes())
	}
}

func rollCallHandler(uc interfaces.RollCallUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RollCallRequest
		if r.ContentLength != 0 {
			if err := decodeBody(r, &req); err != nil {
				handleError(w, r, err)
				return
			}
		}

		// A client that disconnects must not abort the roll-call halfway
		a, posts, err := uc.TriggerRollCall(context.WithoutCancel(r.Context()), interfaces.RollCallRequest{
			Day:    req.Day,
			Minute: req.Minute,
		})
		if err != nil {
			handleError(w, r, err)
			return
		}

		logging.From(r.Context()).Info("roll-call triggered via API", "alert_id", a.ID)
		writeJSON(w, r, http.StatusCreated, RosterResponse{Alert: a, Posts: posts})
	}
}

func previewHandler(uc interfaces.RollCallUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RollCallRequest
		if r.ContentLength != 0 {
			if err := decodeBody(r, &req); err != nil {
				handleError(w, r, err)
				return
			}
		}

		entries, err := uc.Preview(r.Context(), interfaces.RollCallRequest{
			Day:    req.Day,
			Minute: req.Minute,
		})
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, PreviewResponse{Entries: entries})
	}
}

func updatePostHandler(uc interfaces.RollCallUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		p, err := uc.UpdatePost(r.Context(), interfaces.EditRequest{
			PostID:             types.PostID(chi.URLParam(r, "postID")),
			Status:             req.Status,
			Comment:            req.Comment,
			AcknowledgePrivacy: req.AcknowledgePrivacy,
			Origin:             user.IDFrom(r.Context()),
		})
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, p)
	}
}
