package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
)

type errorResponse struct {
	Reason  types.FailureReason `json:"reason"`
	Message string              `json:"message"`
}

func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		return http.StatusNotFound

	case goerr.HasTag(err, errs.TagUnauthorized):
		return http.StatusUnauthorized

	case goerr.HasTag(err, errs.TagRollCallRunning),
		goerr.HasTag(err, errs.TagAlertArchived),
		goerr.HasTag(err, errs.TagConflict):
		return http.StatusConflict

	case goerr.HasTag(err, errs.TagValidation),
		goerr.HasTag(err, errs.TagInvalidEdit),
		goerr.HasTag(err, errs.TagPrivacyName),
		goerr.HasTag(err, errs.TagPrivacyDate),
		goerr.HasTag(err, errs.TagPrivacyKeyword),
		goerr.HasTag(err, errs.TagCommentTooLong):
		return http.StatusBadRequest

	case goerr.HasTag(err, errs.TagNoOngoingClasses):
		return http.StatusUnprocessableEntity

	case goerr.HasTag(err, errs.TagTimetableAuth),
		goerr.HasTag(err, errs.TagTimetableTeacher),
		goerr.HasTag(err, errs.TagTimetableClass),
		goerr.HasTag(err, errs.TagTimetableRoom),
		goerr.HasTag(err, errs.TagTimetableLesson),
		goerr.HasTag(err, errs.TagExternal):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as a JSON body with its failure reason. Server
// side failures go to errs.Handle and their message is not exposed.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status := statusOf(err)
	resp := errorResponse{
		Reason:  errs.ReasonOf(err),
		Message: err.Error(),
	}

	if status >= http.StatusInternalServerError {
		errs.Handle(ctx, err)
		resp.Message = http.StatusText(status)
	} else {
		logging.From(ctx).Info("request declined",
			"status", status,
			"reason", resp.Reason,
			logging.ErrAttr(err))
	}

	writeJSON(w, r, status, resp)
}
