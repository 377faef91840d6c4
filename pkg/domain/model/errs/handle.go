package errs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"github.com/secmon-lab/rollcall/pkg/utils/request_id"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

// Handle logs err and reports it to Sentry, tagged with its failure reason,
// request ID and caller. Rejections are only logged: they are declined
// operations, not faults.
func Handle(ctx context.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Ultimate fallback to stderr if slog crashes
			fmt.Fprintf(os.Stderr, "[CRITICAL] slog crashed during error handling: original_error=%s, slog_panic=%v\n",
				err.Error(), r)
		}
	}()

	reason := ReasonOf(err)
	logger := logging.From(ctx).With("reason", reason)

	if IsRejection(err) {
		logger.Warn("operation declined", slog.Any("error", err))
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("reason", string(reason))
		if reqID := request_id.FromContext(ctx); reqID != "" && reqID != "(unknown)" {
			scope.SetTag("request_id", reqID)
		}
		if userID := user.IDFrom(ctx); userID != "" {
			scope.SetUser(sentry.User{ID: userID})
		}

		for k, v := range goerr.Values(err) {
			scope.SetExtra(k, v)
		}
	})
	evID := hub.CaptureException(err)

	logger.Error("Error: "+err.Error(), slog.Any("error", err), slog.Any("sentry.id", evID))
}
