package test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
)

type EnvVars struct {
	vars map[string]string
}

// NewEnvVars skips the test unless every key is set.
func NewEnvVars(t *testing.T, keys ...string) EnvVars {
	e := EnvVars{
		vars: map[string]string{},
	}

	for _, key := range keys {
		value, ok := os.LookupEnv(key)
		if !ok {
			t.Skipf("skipping test because %s is not set", key)
		}
		e.vars[key] = value
	}

	return e
}

func (e EnvVars) Get(key string) string {
	if v, ok := e.vars[key]; ok {
		return v
	}

	panic(fmt.Sprintf("env var %s is not set", key))
}

// Context returns a context with a quiet logger and, when now is non-zero,
// a frozen clock in UTC.
func Context(t *testing.T, now time.Time) context.Context {
	t.Helper()
	ctx := logging.With(t.Context(), slog.New(slog.DiscardHandler))
	ctx = clock.WithTimezone(ctx, time.UTC)
	if !now.IsZero() {
		ctx = clock.With(ctx, func() time.Time { return now })
	}
	return ctx
}
