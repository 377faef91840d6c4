package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/utils/async"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
	"github.com/secmon-lab/rollcall/pkg/utils/request_id"
	"github.com/secmon-lab/rollcall/pkg/utils/user"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("error is swallowed", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer close(done)
			return errors.New("slack is down")
		})
		waitDone(t, done)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer close(done)
			panic("boom")
		})
		waitDone(t, done)
	})

	t.Run("carries values but not cancellation", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		gt.NoError(t, err).Required()

		ctx, cancel := context.WithCancel(context.Background())
		ctx = user.With(ctx, &auth.Identity{ID: "u-1"})
		ctx = request_id.With(ctx, "req-1")
		ctx = clock.WithTimezone(ctx, berlin)

		done := make(chan struct{})
		async.Dispatch(ctx, func(newCtx context.Context) error {
			defer close(done)
			cancel()
			gt.NoError(t, newCtx.Err())
			gt.Equal(t, user.IDFrom(newCtx), "u-1")
			gt.Equal(t, request_id.FromContext(newCtx), "req-1")
			gt.Equal(t, clock.Timezone(newCtx).String(), "Europe/Berlin")
			return nil
		})
		waitDone(t, done)
	})
}
