package storage_test

import (
	"context"
	"io"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/adapter/storage"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
)

func TestMemoryClient(t *testing.T) {
	client := storage.NewMemoryClient()
	ctx := context.Background()
	defer client.Close(ctx)

	t.Run("object is visible after close", func(t *testing.T) {
		w := client.PutObject(ctx, "alerts/a1.jsonl")
		_, err := w.Write([]byte(`{"id":"p1"}` + "\n"))
		gt.NoError(t, err)

		_, err = client.GetObject(ctx, "alerts/a1.jsonl")
		gt.Error(t, err)

		gt.NoError(t, w.Close())
		rc, err := client.GetObject(ctx, "alerts/a1.jsonl")
		gt.NoError(t, err).Required()
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		gt.NoError(t, err)
		gt.Equal(t, string(data), `{"id":"p1"}`+"\n")
		gt.Equal(t, client.Objects(), []string{"alerts/a1.jsonl"})
	})

	t.Run("write after close fails", func(t *testing.T) {
		w := client.PutObject(ctx, "closed")
		gt.NoError(t, w.Close())
		_, err := w.Write([]byte("late"))
		gt.Error(t, err)
	})

	t.Run("missing object is tagged", func(t *testing.T) {
		_, err := client.GetObject(ctx, "nothing")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})
}
