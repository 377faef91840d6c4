package repository_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

func TestPosts(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := t.Context()
		a := newTestAlert(time.Now(), 3)
		gt.NoError(t, repo.PutAlert(ctx, a))

		posts := post.Posts{
			newTestPost(a.ID, "10B", 800),
			newTestPost(a.ID, "10A", 800),
			newTestPost(a.ID, "5C", 755),
		}
		gt.NoError(t, repo.BatchPutPosts(ctx, posts))

		got, err := repo.GetPostsByAlert(ctx, a.ID)
		gt.NoError(t, err).Required()
		gt.A(t, got).Length(3).Required()
		gt.Equal(t, got[0].Class.Number, "10A")
		gt.Equal(t, got[1].Class.Number, "10B")
		gt.Equal(t, got[2].Class.Number, "5C")

		p := got[0]
		p.Status = types.PostStatusComplete
		p.Comment = "alle da"
		gt.NoError(t, repo.PutPost(ctx, p))

		loaded, err := repo.GetPost(ctx, p.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, loaded.Status, types.PostStatusComplete)
		gt.Equal(t, loaded.Comment, "alle da")
		gt.Equal(t, loaded.Rooms, p.Rooms)

		counts, err := repo.CountPostsByStatus(ctx, a.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, counts[types.PostStatusComplete], 1)
		gt.Equal(t, counts[types.PostStatusUndefined], 2)
		gt.Equal(t, counts[types.PostStatusIncomplete], 0)

		missing, err := repo.GetPost(ctx, types.NewPostID())
		gt.NoError(t, err)
		gt.Nil(t, missing)
	})
}

func TestPutPostRejectsInvalid(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo interfaces.Repository) {
		p := newTestPost(types.NewAlertID(), "10A", 800)
		p.Teachers = nil
		gt.Error(t, repo.PutPost(t.Context(), p))
	})
}

func TestDeleteStalePosts(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := t.Context()
		kept := newTestAlert(time.Now(), 1)
		dropped := newTestAlert(time.Now(), 1)
		gt.NoError(t, repo.PutAlert(ctx, kept))
		gt.NoError(t, repo.PutAlert(ctx, dropped))

		keptPost := newTestPost(kept.ID, "10A", 800)
		droppedPost := newTestPost(dropped.ID, "10A", 800)
		orphan := newTestPost(types.NewAlertID(), "7B", 800)
		gt.NoError(t, repo.BatchPutPosts(ctx, post.Posts{keptPost, droppedPost, orphan}))

		// Keep every other alert in the store so a shared database is untouched.
		alerts, err := repo.ListAlerts(ctx)
		gt.NoError(t, err).Required()
		var keep []types.AlertID
		for _, a := range alerts {
			if a.ID != dropped.ID {
				keep = append(keep, a.ID)
			}
		}

		n, err := repo.DeleteStalePosts(ctx, keep)
		gt.NoError(t, err)
		gt.True(t, n >= 2)

		got, err := repo.GetPost(ctx, keptPost.ID)
		gt.NoError(t, err)
		gt.NotNil(t, got)

		got, err = repo.GetPost(ctx, droppedPost.ID)
		gt.NoError(t, err)
		gt.Nil(t, got)

		got, err = repo.GetPost(ctx, orphan.ID)
		gt.NoError(t, err)
		gt.Nil(t, got)
	})
}

func TestAudits(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := t.Context()
		postID := types.NewPostID()
		base := time.Now().UTC().Truncate(time.Millisecond)

		second := &audit.Entry{
			ID:        types.NewAuditID(),
			PostID:    postID,
			Field:     audit.FieldComment,
			NewValue:  "alle da",
			CreatedAt: base.Add(time.Second),
		}
		first := &audit.Entry{
			ID:        types.NewAuditID(),
			PostID:    postID,
			Field:     audit.FieldStatus,
			OldValue:  "undefined",
			NewValue:  "complete",
			CreatedAt: base,
		}
		gt.NoError(t, repo.PutAudit(ctx, second))
		gt.NoError(t, repo.PutAudit(ctx, first))

		entries, err := repo.GetAuditsByPost(ctx, postID)
		gt.NoError(t, err).Required()
		gt.A(t, entries).Length(2).Required()
		gt.Equal(t, entries[0].Field, audit.FieldStatus)
		gt.Equal(t, entries[1].Field, audit.FieldComment)
	})
}
