package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Firestore) BatchPutPosts(ctx context.Context, posts post.Posts) error {
	if len(posts) == 0 {
		return nil
	}
	for _, p := range posts {
		if err := p.Validate(); err != nil {
			return r.eb.Wrap(err, "invalid post", goerr.T(errs.TagValidation))
		}
	}

	bw := r.db.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, p := range posts {
		job, err := bw.Set(r.db.Collection(collectionPosts).Doc(p.ID.String()), p)
		if err != nil {
			bw.End()
			return r.eb.Wrap(err, "failed to enqueue post",
				goerr.TV(errutil.PostIDKey, p.ID),
				goerr.T(errs.TagDatabase))
		}
		jobs = append(jobs, job)
	}
	return r.commit(bw, jobs, collectionPosts)
}

func (r *Firestore) PutPost(ctx context.Context, p *post.Post) error {
	if err := p.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid post",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.T(errs.TagValidation))
	}

	if _, err := r.db.Collection(collectionPosts).Doc(p.ID.String()).Set(ctx, p); err != nil {
		return r.eb.Wrap(err, "failed to put post",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) GetPost(ctx context.Context, postID types.PostID) (*post.Post, error) {
	doc, err := r.db.Collection(collectionPosts).Doc(postID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get post",
			goerr.TV(errutil.PostIDKey, postID),
			goerr.T(errs.TagDatabase))
	}

	var p post.Post
	if err := doc.DataTo(&p); err != nil {
		return nil, r.eb.Wrap(err, "failed to convert data to post",
			goerr.TV(errutil.PostIDKey, postID),
			goerr.T(errs.TagInternal))
	}
	return &p, nil
}

func (r *Firestore) GetPostsByAlert(ctx context.Context, alertID types.AlertID) (post.Posts, error) {
	iter := r.db.Collection(collectionPosts).Where("alert_id", "==", alertID.String()).Documents(ctx)
	defer iter.Stop()

	var posts post.Posts
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to iterate posts",
				goerr.TV(errutil.AlertIDKey, alertID),
				goerr.T(errs.TagDatabase))
		}

		var p post.Post
		if err := doc.DataTo(&p); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to post",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagInternal))
		}
		posts = append(posts, &p)
	}

	posts.Sort()
	return posts, nil
}

func (r *Firestore) CountPostsByStatus(ctx context.Context, alertID types.AlertID) (map[types.PostStatus]int, error) {
	counts := make(map[types.PostStatus]int, len(types.PostStatusValues))
	for _, s := range types.PostStatusValues {
		q := r.db.Collection(collectionPosts).
			Where("alert_id", "==", alertID.String()).
			Where("status", "==", s.String())

		result, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to count posts",
				goerr.TV(errutil.AlertIDKey, alertID),
				goerr.TV(errutil.StatusKey, s.String()),
				goerr.T(errs.TagDatabase))
		}

		n, err := extractCountFromAggregationResult(result, "total")
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to extract post count",
				goerr.TV(errutil.AlertIDKey, alertID))
		}
		counts[s] = n
	}
	return counts, nil
}

func (r *Firestore) DeleteStalePosts(ctx context.Context, keep []types.AlertID) (int, error) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id.String()] = struct{}{}
	}

	// not-in filters are limited to a handful of values, so scan the
	// alert_id projection instead.
	iter := r.db.Collection(collectionPosts).Select("alert_id").Documents(ctx)
	defer iter.Stop()

	bw := r.db.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			bw.End()
			return 0, r.eb.Wrap(err, "failed to iterate posts", goerr.T(errs.TagDatabase))
		}

		alertID, _ := doc.Data()["alert_id"].(string)
		if _, ok := keepSet[alertID]; ok {
			continue
		}

		job, err := bw.Delete(doc.Ref)
		if err != nil {
			bw.End()
			return 0, r.eb.Wrap(err, "failed to enqueue post deletion",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagDatabase))
		}
		jobs = append(jobs, job)
	}

	if err := r.commit(bw, jobs, collectionPosts); err != nil {
		return 0, err
	}
	return len(jobs), nil
}
