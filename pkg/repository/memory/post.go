package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
)

func (r *Memory) BatchPutPosts(ctx context.Context, posts post.Posts) error {
	for _, p := range posts {
		if err := p.Validate(); err != nil {
			return r.eb.Wrap(err, "invalid post", goerr.T(errs.TagValidation))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range posts {
		r.posts[p.ID] = p.Copy()
	}
	return nil
}

func (r *Memory) PutPost(ctx context.Context, p *post.Post) error {
	if err := p.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid post",
			goerr.TV(errutil.PostIDKey, p.ID),
			goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[p.ID] = p.Copy()
	return nil
}

func (r *Memory) GetPost(ctx context.Context, postID types.PostID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[postID]
	if !ok {
		return nil, nil
	}
	return p.Copy(), nil
}

func (r *Memory) GetPostsByAlert(ctx context.Context, alertID types.AlertID) (post.Posts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts post.Posts
	for _, p := range r.posts {
		if p.AlertID == alertID {
			posts = append(posts, p.Copy())
		}
	}
	posts.Sort()
	return posts, nil
}

func (r *Memory) CountPostsByStatus(ctx context.Context, alertID types.AlertID) (map[types.PostStatus]int, error) {
	posts, err := r.GetPostsByAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	return posts.CountByStatus(), nil
}

func (r *Memory) DeleteStalePosts(ctx context.Context, keep []types.AlertID) (int, error) {
	keepSet := make(map[types.AlertID]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, p := range r.posts {
		if _, ok := keepSet[p.AlertID]; ok {
			continue
		}
		delete(r.posts, id)
		deleted++
	}
	return deleted, nil
}
