package firestore

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"google.golang.org/api/iterator"
)

func (r *Firestore) PutAudit(ctx context.Context, entry *audit.Entry) error {
	if _, err := r.db.Collection(collectionAudits).Doc(entry.ID.String()).Set(ctx, entry); err != nil {
		return r.eb.Wrap(err, "failed to put audit entry",
			goerr.TV(errutil.PostIDKey, entry.PostID),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) GetAuditsByPost(ctx context.Context, postID types.PostID) ([]*audit.Entry, error) {
	iter := r.db.Collection(collectionAudits).Where("post_id", "==", postID.String()).Documents(ctx)
	defer iter.Stop()

	var entries []*audit.Entry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, r.eb.Wrap(err, "failed to iterate audit entries",
				goerr.TV(errutil.PostIDKey, postID),
				goerr.T(errs.TagDatabase))
		}

		var e audit.Entry
		if err := doc.DataTo(&e); err != nil {
			return nil, r.eb.Wrap(err, "failed to convert data to audit entry",
				goerr.V("doc_id", doc.Ref.ID),
				goerr.T(errs.TagInternal))
		}
		entries = append(entries, &e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}
