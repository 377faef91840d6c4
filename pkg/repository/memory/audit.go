package memory

import (
	"context"
	"sort"

	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

func (r *Memory) PutAudit(ctx context.Context, entry *audit.Entry) error {
	r.auditMu.Lock()
	defer r.auditMu.Unlock()

	c := *entry
	r.audits[entry.PostID] = append(r.audits[entry.PostID], &c)
	return nil
}

func (r *Memory) GetAuditsByPost(ctx context.Context, postID types.PostID) ([]*audit.Entry, error) {
	r.auditMu.RLock()
	defer r.auditMu.RUnlock()

	entries := make([]*audit.Entry, 0, len(r.audits[postID]))
	for _, e := range r.audits[postID] {
		c := *e
		entries = append(entries, &c)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}
