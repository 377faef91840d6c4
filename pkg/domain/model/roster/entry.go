package roster

import (
	"time"

	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// Entry is a roster row draft: a post that is not yet bound to an alert.
type Entry struct {
	Class    post.Class       `json:"class"`
	Teachers []string         `json:"teachers"`
	Rooms    []post.Room      `json:"rooms"`
	Start    types.ClockTime  `json:"start"`
	End      types.ClockTime  `json:"end"`
	Day      types.Day        `json:"day"`
	Status   types.PostStatus `json:"status"`
	Comment  string           `json:"comment"`
}

// ToPost binds the entry to alertID.
func (x *Entry) ToPost(alertID types.AlertID, now time.Time) *post.Post {
	return &post.Post{
		ID:        types.NewPostID(),
		AlertID:   alertID,
		Class:     x.Class,
		Teachers:  append([]string(nil), x.Teachers...),
		Rooms:     append([]post.Room(nil), x.Rooms...),
		Comment:   x.Comment,
		Start:     x.Start,
		End:       x.End,
		Day:       x.Day,
		Status:    x.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type Entries []*Entry

func (x Entries) ToPosts(alertID types.AlertID, now time.Time) post.Posts {
	posts := make(post.Posts, len(x))
	for i, e := range x {
		posts[i] = e.ToPost(alertID, now)
	}
	return posts
}
