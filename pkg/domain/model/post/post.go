package post

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

type Class struct {
	Number string `json:"number" firestore:"number"`
	Name   string `json:"name" firestore:"name"`
}

type Room struct {
	Number string `json:"number" firestore:"number"`
	Name   string `json:"name" firestore:"name"`
}

// Post is one class's roll-call row within an alert.
type Post struct {
	ID        types.PostID     `json:"id" firestore:"id"`
	AlertID   types.AlertID    `json:"alert_id" firestore:"alert_id"`
	Class     Class            `json:"class" firestore:"class"`
	Teachers  []string         `json:"teachers" firestore:"teachers"`
	Rooms     []Room           `json:"rooms" firestore:"rooms"`
	Comment   string           `json:"comment" firestore:"comment"`
	Start     types.ClockTime  `json:"start" firestore:"start"`
	End       types.ClockTime  `json:"end" firestore:"end"`
	Day       types.Day        `json:"day" firestore:"day"`
	Status    types.PostStatus `json:"status" firestore:"status"`
	CreatedAt time.Time        `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" firestore:"updated_at"`
}

func (x *Post) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return err
	}
	if x.AlertID == types.EmptyAlertID {
		return goerr.New("post has no alert", goerr.V("post_id", x.ID))
	}
	if x.Class.Number == "" {
		return goerr.New("post has no class number", goerr.V("post_id", x.ID))
	}
	if len(x.Teachers) == 0 {
		return goerr.New("post has no teacher", goerr.V("post_id", x.ID), goerr.V("class", x.Class.Number))
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid post", goerr.V("post_id", x.ID))
	}
	return nil
}

type Posts []*Post

// CountByStatus tallies posts per stored status.
func (x Posts) CountByStatus() map[types.PostStatus]int {
	counts := make(map[types.PostStatus]int, len(types.PostStatusValues))
	for _, p := range x {
		counts[p.Status]++
	}
	return counts
}

func (x Posts) IDs() []types.PostID {
	ids := make([]types.PostID, len(x))
	for i, p := range x {
		ids[i] = p.ID
	}
	return ids
}

// Sort orders posts the way rosters are built: by class number, then by
// lesson start.
func (x Posts) Sort() {
	sort.SliceStable(x, func(i, j int) bool {
		if x[i].Class.Number != x[j].Class.Number {
			return x[i].Class.Number < x[j].Class.Number
		}
		return x[i].Start < x[j].Start
	})
}

// Copy returns a deep copy of the post.
func (x *Post) Copy() *Post {
	c := *x
	c.Teachers = append([]string(nil), x.Teachers...)
	c.Rooms = append([]Room(nil), x.Rooms...)
	return &c
}
