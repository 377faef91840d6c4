package memory

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/audit"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
)

// Memory is a process local repository for development and tests. Data is
// lost on restart.
type Memory struct {
	mu      sync.RWMutex
	auditMu sync.RWMutex

	alerts map[types.AlertID]*alert.Alert
	// seq keeps insertion order to break CreatedAt ties.
	seq     map[types.AlertID]int
	nextSeq int
	posts   map[types.PostID]*post.Post
	audits  map[types.PostID][]*audit.Entry

	eb *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		alerts: make(map[types.AlertID]*alert.Alert),
		seq:    make(map[types.AlertID]int),
		posts:  make(map[types.PostID]*post.Post),
		audits: make(map[types.PostID][]*audit.Entry),
		eb:     goerr.NewBuilder(goerr.TV(errutil.RepositoryKey, "memory")),
	}
}
