package usecase

import (
	"context"

	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/repository"
	"github.com/secmon-lab/rollcall/pkg/service/audit"
	"github.com/secmon-lab/rollcall/pkg/service/privacy"
	"github.com/secmon-lab/rollcall/pkg/service/roster"
)

// DefaultRetention is the number of alerts kept after a roll-call.
const DefaultRetention = 50

type UseCases struct {
	// services and adapters
	repository    interfaces.Repository
	timetable     interfaces.TimetableClient
	broadcaster   interfaces.Broadcaster
	auditRecorder interfaces.AuditRecorder
	storageClient interfaces.StorageClient
	builder       *roster.Builder
	privacy       *privacy.Checker

	coordinator *coordinator

	// configs
	retention int
}

var _ interfaces.RollCallUsecases = &UseCases{}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

func WithTimetableClient(client interfaces.TimetableClient) Option {
	return func(u *UseCases) {
		u.timetable = client
	}
}

// WithBroadcaster sets the hub that relays roll-call results to viewers.
func WithBroadcaster(broadcaster interfaces.Broadcaster) Option {
	return func(u *UseCases) {
		u.broadcaster = broadcaster
	}
}

func WithAuditRecorder(recorder interfaces.AuditRecorder) Option {
	return func(u *UseCases) {
		u.auditRecorder = recorder
	}
}

// WithStorageClient enables JSONL snapshots of archived rosters.
func WithStorageClient(client interfaces.StorageClient) Option {
	return func(u *UseCases) {
		u.storageClient = client
	}
}

func WithRosterBuilder(builder *roster.Builder) Option {
	return func(u *UseCases) {
		u.builder = builder
	}
}

func WithPrivacyChecker(checker *privacy.Checker) Option {
	return func(u *UseCases) {
		u.privacy = checker
	}
}

// WithRetention sets how many alerts survive pruning. Values below 1 are
// ignored.
func WithRetention(n int) Option {
	return func(u *UseCases) {
		if n > 0 {
			u.retention = n
		}
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		repository:    repository.NewMemory(),
		broadcaster:   &discardBroadcaster{},
		auditRecorder: audit.LogRecorder{},
		builder:       roster.New(),
		privacy:       privacy.New(privacy.DefaultPolicy()),
		coordinator:   newCoordinator(),
		retention:     DefaultRetention,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Running reports whether a roll-call is in progress in this process.
func (uc *UseCases) Running() bool {
	return uc.coordinator.State() == StateRunning
}

type discardBroadcaster struct{}

func (x *discardBroadcaster) PublishRoster(ctx context.Context, alertID types.AlertID, posts post.Posts) {
}

func (x *discardBroadcaster) PublishHistory(ctx context.Context, alerts alert.Alerts) {}

func (x *discardBroadcaster) PublishPost(ctx context.Context, post *post.Post, origin string) {}
