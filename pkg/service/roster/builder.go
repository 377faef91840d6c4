package roster

import (
	"context"
	"log/slog"
	"runtime"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// LessonFetcher loads the lessons of one class for the target day.
type LessonFetcher func(ctx context.Context, classID types.ClassID) ([]*timetable.Lesson, error)

type Builder struct {
	workers int
	policy  RoomPolicy
}

type Option func(*Builder)

// WithWorkers sets the number of concurrent workers. Values below 1 fall
// back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

func WithRoomPolicy(policy RoomPolicy) Option {
	return func(b *Builder) {
		b.policy = policy
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		workers: runtime.GOMAXPROCS(0),
		policy:  DefaultRoomPolicy(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Workers() int {
	return b.workers
}

// Build resolves every class of dir at day/at. Classes are split round
// robin over the workers by ascending class ID and worker results are
// concatenated in worker order before Process sorts and dedups them, so the
// output does not depend on which worker finishes first. A failure in any
// worker fails the whole build.
func (b *Builder) Build(ctx context.Context, dir *timetable.Directory, day types.Day, at types.ClockTime, fetch LessonFetcher) (roster.Entries, error) {
	classIDs := make([]types.ClassID, 0, len(dir.Classes))
	for id := range dir.Classes {
		classIDs = append(classIDs, id)
	}
	sort.Slice(classIDs, func(i, j int) bool { return classIDs[i] < classIDs[j] })

	n := min(b.workers, len(classIDs))
	buckets := make([][]types.ClassID, n)
	for i, id := range classIDs {
		buckets[i%n] = append(buckets[i%n], id)
	}

	results := make([]roster.Entries, n)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := range buckets {
		eg.Go(func() error {
			for _, classID := range buckets[w] {
				lessons, err := fetch(egCtx, classID)
				if err != nil {
					return goerr.Wrap(err, "failed to fetch lessons",
						goerr.TV(errutil.ClassIDKey, classID),
						goerr.V("worker", w))
				}
				if entry := Resolve(egCtx, dir.Classes[classID], lessons, dir, day, at, b.policy); entry != nil {
					results[w] = append(results[w], entry)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var merged roster.Entries
	for _, r := range results {
		merged = append(merged, r...)
	}
	if len(merged) == 0 {
		return nil, goerr.New("no ongoing classes found",
			goerr.TV(errutil.DayKey, day),
			goerr.TV(errutil.MinuteKey, at),
			goerr.T(errs.TagNoOngoingClasses))
	}

	entries := Process(merged)
	logging.From(ctx).Info("roster built",
		slog.Int("classes", len(classIDs)),
		slog.Int("workers", n),
		slog.Int("entries", len(entries)))
	return entries, nil
}

// Process sorts entries by class number, then start time, and keeps only
// the first entry of each class number.
func Process(entries roster.Entries) roster.Entries {
	sorted := append(roster.Entries(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Class.Number != sorted[j].Class.Number {
			return sorted[i].Class.Number < sorted[j].Class.Number
		}
		return sorted[i].Start < sorted[j].Start
	})

	result := make(roster.Entries, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))
	for _, e := range sorted {
		if _, dup := seen[e.Class.Number]; dup {
			continue
		}
		seen[e.Class.Number] = struct{}{}
		result = append(result, e)
	}
	return result
}
