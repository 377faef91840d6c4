package roster_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	model "github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/service/roster"
)

func fetchFrom(lessons map[types.ClassID][]*timetable.Lesson) roster.LessonFetcher {
	return func(ctx context.Context, classID types.ClassID) ([]*timetable.Lesson, error) {
		return lessons[classID], nil
	}
}

func classNumbers(entries model.Entries) []string {
	var numbers []string
	for _, e := range entries {
		numbers = append(numbers, e.Class.Number)
	}
	return numbers
}

func TestBuild(t *testing.T) {
	dir := newDirectory()
	lessons := map[types.ClassID][]*timetable.Lesson{
		10: {lesson(800, 845, []types.TeacherID{1}, 201)},
		11: {lesson(800, 845, []types.TeacherID{2}, 101)}, // excluded room only
		5:  {lesson(755, 840, []types.TeacherID{2})},
	}

	for _, workers := range []int{1, 2, 3, 8} {
		b := roster.New(roster.WithWorkers(workers))
		entries, err := b.Build(context.Background(), dir, testDay, 810, fetchFrom(lessons))
		gt.NoError(t, err).Required()
		gt.Equal(t, classNumbers(entries), []string{"10A", "5C"})
	}
}

func TestBuildNoOngoingClasses(t *testing.T) {
	dir := newDirectory()
	b := roster.New(roster.WithWorkers(2))
	_, err := b.Build(context.Background(), dir, testDay, 1400, fetchFrom(map[types.ClassID][]*timetable.Lesson{
		10: {lesson(800, 845, []types.TeacherID{1})},
	}))
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagNoOngoingClasses))

	_, err = b.Build(context.Background(), timetable.NewDirectory(), testDay, 800, fetchFrom(nil))
	gt.True(t, goerr.HasTag(err, errs.TagNoOngoingClasses))
}

func TestBuildAllOrNothing(t *testing.T) {
	dir := newDirectory()
	var calls atomic.Int32
	fetch := func(ctx context.Context, classID types.ClassID) ([]*timetable.Lesson, error) {
		calls.Add(1)
		if classID == 11 {
			return nil, goerr.New("upstream closed", goerr.T(errs.TagTimetableLesson))
		}
		return []*timetable.Lesson{lesson(800, 845, []types.TeacherID{1})}, nil
	}

	entries, err := roster.New(roster.WithWorkers(3)).Build(context.Background(), dir, testDay, 810, fetch)
	gt.Error(t, err)
	gt.A(t, entries).Length(0)
	gt.True(t, goerr.HasTag(err, errs.TagTimetableLesson))
	gt.True(t, calls.Load() >= 1)
}

func TestBuildPassesCancellation(t *testing.T) {
	dir := newDirectory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetch := func(ctx context.Context, classID types.ClassID) ([]*timetable.Lesson, error) {
		return nil, ctx.Err()
	}
	_, err := roster.New().Build(ctx, dir, testDay, 810, fetch)
	gt.True(t, errors.Is(err, context.Canceled))
}

func TestProcess(t *testing.T) {
	entry := func(class string, start types.ClockTime, teacher string) *model.Entry {
		return &model.Entry{Class: post.Class{Number: class}, Start: start, Teachers: []string{teacher}}
	}

	entries := model.Entries{
		entry("10B", 800, "a"),
		entry("10A", 815, "b"),
		entry("10A", 800, "c"),
		entry("5C", 800, "d"),
		entry("10A", 800, "e"),
	}

	got := roster.Process(entries)
	gt.Equal(t, classNumbers(got), []string{"10A", "10B", "5C"})
	gt.Equal(t, got[0].Start, types.ClockTime(800))
	gt.Equal(t, got[0].Teachers, []string{"c"})

	// input is not modified
	gt.Equal(t, entries[0].Class.Number, "10B")
}
