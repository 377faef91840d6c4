package roster

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
)

// Lookahead is how many minutes before its start a lesson already counts.
const Lookahead = 15

// isCandidate reports whether lesson is in progress at at, or starts
// within Lookahead minutes of it.
func isCandidate(lesson *timetable.Lesson, at types.ClockTime) bool {
	if lesson.Start >= at {
		return lesson.Start.Minutes()-at.Minutes() <= Lookahead
	}
	return at < lesson.End
}

// Resolve picks the current lesson block of one class and turns it into a
// roster entry. It returns nil when nothing is in session or no teacher
// can be resolved.
//
// The first candidate in input order fixes the accepted start time, even
// when a later candidate starts earlier. Only candidates sharing that
// start time are considered, and of those only lessons with no room or at
// least one room not excluded by policy.
func Resolve(ctx context.Context, class *timetable.Class, lessons []*timetable.Lesson, dir *timetable.Directory, day types.Day, at types.ClockTime, policy RoomPolicy) *roster.Entry {
	logger := logging.From(ctx).With(slog.String("class", class.Number))

	var accepted []*timetable.Lesson
	var acceptedStart types.ClockTime
	found := false
	for _, lesson := range lessons {
		if !isCandidate(lesson, at) {
			continue
		}
		if !found {
			acceptedStart = lesson.Start
			found = true
		}
		if lesson.Start != acceptedStart {
			continue
		}
		if !hasUsableRoom(ctx, lesson, dir, policy) {
			continue
		}
		accepted = append(accepted, lesson)
	}
	if len(accepted) == 0 {
		return nil
	}

	var teachers []string
	seenTeacher := make(map[string]struct{})
	var rooms []post.Room
	seenRoom := make(map[post.Room]struct{})

	for _, lesson := range accepted {
		for _, id := range lesson.Teachers {
			t, ok := dir.Teachers[id]
			if !ok {
				logger.Warn("unknown teacher reference", slog.Int("teacher_id", int(id)), slog.Int("lesson_id", lesson.ID))
				continue
			}
			if _, dup := seenTeacher[t.DisplayName]; dup {
				continue
			}
			seenTeacher[t.DisplayName] = struct{}{}
			teachers = append(teachers, t.DisplayName)
		}

		for _, id := range lesson.Rooms {
			r, ok := dir.Rooms[id]
			if !ok {
				continue
			}
			room := post.Room{Number: r.Number, Name: r.Name}
			if _, dup := seenRoom[room]; dup {
				continue
			}
			seenRoom[room] = struct{}{}
			rooms = append(rooms, room)
		}
	}

	if len(teachers) == 0 {
		logger.Debug("lesson in session without known teacher", slog.Int("lesson_id", accepted[0].ID))
		return nil
	}

	return &roster.Entry{
		Class:    post.Class{Number: class.Number, Name: class.Name},
		Teachers: teachers,
		Rooms:    rooms,
		Start:    accepted[0].Start,
		End:      accepted[0].End,
		Day:      day,
		Status:   types.PostStatusUndefined,
	}
}

// hasUsableRoom is true for lessons without rooms and for lessons with at
// least one known room that the policy does not exclude.
func hasUsableRoom(ctx context.Context, lesson *timetable.Lesson, dir *timetable.Directory, policy RoomPolicy) bool {
	if len(lesson.Rooms) == 0 {
		return true
	}

	for _, id := range lesson.Rooms {
		r, ok := dir.Rooms[id]
		if !ok {
			logging.From(ctx).Warn("unknown room reference", slog.Int("room_id", int(id)), slog.Int("lesson_id", lesson.ID))
			continue
		}
		if !policy.Excluded(r.Name) {
			return true
		}
	}
	return false
}
