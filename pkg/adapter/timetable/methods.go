package timetable

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
)

type authResult struct {
	SessionID  string `json:"sessionId"`
	PersonType int    `json:"personType"`
	PersonID   int    `json:"personId"`
}

func (c *Client) Authenticate(ctx context.Context) (*timetable.Session, error) {
	params := map[string]any{
		"user":     c.user,
		"password": c.password,
		"client":   c.clientName,
	}

	var result authResult
	if err := c.call(ctx, nil, "authenticate", params, &result); err != nil {
		return nil, err
	}
	if result.SessionID == "" {
		return nil, goerr.New("timetable returned no session", goerr.T(errs.TagExternal))
	}

	return &timetable.Session{
		ID:         result.SessionID,
		PersonType: result.PersonType,
		PersonID:   result.PersonID,
	}, nil
}

func (c *Client) Logout(ctx context.Context, session *timetable.Session) error {
	return c.call(ctx, session, "logout", nil, nil)
}

type element struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ForeName string `json:"foreName"`
	LongName string `json:"longName"`
}

func (c *Client) ListTeachers(ctx context.Context, session *timetable.Session) (map[types.TeacherID]*timetable.Teacher, error) {
	var result []element
	if err := c.call(ctx, session, "getTeachers", nil, &result); err != nil {
		return nil, err
	}

	teachers := make(map[types.TeacherID]*timetable.Teacher, len(result))
	for _, e := range result {
		teachers[types.TeacherID(e.ID)] = &timetable.Teacher{
			ID:          types.TeacherID(e.ID),
			Name:        e.Name,
			DisplayName: teacherDisplayName(e),
		}
	}
	return teachers, nil
}

func teacherDisplayName(e element) string {
	name := strings.TrimSpace(e.ForeName + " " + e.LongName)
	if name == "" {
		return e.Name
	}
	return name
}

func (c *Client) ListClasses(ctx context.Context, session *timetable.Session) (map[types.ClassID]*timetable.Class, error) {
	var result []element
	if err := c.call(ctx, session, "getKlassen", nil, &result); err != nil {
		return nil, err
	}

	classes := make(map[types.ClassID]*timetable.Class, len(result))
	for _, e := range result {
		classes[types.ClassID(e.ID)] = &timetable.Class{
			ID:     types.ClassID(e.ID),
			Number: e.Name,
			Name:   e.LongName,
		}
	}
	return classes, nil
}

func (c *Client) ListRooms(ctx context.Context, session *timetable.Session) (map[types.RoomID]*timetable.Room, error) {
	var result []element
	if err := c.call(ctx, session, "getRooms", nil, &result); err != nil {
		return nil, err
	}

	rooms := make(map[types.RoomID]*timetable.Room, len(result))
	for _, e := range result {
		rooms[types.RoomID(e.ID)] = &timetable.Room{
			ID:     types.RoomID(e.ID),
			Number: e.LongName,
			Name:   e.Name,
		}
	}
	return rooms, nil
}

type ref struct {
	ID int `json:"id"`
}

type period struct {
	ID        int    `json:"id"`
	Date      int    `json:"date"`
	StartTime int    `json:"startTime"`
	EndTime   int    `json:"endTime"`
	Te        []ref  `json:"te"`
	Ro        []ref  `json:"ro"`
	Code      string `json:"code"`
}

// ListLessons returns the periods of one class on day. Cancelled periods
// are dropped.
func (c *Client) ListLessons(ctx context.Context, session *timetable.Session, classID types.ClassID, day types.Day) ([]*timetable.Lesson, error) {
	params := map[string]any{
		"id":        int(classID),
		"type":      elementTypeClass,
		"startDate": int(day),
		"endDate":   int(day),
	}

	var result []period
	if err := c.call(ctx, session, "getTimetable", params, &result); err != nil {
		return nil, goerr.Wrap(err, "failed to get timetable",
			goerr.TV(errutil.ClassIDKey, classID),
			goerr.TV(errutil.DayKey, day))
	}

	lessons := make([]*timetable.Lesson, 0, len(result))
	for _, p := range result {
		if p.Code == "cancelled" {
			continue
		}

		lesson := &timetable.Lesson{
			ID:    p.ID,
			Day:   types.Day(p.Date),
			Start: types.ClockTime(p.StartTime),
			End:   types.ClockTime(p.EndTime),
		}
		for _, t := range p.Te {
			lesson.Teachers = append(lesson.Teachers, types.TeacherID(t.ID))
		}
		for _, r := range p.Ro {
			lesson.Rooms = append(lesson.Rooms, types.RoomID(r.ID))
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}
