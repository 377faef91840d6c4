package timetable

import (
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

// Session is a logged-in session against the scheduling system.
type Session struct {
	ID         string `json:"id" masq:"secret"`
	PersonType int    `json:"person_type"`
	PersonID   int    `json:"person_id"`
}

type Teacher struct {
	ID          types.TeacherID `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
}

type Class struct {
	ID     types.ClassID `json:"id"`
	Number string        `json:"number"`
	Name   string        `json:"name"`
}

// Room carries the short code used on door signs (Name, e.g. "R101") and
// the descriptive room number.
type Room struct {
	ID     types.RoomID `json:"id"`
	Number string       `json:"number"`
	Name   string       `json:"name"`
}

// Lesson is one scheduled occurrence for a class on a day.
type Lesson struct {
	ID       int               `json:"id"`
	Day      types.Day         `json:"day"`
	Start    types.ClockTime   `json:"start"`
	End      types.ClockTime   `json:"end"`
	Teachers []types.TeacherID `json:"teachers"`
	Rooms    []types.RoomID    `json:"rooms"`
}

// Directory holds the reference data needed to resolve lesson refs.
type Directory struct {
	Teachers map[types.TeacherID]*Teacher
	Classes  map[types.ClassID]*Class
	Rooms    map[types.RoomID]*Room
}

func NewDirectory() *Directory {
	return &Directory{
		Teachers: make(map[types.TeacherID]*Teacher),
		Classes:  make(map[types.ClassID]*Class),
		Rooms:    make(map[types.RoomID]*Room),
	}
}
