package types

import (
	"fmt"
	"strconv"
	"time"
)

type TeacherID int

type ClassID int

func (x ClassID) String() string {
	return strconv.Itoa(int(x))
}

type RoomID int

// Day is a calendar date encoded as YYYYMMDD.
type Day int

func DayOf(t time.Time) Day {
	return Day(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

func (d Day) Valid() bool {
	month := (int(d) / 100) % 100
	day := int(d) % 100
	return d > 0 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", int(d)/10000, (int(d)/100)%100, int(d)%100)
}

// ClockTime is a time of day encoded as HHMM, e.g. 845 for 08:45.
type ClockTime int

func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*100 + t.Minute())
}

// Valid reports whether the value lies in [0, 2400).
func (c ClockTime) Valid() bool {
	return c >= 0 && c < 2400
}

// Minutes converts HHMM into minutes since midnight.
func (c ClockTime) Minutes() int {
	return int(c)/100*60 + int(c)%100
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/100, int(c)%100)
}
