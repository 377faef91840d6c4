package roster

import "strings"

// RoomPolicy lists rooms where nobody has to be accounted for during a
// drill, such as outside venues or remote lessons.
type RoomPolicy struct {
	ExcludedPrefixes []string
	ExcludedNames    []string
}

func DefaultRoomPolicy() RoomPolicy {
	return RoomPolicy{
		ExcludedPrefixes: []string{"r", "l", "mso"},
		ExcludedNames:    []string{"distanz", "extern"},
	}
}

// Excluded reports whether a room with the given display name is ignored.
// Matching is case-insensitive.
func (p RoomPolicy) Excluded(name string) bool {
	n := strings.ToLower(name)
	for _, prefix := range p.ExcludedPrefixes {
		if strings.HasPrefix(n, strings.ToLower(prefix)) {
			return true
		}
	}
	for _, excluded := range p.ExcludedNames {
		if n == strings.ToLower(excluded) {
			return true
		}
	}
	return false
}
