package models

import "fmt"

// Upsert replaces the first room whose ID matches candidate and returns a
// new slice; rooms itself is never modified. A candidate with no match is
// a logic error: ErrUpsertMiss is returned along with rooms, and nothing
// is appended.
func Upsert(rooms []Room, candidate Room) ([]Room, error) {
	idx := IndexOf(rooms, candidate.ID)
	if idx < 0 {
		return rooms, fmt.Errorf("%w: %s", ErrUpsertMiss, candidate.ID)
	}

	out := make([]Room, len(rooms))
	copy(out, rooms)
	out[idx] = candidate.Clone()
	return out, nil
}

// IndexOf returns the position of the room with the given ID, or -1
func IndexOf(rooms []Room, id string) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the room with the given ID
func Find(rooms []Room, id string) (Room, error) {
	idx := IndexOf(rooms, id)
	if idx < 0 {
		return Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return rooms[idx].Clone(), nil
}
