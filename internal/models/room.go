package models

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the tri-state of a room
type Status int

const (
	StatusOn Status = iota
	StatusIdle
	StatusShutoff
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrUpsertMiss    = errors.New("upsert target not present")
	ErrInvalidStatus = errors.New("invalid room status")
)

// String returns the persisted form of the status
func (s Status) String() string {
	switch s {
	case StatusOn:
		return "on"
	case StatusIdle:
		return "idle"
	case StatusShutoff:
		return "shutoff"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus parses the persisted form of a status
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return StatusOn, nil
	case "idle":
		return StatusIdle, nil
	case "shutoff", "off":
		return StatusShutoff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Room represents one controllable physical space
type Room struct {
	// Stable identifier, also the key into the floor map
	ID string
	// User-friendly name
	Name string
	// Current status
	Status Status
	// Automated idle windows, in display order
	Schedules []Schedule
}

// Clone returns a copy that shares no slices with r
func (r Room) Clone() Room {
	clone := r
	if r.Schedules != nil {
		clone.Schedules = make([]Schedule, len(r.Schedules))
		copy(clone.Schedules, r.Schedules)
	}
	return clone
}

// WithStatus returns a copy of r with the status overwritten
func (r Room) WithStatus(s Status) Room {
	clone := r.Clone()
	clone.Status = s
	return clone
}

// CloneRooms copies a room list, including each room's schedules
func CloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return nil
	}
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.Clone()
	}
	return out
}

// User is the signed-in occupant
type User struct {
	Name string
}
