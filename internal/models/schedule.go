package models

import "fmt"

const minutesPerDay = 24 * 60

// Schedule is an automated idle window within a day
type Schedule struct {
	// Minutes from midnight, [0, 1440)
	Start int
	End   int
	// Optional user-facing label
	Label string
}

// Valid reports whether both bounds fall within a day.
// End <= Start is allowed and means the window wraps past midnight.
func (s Schedule) Valid() bool {
	return s.Start >= 0 && s.Start < minutesPerDay && s.End >= 0 && s.End < minutesPerDay
}

// Wraps reports whether the window crosses midnight
func (s Schedule) Wraps() bool {
	return s.End <= s.Start
}

// Duration returns the window length in minutes
func (s Schedule) Duration() int {
	if s.Wraps() {
		return minutesPerDay - s.Start + s.End
	}
	return s.End - s.Start
}

// Covers reports whether minute m of the day falls inside the window
func (s Schedule) Covers(m int) bool {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	if s.Wraps() {
		return m >= s.Start || m < s.End
	}
	return m >= s.Start && m < s.End
}

// String renders the window as HH:MM-HH:MM
func (s Schedule) String() string {
	return fmt.Sprintf("%s-%s", clock(s.Start), clock(s.End))
}

func clock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// RoomSchedule pairs a schedule with the room it belongs to
type RoomSchedule struct {
	RoomID   string
	RoomName string
	Schedule Schedule
}

// SchedulesByRoom flattens every room's schedules, grouped by room ID
func SchedulesByRoom(rooms []Room) map[string][]RoomSchedule {
	grouped := make(map[string][]RoomSchedule)
	for _, room := range rooms {
		for _, s := range room.Schedules {
			grouped[room.ID] = append(grouped[room.ID], RoomSchedule{
				RoomID:   room.ID,
				RoomName: room.Name,
				Schedule: s,
			})
		}
	}
	return grouped
}
