package store

import "github.com/angristan/smartroom-tui/internal/models"

const hour = 60

// DemoRooms returns the sample home used in demo mode and to seed a new database
func DemoRooms() []models.Room {
	return []models.Room{
		{
			ID:     "livingroom",
			Name:   "Living room",
			Status: models.StatusOn,
			Schedules: []models.Schedule{
				{Start: 1 * hour, End: 7 * hour, Label: "Night"},
				{Start: 10 * hour, End: 16 * hour, Label: "Work hours"},
			},
		},
		{
			ID:     "kitchen",
			Name:   "Kitchen",
			Status: models.StatusOn,
			Schedules: []models.Schedule{
				{Start: 22 * hour, End: 6 * hour, Label: "Night"},
			},
		},
		{
			ID:     "bedroom",
			Name:   "Bedroom",
			Status: models.StatusIdle,
			Schedules: []models.Schedule{
				{Start: 8 * hour, End: 20 * hour, Label: "Day"},
			},
		},
		{
			ID:     "bathroom",
			Name:   "Bathroom",
			Status: models.StatusIdle,
			Schedules: []models.Schedule{
				{Start: 0, End: 6 * hour, Label: "Night"},
				{Start: 9 * hour, End: 18 * hour, Label: "Away"},
			},
		},
		{
			ID:     "office",
			Name:   "Office",
			Status: models.StatusShutoff,
			Schedules: []models.Schedule{
				{Start: 18 * hour, End: 9 * hour, Label: "Off hours"},
			},
		},
	}
}
