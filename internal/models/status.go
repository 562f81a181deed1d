package models

import (
	"fmt"
	"strings"
)

// TagColor is the color of the status tag next to a room name
type TagColor string

const (
	TagGreen TagColor = "green"
	TagRed   TagColor = "red"
	TagBlue  TagColor = "blue"
)

// RegionMode is how a room's region is drawn on the floor map
type RegionMode string

const (
	RegionActive      RegionMode = "Active"
	RegionOff         RegionMode = "Off"
	RegionTransparent RegionMode = "Transparent"
)

// ConsumptionAsset selects the energy chart shown for a room
type ConsumptionAsset int

const (
	ConsumptionLow ConsumptionAsset = iota
	ConsumptionHigh
)

// ScheduleAnnotations are the axis labels printed under the schedule bar
var ScheduleAnnotations = []string{"0AM", "6AM", "12AM", "6PM", "12PM"}

// StatusLabel returns the display label for a status.
// Every value other than On and Shutoff is shown as "Idle", including
// values added to Status later.
func StatusLabel(s Status) string {
	switch s {
	case StatusOn:
		return "On"
	case StatusShutoff:
		return "Off"
	default:
		return "Idle"
	}
}

// TagColorFor returns the tag color for a status, blue unless On or Shutoff
func TagColorFor(s Status) TagColor {
	switch s {
	case StatusOn:
		return TagGreen
	case StatusShutoff:
		return TagRed
	default:
		return TagBlue
	}
}

// RegionModeFor returns how room is drawn on a map focused on targetID.
// Only the target room is highlighted; Idle and Shutoff both draw as Off.
func RegionModeFor(room Room, targetID string) RegionMode {
	if room.ID != targetID {
		return RegionTransparent
	}
	if room.Status == StatusOn {
		return RegionActive
	}
	return RegionOff
}

// ConsumptionAssetFor picks the energy chart. It is not derived from telemetry.
func ConsumptionAssetFor(s Status) ConsumptionAsset {
	if s == StatusOn {
		return ConsumptionHigh
	}
	return ConsumptionLow
}

// ActionLabel is the label of the header button for a status
func ActionLabel(s Status) string {
	if s == StatusOn {
		return "Mark as idle"
	}
	return "Force on"
}

// DailyConsumptionKWh is the estimated daily consumption shown under the title
func DailyConsumptionKWh(s Status) int {
	if s == StatusIdle {
		return 10
	}
	return 16
}

// ConsumptionSummary renders the subtitle line of the details screen
func ConsumptionSummary(s Status) string {
	return fmt.Sprintf("%d kWh per day, currently %s", DailyConsumptionKWh(s), strings.ToLower(StatusLabel(s)))
}

// NextStatus is the toggle rule shared by every control surface.
// On goes to Idle, everything else goes to On. Shutoff is never a target.
func NextStatus(s Status) Status {
	if s == StatusOn {
		return StatusIdle
	}
	return StatusOn
}

// Toggled returns a copy of room with the toggle rule applied
func Toggled(room Room) Room {
	return room.WithStatus(NextStatus(room.Status))
}
