package messages

import (
	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/store"
)

// Target is a navigation destination
type Target int

const (
	TargetDashboard Target = iota
	TargetDetails
	TargetSchedules
)

// NavigateMsg asks the root model to switch screens.
// RoomID is only read for TargetDetails and TargetSchedules.
type NavigateMsg struct {
	Target Target
	RoomID string
}

// RoomsChangedMsg carries a store snapshot after a mutation
type RoomsChangedMsg struct {
	Snapshot store.Snapshot
}

// ToggleRoomMsg asks for the toggle rule to be applied to a room
type ToggleRoomMsg struct {
	RoomID string
	// Source is "header", "map" or "list", for logging
	Source string
}

// RoomToggledMsg reports a successful toggle
type RoomToggledMsg struct {
	Room models.Room
}

// DeviceEventsMsg carries statuses reported by hardware, already applied
type DeviceEventsMsg struct {
	Rooms []models.Room
}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}

// NotifyMsg asks for a banner to be shown
type NotifyMsg struct {
	Variant     string
	Title       string
	Description string
}

// DismissNotificationMsg removes a banner before it expires
type DismissNotificationMsg struct {
	ID string
}

// NotificationTickMsg drives banner expiry
type NotificationTickMsg struct{}
