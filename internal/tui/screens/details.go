package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/components"
	"github.com/angristan/smartroom-tui/internal/tui/messages"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

const (
	chartWidth       = 24
	scheduleBarWidth = 48
)

// DetailsModel shows one room: status, consumption, floor map and schedule
type DetailsModel struct {
	roomID string
	rooms  []models.Room

	// Index into models.MapRegions of the region the map toggle acts on
	focus int

	status string
	keys   KeyMap

	width  int
	height int
}

// NewDetailsModel creates a new details screen model
func NewDetailsModel() DetailsModel {
	return DetailsModel{
		keys:   DefaultKeyMap(),
		status: "● Live",
	}
}

// SetStatus sets the text on the right of the header
func (m *DetailsModel) SetStatus(status string) {
	m.status = status
}

func (m *DetailsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DetailsModel) SetRooms(rooms []models.Room) {
	m.rooms = rooms
}

// SetRoom switches the screen to roomID and moves map focus onto its region
func (m *DetailsModel) SetRoom(roomID string) {
	m.roomID = roomID
	m.focus = 0
	for i, region := range models.MapRegions {
		if region.RoomID == roomID {
			m.focus = i
			break
		}
	}
}

func (m DetailsModel) RoomID() string {
	return m.roomID
}

// Room returns the viewed room, or false when it does not exist
func (m DetailsModel) Room() (models.Room, bool) {
	room, err := models.Find(m.rooms, m.roomID)
	return room, err == nil
}

// FocusedRoomID returns the room whose map region has focus
func (m DetailsModel) FocusedRoomID() string {
	if len(models.MapRegions) == 0 {
		return ""
	}
	return models.MapRegions[m.focus].RoomID
}

// Update handles messages
func (m DetailsModel) Update(msg tea.Msg) (DetailsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, navigate(messages.TargetDashboard, "")
	}

	// Everything below needs the room to exist
	if _, found := m.Room(); !found {
		if key.Matches(keyMsg, m.keys.Toggle) {
			return m, notify(components.VariantWarning, "Room not found",
				fmt.Sprintf("There is no room %q to toggle.", m.roomID))
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, toggle(m.roomID, "header")

	case key.Matches(keyMsg, m.keys.Focus):
		if n := len(models.MapRegions); n > 0 {
			m.focus = (m.focus + 1) % n
		}

	case key.Matches(keyMsg, m.keys.FocusBack):
		if n := len(models.MapRegions); n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}

	case key.Matches(keyMsg, m.keys.MapToggle):
		focused := m.FocusedRoomID()
		if _, err := models.Find(m.rooms, focused); err == nil {
			return m, toggle(focused, "map")
		}

	case key.Matches(keyMsg, m.keys.Schedules):
		return m, navigate(messages.TargetSchedules, m.roomID)
	}

	return m, nil
}

// View renders the details screen
func (m DetailsModel) View() string {
	room, found := m.Room()
	if !found {
		return m.renderNotFound()
	}

	var b strings.Builder

	b.WriteString(components.RenderHeader(m.width, m.status))
	b.WriteString("\n\n")

	// Title row: name, tag and header toggle
	b.WriteString(styles.StyleTitle.Render("Your " + room.Name))
	b.WriteString("  ")
	b.WriteString(components.RenderTag(room.Status))
	b.WriteString("  ")
	b.WriteString(components.RenderActionButton(room.Status, true))
	b.WriteString("\n")
	b.WriteString(styles.StyleSubtitle.Render(models.ConsumptionSummary(room.Status)))
	b.WriteString("\n")

	// Consumption chart and floor map side by side
	chart := styles.StyleSection.Render("Your energy consumption today") + "\n" +
		components.RenderConsumptionChart(models.ConsumptionAssetFor(room.Status), chartWidth)

	floor := components.FloorMap{
		Rooms:     m.rooms,
		TargetID:  room.ID,
		FocusedID: m.FocusedRoomID(),
	}
	mapBlock := styles.StyleSection.Render("Floor plan") + "\n" +
		styles.StyleMapFrame.Render(floor.Render())

	if m.width > 0 && m.width < chartWidth+models.MapWidth+8 {
		b.WriteString(chart)
		b.WriteString("\n")
		b.WriteString(mapBlock)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chart, "    ", mapBlock))
	}
	b.WriteString("\n")

	if focused, err := models.Find(m.rooms, m.FocusedRoomID()); err == nil {
		b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("Map focus: %s (%s)", focused.Name, models.StatusLabel(focused.Status))))
		b.WriteString("\n")
	}
	if _, onMap := models.RegionFor(room.ID); !onMap {
		b.WriteString(styles.StyleTextMuted.Render("This room is not on the floor plan"))
		b.WriteString("\n")
	}

	// Idle schedule
	b.WriteString(styles.StyleSection.Render("Automated idle schedule"))
	b.WriteString("\n")
	b.WriteString(components.RenderScheduleBar(room.Schedules, scheduleBarWidth))
	b.WriteString("\n")
	b.WriteString(components.RenderScheduleAnnotations(scheduleBarWidth))
	b.WriteString("\n\n")

	b.WriteString(renderHelp(m.keys.Toggle, m.keys.Focus, m.keys.MapToggle, m.keys.Schedules, m.keys.Back))

	return b.String()
}

func (m DetailsModel) renderNotFound() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.width, m.status))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleError.Render("Room not found"))
	b.WriteString("\n")
	if m.roomID != "" {
		b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("No room with id %q exists.", m.roomID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderHelp(m.keys.Back))

	return b.String()
}
