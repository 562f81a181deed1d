package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/messages"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

// SchedulesModel is the idle schedule modal
type SchedulesModel struct {
	rooms    []models.Room
	selected int

	// Flat list for navigation
	flatList []scheduleItem

	// Filter to a specific room (empty = show all)
	filterRoomID   string
	filterRoomName string

	now  func() time.Time
	keys KeyMap

	width  int
	height int
}

type scheduleItem struct {
	entry    models.RoomSchedule
	isHeader bool
	roomName string
}

// NewSchedulesModel creates a new schedules modal model
func NewSchedulesModel() SchedulesModel {
	return SchedulesModel{
		now:  time.Now,
		keys: DefaultKeyMap(),
	}
}

// SetSize sets the terminal size
func (m *SchedulesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetRooms sets the room data
func (m *SchedulesModel) SetRooms(rooms []models.Room) {
	m.rooms = rooms
	m.rebuildFlatList()
}

// SetRoomFilter sets the room filter and rebuilds the list
func (m *SchedulesModel) SetRoomFilter(roomID string) {
	m.filterRoomID = roomID
	m.filterRoomName = ""
	if room, err := models.Find(m.rooms, roomID); err == nil {
		m.filterRoomName = room.Name
	}
	m.rebuildFlatList()
	m.selectFirst()
}

func (m *SchedulesModel) rebuildFlatList() {
	grouped := models.SchedulesByRoom(m.rooms)
	m.flatList = nil

	for _, room := range m.rooms {
		if m.filterRoomID != "" && room.ID != m.filterRoomID {
			continue
		}
		entries := grouped[room.ID]
		if len(entries) == 0 {
			continue
		}

		// Only add room header if showing all rooms
		if m.filterRoomID == "" {
			m.flatList = append(m.flatList, scheduleItem{isHeader: true, roomName: room.Name})
		}
		for _, entry := range entries {
			m.flatList = append(m.flatList, scheduleItem{entry: entry, roomName: room.Name})
		}
	}

	if m.selected >= len(m.flatList) || (m.selected < len(m.flatList) && m.flatList[m.selected].isHeader) {
		m.selectFirst()
	}
}

func (m *SchedulesModel) selectFirst() {
	m.selected = 0
	for i, item := range m.flatList {
		if !item.isHeader {
			m.selected = i
			return
		}
	}
}

// Update handles messages
func (m SchedulesModel) Update(msg tea.Msg) (SchedulesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Schedules), key.Matches(keyMsg, m.keys.Quit):
		if m.filterRoomID != "" {
			return m, navigate(messages.TargetDetails, m.filterRoomID)
		}
		return m, navigate(messages.TargetDashboard, "")

	case key.Matches(keyMsg, m.keys.Up):
		m.movePrev()

	case key.Matches(keyMsg, m.keys.Down):
		m.moveNext()
	}

	return m, nil
}

func (m *SchedulesModel) moveNext() {
	for i := m.selected + 1; i < len(m.flatList); i++ {
		if !m.flatList[i].isHeader {
			m.selected = i
			return
		}
	}
}

func (m *SchedulesModel) movePrev() {
	for i := m.selected - 1; i >= 0; i-- {
		if !m.flatList[i].isHeader {
			m.selected = i
			return
		}
	}
}

// View renders the schedules modal
func (m SchedulesModel) View() string {
	var b strings.Builder

	title := "Idle schedules"
	if m.filterRoomName != "" {
		title = m.filterRoomName + " idle schedules"
	}
	b.WriteString(styles.StyleModalTitle.Render(title))
	b.WriteString("\n")

	t := m.now()
	minute := t.Hour()*60 + t.Minute()

	for i, item := range m.flatList {
		if item.isHeader {
			b.WriteString(styles.StyleRoomName.Render(item.roomName))
			b.WriteString("\n")
			continue
		}

		s := item.entry.Schedule
		line := s.String()
		if s.Label != "" {
			line += "  " + s.Label
		}
		line += styles.StyleTextMuted.Render(fmt.Sprintf("  (%dh%02d)", s.Duration()/60, s.Duration()%60))
		if s.Covers(minute) {
			line += "  " + styles.StyleSuccess.Render("active now")
		}

		cursor := "  "
		if i == m.selected {
			cursor = styles.StyleSelected.Render("> ")
		}
		b.WriteString(cursor + line + "\n")
	}

	if len(m.flatList) == 0 {
		b.WriteString(styles.StyleTextMuted.Render("No idle schedules"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StyleHelp.Render("↑/↓ navigate • esc close"))

	// Responsive width (70% of screen, 40-60 chars)
	content := b.String()
	modalWidth := m.width * 70 / 100
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 60 {
		modalWidth = 60
	}
	modal := styles.StyleModal.Width(modalWidth).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
