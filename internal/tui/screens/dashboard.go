package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/components"
	"github.com/angristan/smartroom-tui/internal/tui/messages"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

// DashboardModel is the room overview screen
type DashboardModel struct {
	rooms    []models.Room
	user     models.User
	selected int

	// A toggle is in flight
	saving  bool
	spinner spinner.Model

	status string
	err    error
	keys   KeyMap

	width  int
	height int
}

// NewDashboardModel creates a new dashboard screen model
func NewDashboardModel() DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return DashboardModel{
		spinner: sp,
		keys:    DefaultKeyMap(),
		status:  "● Live",
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DashboardModel) SetUser(user models.User) {
	m.user = user
}

// SetStatus sets the text on the right of the header
func (m *DashboardModel) SetStatus(status string) {
	m.status = status
}

// SetRooms replaces the displayed rooms, keeping the selection on the same
// room when it still exists
func (m *DashboardModel) SetRooms(rooms []models.Room) {
	var selectedID string
	if room, ok := m.SelectedRoom(); ok {
		selectedID = room.ID
	}

	m.rooms = rooms

	if idx := models.IndexOf(rooms, selectedID); idx >= 0 {
		m.selected = idx
	}
	if m.selected >= len(m.rooms) {
		m.selected = max(0, len(m.rooms)-1)
	}
}

func (m *DashboardModel) SetSaving(saving bool) {
	m.saving = saving
}

// SetError shows err in the status line; nil clears it
func (m *DashboardModel) SetError(err error) {
	m.err = err
}

// SelectedRoom returns the room under the cursor
func (m DashboardModel) SelectedRoom() (models.Room, bool) {
	if m.selected >= 0 && m.selected < len(m.rooms) {
		return m.rooms[m.selected], true
	}
	return models.Room{}, false
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}

		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.rooms)-1 {
				m.selected++
			}

		case key.Matches(msg, m.keys.Open):
			if room, ok := m.SelectedRoom(); ok {
				return m, navigate(messages.TargetDetails, room.ID)
			}

		case key.Matches(msg, m.keys.Toggle):
			if room, ok := m.SelectedRoom(); ok {
				return m, toggle(room.ID, "list")
			}
		}
	}

	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.width, m.status))
	b.WriteString("\n\n")

	name := m.user.Name
	if name == "" {
		name = "there"
	}
	b.WriteString(styles.StyleTitle.Render(fmt.Sprintf("Hello, %s", name)))
	b.WriteString("\n")
	b.WriteString(styles.StyleSubtitle.Render("Here is how your rooms are doing"))
	b.WriteString("\n\n")

	if len(m.rooms) == 0 {
		b.WriteString(styles.StyleTextMuted.Render("  No rooms yet"))
		b.WriteString("\n")
	}

	nameWidth := 0
	for _, room := range m.rooms {
		nameWidth = max(nameWidth, lipgloss.Width(room.Name))
	}

	for i, room := range m.rooms {
		b.WriteString(m.renderRoomRow(room, i == m.selected, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(renderHelp(m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Toggle, m.keys.Quit))

	return b.String()
}

func (m DashboardModel) renderRoomRow(room models.Room, selected bool, nameWidth int) string {
	cursor := "  "
	nameStyle := styles.StyleRoomName
	if selected {
		cursor = styles.StyleSelected.Render("> ")
		nameStyle = styles.StyleSelected
	}

	name := nameStyle.Render(room.Name)
	pad := strings.Repeat(" ", max(0, nameWidth-lipgloss.Width(room.Name)))
	summary := styles.StyleTextMuted.Render(models.ConsumptionSummary(room.Status))

	return fmt.Sprintf("%s%s%s  %s  %s", cursor, name, pad, components.RenderTag(room.Status), summary)
}

func (m DashboardModel) renderStatusBar() string {
	if m.err != nil {
		return styles.StyleError.Render("✕ " + m.err.Error())
	}

	var on, idle, off int
	for _, room := range m.rooms {
		switch room.Status {
		case models.StatusOn:
			on++
		case models.StatusShutoff:
			off++
		default:
			idle++
		}
	}

	status := fmt.Sprintf("%d on • %d idle • %d off", on, idle, off)
	if m.saving {
		status = m.spinner.View() + " Saving • " + status
	}
	return styles.StyleTextMuted.Render(status)
}

func navigate(target messages.Target, roomID string) tea.Cmd {
	return func() tea.Msg {
		return messages.NavigateMsg{Target: target, RoomID: roomID}
	}
}

func notify(variant, title, description string) tea.Cmd {
	return func() tea.Msg {
		return messages.NotifyMsg{Variant: variant, Title: title, Description: description}
	}
}

func toggle(roomID, source string) tea.Cmd {
	return func() tea.Msg {
		return messages.ToggleRoomMsg{RoomID: roomID, Source: source}
	}
}
