package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/angristan/smartroom-tui/internal/config"
	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/store"
	"github.com/angristan/smartroom-tui/internal/tui/components"
	"github.com/angristan/smartroom-tui/internal/tui/messages"
	"github.com/angristan/smartroom-tui/internal/tui/screens"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenDetails
	ScreenSchedules
)

const notificationTick = 500 * time.Millisecond

// Model is the main application model
type Model struct {
	// Configuration
	config *config.Config
	logger *zap.Logger

	// Data
	store   *store.Store
	users   store.UserStore
	changes <-chan store.Snapshot
	rooms   []models.Room
	version uint64

	// Current screen
	screen Screen

	// Screen models
	dashboard screens.DashboardModel
	details   screens.DetailsModel
	schedules screens.SchedulesModel

	notifications *NotificationQueue
	ticking       bool

	// Window size
	width  int
	height int

	// Error state
	err error

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model. The initial screen is the
// dashboard, or the details of the last viewed room when it still exists.
func NewModel(cfg *config.Config, st *store.Store, users store.UserStore, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	snap := st.Snapshot()

	m := Model{
		config:        cfg,
		logger:        logger,
		store:         st,
		users:         users,
		changes:       st.Subscribe(),
		rooms:         snap.Rooms,
		version:       snap.Version,
		notifications: NewNotificationQueue(cfg.NotificationTTL()),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.dashboard = screens.NewDashboardModel()
	m.details = screens.NewDetailsModel()
	m.schedules = screens.NewSchedulesModel()

	m.dashboard.SetUser(users.User())
	m.setRooms(snap.Rooms)

	if cfg.LastRoomID != "" {
		if _, err := models.Find(snap.Rooms, cfg.LastRoomID); err == nil {
			m.screen = ScreenDetails
			m.details.SetRoom(cfg.LastRoomID)
		}
	}

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Smart Rooms"),
		m.dashboard.Init(),
		waitForChange(m.changes),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.SetSize(msg.Width, msg.Height)
		m.details.SetSize(msg.Width, msg.Height)
		m.schedules.SetSize(msg.Width, msg.Height)

	case spinner.TickMsg:
		// The dashboard owns the spinner whatever screen is showing
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Global key handlers
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "x":
			if n, ok := m.notifications.Newest(); ok {
				return m, func() tea.Msg {
					return messages.DismissNotificationMsg{ID: n.ID}
				}
			}
		}

	case messages.NavigateMsg:
		m.navigate(msg)
		return m, nil

	case messages.RoomsChangedMsg:
		// Keep listening before anything else so no snapshot is missed
		cmds = append(cmds, waitForChange(m.changes))
		if msg.Snapshot.Version < m.version {
			return m, tea.Batch(cmds...)
		}
		prev := m.rooms
		m.version = msg.Snapshot.Version
		m.setRooms(msg.Snapshot.Rooms)

		if anyOn(prev) && !anyOn(m.rooms) {
			cmds = append(cmds, m.notify(components.VariantCelebration,
				"Every room is resting",
				"Nothing is running at full power right now."))
		}
		return m, tea.Batch(cmds...)

	case messages.ToggleRoomMsg:
		m.dashboard.SetSaving(true)
		return m, m.toggleCmd(msg.RoomID, msg.Source)

	case messages.RoomToggledMsg:
		m.dashboard.SetSaving(false)
		m.dashboard.SetError(nil)
		m.err = nil
		return m, nil

	case messages.DeviceEventsMsg:
		for _, room := range msg.Rooms {
			if room.Status != models.StatusShutoff {
				continue
			}
			cmds = append(cmds, m.notify(components.VariantAlert,
				fmt.Sprintf("%s shut off", room.Name),
				"The hardware reported a fault. Use Force on to restart it."))
		}
		return m, tea.Batch(cmds...)

	case messages.ErrorMsg:
		m.err = msg.Err
		m.dashboard.SetSaving(false)
		m.dashboard.SetError(msg.Err)
		m.logger.Warn("room update failed", zap.Error(msg.Err))

		description := msg.Err.Error()
		if errors.Is(msg.Err, models.ErrRoomNotFound) || errors.Is(msg.Err, models.ErrUpsertMiss) {
			description = "That room no longer exists."
		}
		return m, m.notify(components.VariantWarning, "Couldn't update room", description)

	case messages.NotifyMsg:
		return m, m.notify(msg.Variant, msg.Title, msg.Description)

	case messages.DismissNotificationMsg:
		m.notifications.Dismiss(msg.ID)
		return m, nil

	case messages.NotificationTickMsg:
		if m.notifications.Cleanup() {
			return m, notificationTickCmd()
		}
		m.ticking = false
		return m, nil
	}

	// Route to current screen
	switch m.screen {
	case ScreenDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenDetails:
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenSchedules:
		var cmd tea.Cmd
		m.schedules, cmd = m.schedules.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the current screen
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenDashboard:
		body = m.dashboard.View()
	case ScreenDetails:
		body = m.details.View()
	case ScreenSchedules:
		body = m.schedules.View()
	default:
		return "Unknown screen"
	}

	banners := m.renderBanners()
	if banners == "" {
		return body
	}
	return banners + "\n" + body
}

func (m Model) renderBanners() string {
	active := m.notifications.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for i, n := range active {
		// Only the newest banner answers to x
		action := ""
		if i == len(active)-1 {
			action = "x dismiss"
		}
		lines = append(lines, components.RenderBanner(n.Variant, n.Title, n.Description, action, m.width))
	}
	return strings.Join(lines, "\n")
}

// SetHeaderStatus sets the connection text shown in the screen headers
func (m *Model) SetHeaderStatus(status string) {
	m.dashboard.SetStatus(status)
	m.details.SetStatus(status)
}

// Screen returns the current screen
func (m Model) Screen() Screen {
	return m.screen
}

func (m *Model) setRooms(rooms []models.Room) {
	m.rooms = rooms
	m.dashboard.SetRooms(rooms)
	m.details.SetRooms(rooms)
	m.schedules.SetRooms(rooms)
}

func (m *Model) navigate(msg messages.NavigateMsg) {
	var lastRoomID string
	switch msg.Target {
	case messages.TargetDashboard:
		m.screen = ScreenDashboard

	case messages.TargetDetails:
		m.screen = ScreenDetails
		m.details.SetRoom(msg.RoomID)
		lastRoomID = msg.RoomID

	case messages.TargetSchedules:
		m.screen = ScreenSchedules
		m.schedules.SetRoomFilter(msg.RoomID)
		return
	}

	if err := m.config.SaveLastRoomID(lastRoomID); err != nil {
		m.logger.Warn("failed to save config", zap.Error(err))
	}
}

// notify queues a banner and starts the expiry tick if it is not running
func (m *Model) notify(variant, title, description string) tea.Cmd {
	m.notifications.Push(variant, title, description)
	if m.ticking {
		return nil
	}
	m.ticking = true
	return notificationTickCmd()
}

// toggleCmd creates a command applying the toggle rule through the store
func (m Model) toggleCmd(roomID, source string) tea.Cmd {
	return func() tea.Msg {
		room, err := m.store.Toggle(m.ctx, roomID)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		m.logger.Debug("room toggled",
			zap.String("room_id", room.ID),
			zap.String("source", source),
			zap.String("status", room.Status.String()),
		)
		return messages.RoomToggledMsg{Room: room}
	}
}

// waitForChange blocks until the store publishes a snapshot
func waitForChange(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return messages.RoomsChangedMsg{Snapshot: snap}
	}
}

func notificationTickCmd() tea.Cmd {
	return tea.Tick(notificationTick, func(time.Time) tea.Msg {
		return messages.NotificationTickMsg{}
	})
}

func anyOn(rooms []models.Room) bool {
	for _, r := range rooms {
		if r.Status == models.StatusOn {
			return true
		}
	}
	return false
}
