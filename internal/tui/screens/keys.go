package screens

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

// KeyMap holds every binding used by the screens
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Toggle    key.Binding
	Focus     key.Binding
	FocusBack key.Binding
	MapToggle key.Binding
	Schedules key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "map focus"),
		),
		FocusBack: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		MapToggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map toggle"),
		),
		Schedules: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "schedules"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// renderHelp renders a one-line help bar from bindings
func renderHelp(bindings ...key.Binding) string {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = styles.StyleHelpKey
	h.Styles.ShortDesc = styles.StyleHelp
	h.Styles.ShortSeparator = styles.StyleHelp
	return h.ShortHelpView(bindings)
}
