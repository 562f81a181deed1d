package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

// RenderTag renders the colored status pill shown next to a room name
func RenderTag(status models.Status) string {
	color := styles.TagColor(models.TagColorFor(status))
	return lipgloss.NewStyle().
		Foreground(styles.ColorTextInverse).
		Background(color).
		Bold(true).
		Padding(0, 1).
		Render(models.StatusLabel(status))
}

// RenderActionButton renders the header toggle button for a status
func RenderActionButton(status models.Status, focused bool) string {
	style := styles.StyleButton
	if focused {
		style = styles.StyleButtonFocused
	}
	return style.Render(models.ActionLabel(status))
}

// StatusGlyph is the single-cell marker of the map status button
func StatusGlyph(status models.Status) string {
	switch status {
	case models.StatusOn:
		return "●"
	case models.StatusShutoff:
		return "✕"
	default:
		return "○"
	}
}
