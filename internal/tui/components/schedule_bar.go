package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

const minutesPerDay = 24 * 60

// ScheduleCells returns, per cell of a bar width cells wide, whether the
// middle of that slice of the day falls in any schedule
func ScheduleCells(schedules []models.Schedule, width int) []bool {
	if width <= 0 {
		return nil
	}
	cells := make([]bool, width)
	for i := range cells {
		mid := (2*i + 1) * minutesPerDay / (2 * width)
		for _, s := range schedules {
			if s.Valid() && s.Covers(mid) {
				cells[i] = true
				break
			}
		}
	}
	return cells
}

// RenderScheduleBar renders a 24h bar with idle windows filled
func RenderScheduleBar(schedules []models.Schedule, width int) string {
	filled := lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	empty := lipgloss.NewStyle().Foreground(styles.ColorSurfaceAlt)

	var b strings.Builder
	for _, on := range ScheduleCells(schedules, width) {
		if on {
			b.WriteString(filled.Render("█"))
		} else {
			b.WriteString(empty.Render("─"))
		}
	}
	return b.String()
}

// RenderScheduleAnnotations spreads the axis labels across width cells
func RenderScheduleAnnotations(width int) string {
	labels := models.ScheduleAnnotations
	if width <= 0 || len(labels) == 0 {
		return ""
	}

	line := []rune(strings.Repeat(" ", width))
	for i, label := range labels {
		pos := 0
		if len(labels) > 1 {
			pos = i * (width - 1) / (len(labels) - 1)
		}
		// Right-align the last label, center the middle ones
		switch {
		case i == len(labels)-1:
			pos -= len(label) - 1
		case i > 0:
			pos -= len(label) / 2
		}
		if pos < 0 {
			pos = 0
		}
		for j, r := range label {
			if pos+j < len(line) {
				line[pos+j] = r
			}
		}
	}
	return styles.StyleTextMuted.Render(string(line))
}
