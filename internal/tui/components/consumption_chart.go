package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Static hourly profiles; these are illustrations, not measurements
var (
	highProfile = []int{1, 1, 1, 1, 2, 3, 5, 6, 5, 4, 4, 5, 6, 5, 4, 4, 5, 6, 7, 7, 6, 5, 3, 2}
	lowProfile  = []int{0, 0, 0, 0, 0, 1, 2, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 3, 3, 2, 1, 1, 0}
)

// ConsumptionProfile returns the hourly bars drawn for an asset
func ConsumptionProfile(asset models.ConsumptionAsset) []int {
	if asset == models.ConsumptionHigh {
		return highProfile
	}
	return lowProfile
}

// RenderConsumptionChart draws the consumption sparkline stretched to width
func RenderConsumptionChart(asset models.ConsumptionAsset, width int) string {
	profile := ConsumptionProfile(asset)
	if width <= 0 {
		width = len(profile)
	}

	color := styles.ColorInfo
	if asset == models.ConsumptionHigh {
		color = styles.ColorWarning
	}
	style := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for i := 0; i < width; i++ {
		level := profile[i*len(profile)/width]
		b.WriteRune(sparkLevels[level])
	}
	return style.Render(b.String())
}
