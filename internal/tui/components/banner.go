package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

// Banner variants
const (
	VariantWarning     = "warning"
	VariantAlert       = "alert"
	VariantCelebration = "celebration"
)

// RenderBanner renders one notification banner. A non-empty action is
// shown as a key hint after the title.
func RenderBanner(variant, title, description, action string, width int) string {
	icon := "▲"
	iconColor := styles.ColorError
	switch variant {
	case VariantCelebration:
		icon = "✦"
		iconColor = styles.ColorText
	case VariantWarning:
		icon = "!"
		iconColor = styles.ColorPrimary
	}

	content := lipgloss.NewStyle().Foreground(iconColor).Render(icon) + " " + lipgloss.NewStyle().Bold(true).Render(title)
	if action != "" {
		content += "  " + styles.StyleHelpKey.Render(action)
	}
	if description != "" {
		content += "\n" + styles.StyleTextMuted.Render(description)
	}

	style := styles.StyleBanner
	if width > 4 {
		style = style.Width(width)
	}
	return style.Render(content)
}
