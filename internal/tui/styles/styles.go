package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
)

// Color palette
var (
	// Primary colors
	ColorPrimary    = lipgloss.Color("#B794F4") // Lavender
	ColorAccent     = lipgloss.Color("#E9D8FD") // Light lavender
	ColorSurface    = lipgloss.Color("#2D2D44") // Surface color
	ColorSurfaceAlt = lipgloss.Color("#3D3D5C") // Alternate surface

	// Text colors
	ColorText        = lipgloss.Color("#FAFAFA") // Primary text
	ColorTextMuted   = lipgloss.Color("#A0A0B0") // Muted text
	ColorTextDim     = lipgloss.Color("#6B6B80") // Dim text
	ColorTextInverse = lipgloss.Color("#1A1A2E") // Inverse text

	// State colors
	ColorSuccess = lipgloss.Color("#68D391") // Green
	ColorWarning = lipgloss.Color("#F6E05E") // Yellow
	ColorError   = lipgloss.Color("#FC8181") // Red
	ColorInfo    = lipgloss.Color("#63B3ED") // Blue

	// Floor map regions
	ColorRegionActive = lipgloss.Color("#FBBF24") // Warm yellow for on
	ColorRegionOff    = lipgloss.Color("#4A5568")
	ColorRegionWall   = lipgloss.Color("#4A4A5A")
)

// Styles for various UI components
var (
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StyleSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginTop(1)

	StyleRoomName = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleSelected = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Button styles
	StyleButton = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, 2)

	StyleButtonFocused = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 2)

	// Modal styles
	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Background(ColorSurface).
			Padding(1, 2)

	StyleModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleMapFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurfaceAlt).
			Padding(0, 1)

	StyleBanner = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#000000")).
			Padding(0, 1)

	// Help styles
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	StyleSpinner = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// TagColor maps a tag color name to the palette
func TagColor(c models.TagColor) lipgloss.Color {
	switch c {
	case models.TagGreen:
		return ColorSuccess
	case models.TagRed:
		return ColorError
	default:
		return ColorInfo
	}
}

// RegionColor returns the fill color of a map region
func RegionColor(mode models.RegionMode) lipgloss.Color {
	switch mode {
	case models.RegionActive:
		return ColorRegionActive
	case models.RegionOff:
		return ColorRegionOff
	default:
		return ColorRegionWall
	}
}
