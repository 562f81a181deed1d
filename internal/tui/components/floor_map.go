package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smartroom-tui/internal/models"
	"github.com/angristan/smartroom-tui/internal/tui/styles"
)

type mapCell struct {
	ch    rune
	color lipgloss.Color
	bold  bool
}

// FloorMap is everything needed to draw the floor plan
type FloorMap struct {
	// Rooms known to the store; regions without a room draw as transparent
	Rooms []models.Room
	// Room being viewed; only it is highlighted
	TargetID string
	// Region with keyboard focus, may differ from TargetID
	FocusedID string
}

// Modes returns the region mode of every map region, keyed by room ID
func (f FloorMap) Modes() map[string]models.RegionMode {
	modes := make(map[string]models.RegionMode, len(models.MapRegions))
	for _, region := range models.MapRegions {
		room, err := models.Find(f.Rooms, region.RoomID)
		if err != nil {
			modes[region.RoomID] = models.RegionTransparent
			continue
		}
		modes[region.RoomID] = models.RegionModeFor(room, f.TargetID)
	}
	return modes
}

// Render draws the map with the viewed room's status button on top
func (f FloorMap) Render() string {
	grid := make([][]mapCell, models.MapHeight)
	for y := range grid {
		grid[y] = make([]mapCell, models.MapWidth)
		for x := range grid[y] {
			grid[y][x] = mapCell{ch: ' ', color: styles.ColorRegionWall}
		}
	}

	modes := f.Modes()
	for _, region := range models.MapRegions {
		drawRegion(grid, region, modes[region.RoomID], region.RoomID == f.FocusedID)
	}

	if target, err := models.Find(f.Rooms, f.TargetID); err == nil {
		// No position means no button
		if pos, ok := models.ButtonPosition(target.ID); ok && pos.Y < len(grid) && pos.X < len(grid[pos.Y]) {
			grid[pos.Y][pos.X] = mapCell{
				ch:    []rune(StatusGlyph(target.Status))[0],
				color: styles.TagColor(models.TagColorFor(target.Status)),
				bold:  true,
			}
		}
	}

	return renderGrid(grid)
}

func drawRegion(grid [][]mapCell, region models.MapRegion, mode models.RegionMode, focused bool) {
	r := region.Bounds
	wall := styles.ColorRegionWall
	if focused {
		wall = styles.ColorPrimary
	}
	fill := ' '
	switch mode {
	case models.RegionActive:
		fill = '░'
	case models.RegionOff:
		fill = '·'
	}
	fillColor := styles.RegionColor(mode)

	for y := r.Y; y < r.Y+r.H && y < len(grid); y++ {
		for x := r.X; x < r.X+r.W && x < len(grid[y]); x++ {
			top, bottom := y == r.Y, y == r.Y+r.H-1
			left, right := x == r.X, x == r.X+r.W-1

			var ch rune
			switch {
			case top && left:
				ch = '┌'
			case top && right:
				ch = '┐'
			case bottom && left:
				ch = '└'
			case bottom && right:
				ch = '┘'
			case top || bottom:
				ch = '─'
			case left || right:
				ch = '│'
			default:
				grid[y][x] = mapCell{ch: fill, color: fillColor}
				continue
			}
			grid[y][x] = mapCell{ch: ch, color: wall, bold: focused}
		}
	}

	// Label on the first inner row
	labelColor := styles.ColorTextMuted
	if mode == models.RegionActive {
		labelColor = styles.ColorText
	}
	y := r.Y + 1
	if y >= len(grid) {
		return
	}
	for i, ch := range []rune(region.Label) {
		x := r.X + 1 + i
		if x >= r.X+r.W-1 || x >= len(grid[y]) {
			break
		}
		grid[y][x] = mapCell{ch: ch, color: labelColor, bold: focused}
	}
}

// renderGrid renders rows, styling runs of identical cells together
func renderGrid(grid [][]mapCell) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for x := 0; x < len(row); {
			end := x
			var run strings.Builder
			for end < len(row) && row[end].color == row[x].color && row[end].bold == row[x].bold {
				run.WriteRune(row[end].ch)
				end++
			}
			style := lipgloss.NewStyle().Foreground(row[x].color).Bold(row[x].bold)
			b.WriteString(style.Render(run.String()))
			x = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
