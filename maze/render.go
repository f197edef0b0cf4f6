package maze

import "strings"

// Scale factors mapping a grid cell to the character block a renderer draws
// it into: each cell is 4 characters wide and 2 high, plus the closing edge.
const (
	CharScaleX = 4
	CharScaleY = 2
)

// CharPosition maps a grid cell to the character cell at its center, where a
// renderer places a runner glyph.
func CharPosition(p Point) Point {
	return Point{X: p.X*CharScaleX + 2, Y: p.Y*CharScaleY + 1}
}

// Layout is a flattened description of the wall topology for external
// renderers: dimensions, start/end cells, and a wall-above/wall-left query
// per cell. Queries outside the grid report a wall, which gives the outer
// boundary for free.
type Layout struct {
	Width  int
	Height int
	Start  Point
	End    Point

	wallAbove []bool
	wallLeft  []bool
}

// Layout captures the maze's current wall topology.
func (m *Maze) Layout() *Layout {
	l := &Layout{
		Width:     m.width,
		Height:    m.height,
		Start:     m.start,
		End:       m.end,
		wallAbove: make([]bool, m.width*m.height),
		wallLeft:  make([]bool, m.width*m.height),
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.cells[Point{X: x, Y: y}]
			l.wallAbove[y*m.width+x] = cell.HasWallAbove()
			l.wallLeft[y*m.width+x] = cell.HasWallLeft()
		}
	}
	return l
}

// WallAbove reports whether the cell at (x, y) has its north wall standing.
func (l *Layout) WallAbove(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return true
	}
	return l.wallAbove[y*l.Width+x]
}

// WallLeft reports whether the cell at (x, y) has its west wall standing.
func (l *Layout) WallLeft(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return true
	}
	return l.wallLeft[y*l.Width+x]
}

// boxGlyphs maps the walls meeting at a corner, named by the compass arms
// present in S, E, N, W build order, to the box-drawing glyph joining them.
var boxGlyphs = map[string]string{
	"SENW": "┼",
	"SEN":  "├", "ENW": "┴", "SNW": "┤", "SEW": "┬",
	"EN": "└", "NW": "┘", "SE": "┌", "SW": "┐",
	"SN": "│", "N": "╵", "S": "╷",
	"EW": "─", "W": "╴", "E": "╶",
}

// corner picks the glyph for the top-left corner of cell p by looking at the
// walls of p and of the cells above and to the left of it.
func (m *Maze) corner(p Point) string {
	var desc string
	if m.cells[p].HasWallLeft() {
		desc += "S"
	}
	if m.cells[p].HasWallAbove() {
		desc += "E"
	}
	if c, ok := m.cells[p.Above()]; ok && c.HasWallLeft() {
		desc += "N"
	}
	if c, ok := m.cells[p.Left()]; ok && c.HasWallAbove() {
		desc += "W"
	}
	if g, ok := boxGlyphs[desc]; ok {
		return g
	}
	// An entirely open corner would close a corridor cycle, which a perfect
	// maze cannot contain.
	return "⚠"
}

// String renders the maze with box-drawing characters. Each cell is a
// CharScaleX by CharScaleY character block; the start cell has a gap in the
// left boundary and the end cell a gap in the right boundary.
func (m *Maze) String() string {
	var lines []string
	for y := 0; y < m.height; y++ {
		var line1, line2 strings.Builder
		for x := 0; x < m.width; x++ {
			p := Point{X: x, Y: y}
			cell := m.cells[p]

			line1.WriteString(m.corner(p))
			if cell.HasWallAbove() {
				line1.WriteString("───")
			} else {
				line1.WriteString("   ")
			}

			if cell.HasWallLeft() && p != m.start {
				line2.WriteString("│   ")
			} else {
				line2.WriteString("    ")
			}
		}

		// Close the right boundary of both rows.
		switch {
		case y == 0:
			line1.WriteString("┐")
		case m.cells[Point{X: m.width - 1, Y: y}].HasWallAbove():
			line1.WriteString("┤")
		default:
			line1.WriteString("│")
		}
		if y != m.end.Y {
			line2.WriteString("│")
		} else {
			line2.WriteString(" ")
		}

		lines = append(lines, line1.String(), line2.String())
	}

	var bottom strings.Builder
	bottom.WriteString("└───")
	for x := 1; x < m.width; x++ {
		if m.cells[Point{X: x, Y: m.height - 1}].HasWallLeft() {
			bottom.WriteString("┴")
		} else {
			bottom.WriteString("─")
		}
		bottom.WriteString("───")
	}
	bottom.WriteString("┘")
	lines = append(lines, bottom.String())

	return strings.Join(lines, "\n")
}
