package sketch

import (
	"image/color"
	"math"
)

// Grid is the fixed lattice particles snap to. It is derived once from the
// config and redrawn every frame.
type Grid struct {
	Width      float64
	Height     float64
	Cells      int
	CellWidth  float64
	CellHeight float64
	LineWidth  float64
	LineColor  color.RGBA
}

// NewGrid derives the grid geometry from cfg.
func NewGrid(cfg Config) Grid {
	return Grid{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Cells:      cfg.Cells,
		CellWidth:  cfg.Width / float64(cfg.Cells),
		CellHeight: cfg.Height / float64(cfg.Cells),
		LineWidth:  cfg.GridLineWidth,
		LineColor:  cfg.GridColor,
	}
}

// Snap returns the top-left corner of the cell containing (x, y).
func (g *Grid) Snap(x, y float64) (float64, float64) {
	return math.Floor(x/g.CellWidth) * g.CellWidth,
		math.Floor(y/g.CellHeight) * g.CellHeight
}

// Contains reports whether (x, y) lies on the surface the grid covers.
func (g *Grid) Contains(x, y float64) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Lines returns Cells+1 vertical lines followed by Cells+1 horizontal lines.
func (g *Grid) Lines() []Line {
	lines := make([]Line, 0, 2*(g.Cells+1))
	for i := 0; i <= g.Cells; i++ {
		x := float64(i) * g.CellWidth
		lines = append(lines, Line{X0: x, Y0: 0, X1: x, Y1: g.Height})
	}
	for i := 0; i <= g.Cells; i++ {
		y := float64(i) * g.CellHeight
		lines = append(lines, Line{X0: 0, Y0: y, X1: g.Width, Y1: y})
	}
	return lines
}

// Draw strokes the whole grid in a single call.
func (g *Grid) Draw(s Surface) {
	s.StrokeLines(g.Lines(), g.LineWidth, g.LineColor)
}
