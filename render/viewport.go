package render

import (
	"math"

	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// Viewport maps canvas coordinates onto a rectangle of terminal cells
type Viewport struct {
	X, Y       int // Top-left cell
	Cols, Rows int

	Width, Height float64 // Canvas size
}

// Valid reports whether the viewport can show anything
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.Width > 0 && v.Height > 0
}

// Scale returns cells per canvas unit on each axis
func (v Viewport) Scale() (sx, sy float64) {
	return float64(v.Cols) / v.Width, float64(v.Rows) / v.Height
}

// Cell maps a canvas point to a cell; ok is false outside the viewport
func (v Viewport) Cell(x, y float64) (cx, cy int, ok bool) {
	if !v.Valid() {
		return 0, 0, false
	}
	sx, sy := v.Scale()
	cx = v.X + int(math.Floor(x*sx))
	cy = v.Y + int(math.Floor(y*sy))
	ok = cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
	return cx, cy, ok
}

// CellRect maps a canvas rectangle to an inclusive cell span, never smaller than one cell
func (v Viewport) CellRect(r vmath.RectF) (x0, y0, x1, y1 int) {
	sx, sy := v.Scale()
	x0 = v.X + int(math.Floor(r.X*sx))
	y0 = v.Y + int(math.Floor(r.Y*sy))
	x1 = v.X + int(math.Ceil((r.X+r.W)*sx)) - 1
	y1 = v.Y + int(math.Ceil((r.Y+r.H)*sy)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)
	return x0, y0, x1, y1
}

// Contains reports whether a cell is inside the viewport
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
}

// ellipseSteps picks enough samples to draw a ring of canvas radius r without gaps
func (v Viewport) ellipseSteps(r float64) int {
	sx, sy := v.Scale()
	cells := 2 * math.Pi * r * math.Max(sx, sy)
	return max(16, int(cells*1.5))
}
