package render

import (
	"github.com/lixenwraith/linebounce/vmath"
)

// Viewport maps world units onto a cols×rows cell grid
// Axes scale independently, the field always fills the grid
type Viewport struct {
	Cols, Rows     int
	scaleX, scaleY float64
}

// NewViewport fits a width×height world into cols×rows cells
func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		scaleX: float64(cols) / width,
		scaleY: float64(rows) / height,
	}
}

// ToCell returns continuous cell coordinates, cell (x, y) spans [x, x+1) × [y, y+1)
func (v Viewport) ToCell(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2(p.X*v.scaleX, p.Y*v.scaleY)
}

// FromCell returns the world position of the center of cell (x, y)
func (v Viewport) FromCell(x, y int) vmath.Vec2 {
	return vmath.V2((float64(x)+0.5)/v.scaleX, (float64(y)+0.5)/v.scaleY)
}

// Contains reports whether the cell is on the grid
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= 0 && y < v.Rows
}
