package engine

import (
	"math/rand"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/vmath"
)

// BuildGrid lays segments out column by column at (col*spacing, row*spacing)
// Omitted cells are skipped; each segment starts at a random angle in [0, 360)
func BuildGrid(g GridOptions, rng *rand.Rand) []core.Segment {
	omit := make(map[GridCell]struct{}, len(g.Omit))
	for _, cell := range g.Omit {
		omit[cell] = struct{}{}
	}

	segments := make([]core.Segment, 0, g.Cols*g.Rows)
	for col := 1; col <= g.Cols; col++ {
		for row := 1; row <= g.Rows; row++ {
			if _, skip := omit[GridCell{Col: col, Row: row}]; skip {
				continue
			}
			segments = append(segments, core.Segment{
				Center:      vmath.V2(float64(col)*g.Spacing, float64(row)*g.Spacing),
				Span:        g.Span,
				Angle:       rng.Float64() * 360,
				RotateSpeed: g.RotateSpeed,
			})
		}
	}
	return segments
}
