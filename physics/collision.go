package physics

import (
	"math"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/vmath"
)

// segmentAxis is the segment direction at angle 0, straight up in screen coordinates
var segmentAxis = vmath.Vec2{X: 0, Y: -1}

// LineEndpoints returns the two ends of the segment, symmetric about its center
// The first end lies along the axis rotated by Angle, the second opposite to it
func LineEndpoints(s *core.Segment) (vmath.Vec2, vmath.Vec2) {
	dir := vmath.RotateVector(segmentAxis, vmath.DegToRad(s.Angle))
	half := vmath.Scale(dir, s.Span/2)
	return vmath.Add(s.Center, half), vmath.Sub(s.Center, half)
}

// ClosestPoint returns the point on the segment nearest to the circle center
// Projections at or beyond either end resolve to that end
func ClosestPoint(c *core.Circle, s *core.Segment) vmath.Vec2 {
	end1, end2 := LineEndpoints(s)

	line := vmath.VectorBetween(end1, end2)
	length := vmath.Magnitude(line)
	if length == 0 {
		return end1
	}
	dir := vmath.Scale(line, 1/length)

	projection := vmath.DotProduct(vmath.VectorBetween(end1, c.Center), dir)

	switch {
	case projection <= 0:
		return end1
	case projection >= length:
		return end2
	default:
		return vmath.Add(end1, vmath.Scale(dir, projection))
	}
}

// IsIntersecting reports whether the circle overlaps the segment
// Exact tangency does not count
func IsIntersecting(c *core.Circle, s *core.Segment) bool {
	return vmath.Distance(c.Center, ClosestPoint(c, s)) < c.Radius
}

// penetration returns how far the circle reaches past the segment surface, 0 when clear
func penetration(c *core.Circle, s *core.Segment) float64 {
	return math.Max(0, c.Radius-vmath.Distance(c.Center, ClosestPoint(c, s)))
}
