package physics

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/vmath"
)

const tolerance = 1e-9

// verticalSegment spans (100,80)-(100,120)
func verticalSegment() *core.Segment {
	return &core.Segment{Center: vmath.V2(100, 100), Span: 40, Angle: 0, RotateSpeed: 0.5}
}

func circleAt(x, y float64) *core.Circle {
	c := core.NewCircle(vmath.V2(x, y), 7)
	return &c
}

func TestLineEndpointsAxisAligned(t *testing.T) {
	approx := cmpopts.EquateApprox(0, tolerance)

	tests := []struct {
		name       string
		angle      float64
		end1, end2 vmath.Vec2
	}{
		{"vertical", 0, vmath.V2(100, 80), vmath.V2(100, 120)},
		{"quarter turn clockwise", 90, vmath.V2(120, 100), vmath.V2(80, 100)},
		{"half turn", 180, vmath.V2(100, 120), vmath.V2(100, 80)},
		{"negative angle", -90, vmath.V2(80, 100), vmath.V2(120, 100)},
		{"beyond full turn", 450, vmath.V2(120, 100), vmath.V2(80, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := verticalSegment()
			s.Angle = tt.angle
			end1, end2 := LineEndpoints(s)
			if diff := cmp.Diff(tt.end1, end1, approx); diff != "" {
				t.Errorf("end1 (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.end2, end2, approx); diff != "" {
				t.Errorf("end2 (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineEndpointsSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		s := &core.Segment{
			Center: vmath.V2(rng.Float64()*500, rng.Float64()*500),
			Span:   1 + rng.Float64()*100,
			Angle:  rng.Float64()*1440 - 720,
		}
		end1, end2 := LineEndpoints(s)

		assert.InDelta(t, s.Span/2, vmath.Distance(s.Center, end1), 1e-9)
		assert.InDelta(t, s.Span/2, vmath.Distance(s.Center, end2), 1e-9)

		// Colinear: cross product of center→end1 and center→end2 vanishes
		a := vmath.VectorBetween(s.Center, end1)
		b := vmath.VectorBetween(s.Center, end2)
		assert.InDelta(t, 0, a.X*b.Y-a.Y*b.X, 1e-6)
		assert.Less(t, vmath.DotProduct(a, b), 0.0, "ends must lie on opposite sides of center")
	}
}

func TestClosestPointCases(t *testing.T) {
	s := verticalSegment()
	end1, end2 := LineEndpoints(s)

	tests := []struct {
		name   string
		circle *core.Circle
		want   vmath.Vec2
	}{
		{"interior foot", circleAt(110, 100), vmath.V2(100, 100)},
		{"interior foot other side", circleAt(90, 113), vmath.V2(100, 113)},
		{"beyond first end", circleAt(100, 60), end1},
		{"beyond second end", circleAt(105, 130), end2},
		{"exactly at first end projection", circleAt(110, 80), end1},
		{"exactly at second end projection", circleAt(90, 120), end2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestPoint(tt.circle, s)
			assert.InDelta(t, tt.want.X, got.X, tolerance)
			assert.InDelta(t, tt.want.Y, got.Y, tolerance)
		})
	}
}

func TestClosestPointTieResolvesToEndpoint(t *testing.T) {
	s := verticalSegment()
	end1, end2 := LineEndpoints(s)

	assert.Equal(t, end1, ClosestPoint(circleAt(130, 80), s))
	assert.Equal(t, end2, ClosestPoint(circleAt(70, 120), s))
}

func TestClosestPointLiesOnSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		s := &core.Segment{
			Center: vmath.V2(rng.Float64()*400, rng.Float64()*400),
			Span:   5 + rng.Float64()*60,
			Angle:  rng.Float64() * 360,
		}
		c := circleAt(rng.Float64()*400, rng.Float64()*400)

		end1, end2 := LineEndpoints(s)
		p := ClosestPoint(c, s)

		// On the segment iff the two partial lengths add up to the span
		assert.InDelta(t, s.Span, vmath.Distance(end1, p)+vmath.Distance(p, end2), 1e-6)

		// No point of the segment is closer than p
		for _, q := range []vmath.Vec2{end1, end2, s.Center} {
			assert.LessOrEqual(t, vmath.Distance(c.Center, p), vmath.Distance(c.Center, q)+1e-9)
		}
	}
}

func TestIsIntersectingStrict(t *testing.T) {
	s := verticalSegment()

	assert.False(t, IsIntersecting(circleAt(107, 100), s), "tangent circle must not intersect")
	assert.True(t, IsIntersecting(circleAt(106.9, 100), s))
	assert.True(t, IsIntersecting(circleAt(100, 100), s))
	assert.False(t, IsIntersecting(circleAt(100, 73), s), "tangent at end must not intersect")
	assert.True(t, IsIntersecting(circleAt(100, 73.5), s))
	assert.False(t, IsIntersecting(circleAt(200, 200), s))
}

func TestIsIntersectingMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := &core.Segment{Center: vmath.V2(50, 50), Span: 40, Angle: 33}

	for i := 0; i < 1000; i++ {
		c := circleAt(rng.Float64()*100, rng.Float64()*100)
		d := vmath.Distance(c.Center, ClosestPoint(c, s))
		assert.Equal(t, d < c.Radius, IsIntersecting(c, s))
	}
}

func TestPenetration(t *testing.T) {
	s := verticalSegment()
	assert.InDelta(t, 2.0, penetration(circleAt(105, 100), s), tolerance)
	assert.Equal(t, 0.0, penetration(circleAt(120, 100), s))
	assert.Equal(t, 0.0, penetration(circleAt(107, 100), s))
}
