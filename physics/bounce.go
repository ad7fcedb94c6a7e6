package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/vmath"
)

var (
	// ErrDegenerateNormal is returned when the circle center sits exactly on the segment
	ErrDegenerateNormal = errors.New("physics: degenerate bounce normal")
	// ErrResolveDiverged is returned when stepping failed to separate the bodies within the cap
	ErrResolveDiverged = errors.New("physics: collision resolution did not converge")
)

// Resolver defaults
const (
	DefaultMaxResolveSteps   = 1000
	DefaultSeparationEpsilon = 0.01
)

// Resolver bounces circles off segments
type Resolver struct {
	Kinematics Kinematics
	// MaxResolveSteps caps the post-reflection stepping loop
	MaxResolveSteps int
	// SeparationEpsilon is the clearance used by the divergence fallback
	SeparationEpsilon float64
}

// NewResolver creates a resolver with default caps
func NewResolver(k Kinematics) *Resolver {
	return &Resolver{
		Kinematics:        k,
		MaxResolveSteps:   DefaultMaxResolveSteps,
		SeparationEpsilon: DefaultSeparationEpsilon,
	}
}

// Bounce reflects the circle velocity off the segment and steps it clear
// Returns false with no changes when the bodies do not intersect
//
// On ErrDegenerateNormal the circle is left untouched and false is returned.
// On ErrResolveDiverged the circle has been reflected and forcibly placed
// outside the segment along the normal, and true is returned.
func (r *Resolver) Bounce(c *core.Circle, s *core.Segment) (bool, error) {
	closest := ClosestPoint(c, s)
	if vmath.Distance(c.Center, closest) >= c.Radius {
		return false, nil
	}

	normal, err := vmath.UnitVector(vmath.VectorBetween(closest, c.Center))
	if err != nil {
		return false, fmt.Errorf("%w: center %v on segment at %v: %w", ErrDegenerateNormal, c.Center, s.Center, err)
	}

	c.Velocity = vmath.Reflect(c.Velocity, normal)

	for step := 0; IsIntersecting(c, s); step++ {
		if step >= r.MaxResolveSteps {
			depth := penetration(c, s)
			r.separate(c, s, normal)
			return true, fmt.Errorf("%w: %d steps, depth %.3f", ErrResolveDiverged, r.MaxResolveSteps, depth)
		}
		r.Kinematics.Integrate(c)
	}

	return true, nil
}

// separate places the circle just outside the segment along the local normal
// fallback is used when the center lies on the segment itself
func (r *Resolver) separate(c *core.Circle, s *core.Segment, fallback vmath.Vec2) {
	closest := ClosestPoint(c, s)
	normal, err := vmath.UnitVector(vmath.VectorBetween(closest, c.Center))
	if err != nil {
		normal = fallback
	}
	c.Center = vmath.Add(closest, vmath.Scale(normal, c.Radius+r.SeparationEpsilon))
}
