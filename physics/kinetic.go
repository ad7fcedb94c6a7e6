package physics

import (
	"github.com/lixenwraith/linebounce/core"
)

// Default motion constants
const (
	DefaultGravity   = 2.0
	DefaultTimeScale = 30.0
)

// Kinematics holds the constant motion parameters shared by every body
type Kinematics struct {
	// Gravity is added to vertical velocity each tick (units/tick²)
	Gravity float64
	// TimeScale divides velocity into per-tick displacement, must be > 0
	TimeScale float64
}

// DefaultKinematics returns gravity 2 and time scale 30
func DefaultKinematics() Kinematics {
	return Kinematics{Gravity: DefaultGravity, TimeScale: DefaultTimeScale}
}

// Integrate performs one tick of motion: v.y += g; p += v / timeScale
// Used for both ordinary motion and collision resolution stepping
func (k Kinematics) Integrate(c *core.Circle) {
	c.Velocity.Y += k.Gravity
	c.Center.X += c.Velocity.X / k.TimeScale
	c.Center.Y += c.Velocity.Y / k.TimeScale
}

// Rotate advances the segment angle by its rotation speed, unbounded
func Rotate(s *core.Segment) {
	s.Angle += s.RotateSpeed
}
