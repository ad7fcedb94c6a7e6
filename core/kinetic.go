package core

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/linebounce/vmath"
)

// Circle is a falling body
type Circle struct {
	ID uuid.UUID
	// Center is the position in world units
	Center vmath.Vec2
	// Velocity is in world units per TimeScale ticks
	Velocity vmath.Vec2
	// Radius is fixed at creation, always > 0
	Radius float64
}

// NewCircle creates a circle at rest
func NewCircle(center vmath.Vec2, radius float64) Circle {
	return Circle{
		ID:     uuid.New(),
		Center: center,
		Radius: radius,
	}
}

// Segment is a finite line rotating about its center
type Segment struct {
	Center vmath.Vec2
	// Span is the full length, always > 0
	Span float64
	// Angle in degrees, unbounded; 0 is vertical
	Angle float64
	// RotateSpeed in degrees per tick
	RotateSpeed float64
}
