package vmath

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a direction is requested from a vector with no length
var ErrZeroVector = errors.New("vmath: zero-length vector")

// Vec2 is a float64 2D vector
// Used for positions, displacements, velocities and directions alike
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// VectorBetween returns the displacement from start to end
func VectorBetween(start, end Vec2) Vec2 {
	return Sub(end, start)
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// MagnitudeSq returns squared length without sqrt
func MagnitudeSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns Euclidean length
func Magnitude(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns Euclidean distance between two points
func Distance(p1, p2 Vec2) float64 {
	return Magnitude(Sub(p1, p2))
}

// UnitVector returns v scaled to length 1
// Zero or non-finite input yields ErrZeroVector rather than NaN components
func UnitVector(v Vec2) (Vec2, error) {
	mag := Magnitude(v)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec2{}, ErrZeroVector
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, nil
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal Vec2) Vec2 {
	dot2 := 2 * DotProduct(vel, normal)
	return Vec2{vel.X - dot2*normal.X, vel.Y - dot2*normal.Y}
}

// RotateVector rotates v by rad radians
// In screen coordinates (Y down) positive angles turn clockwise
func RotateVector(v Vec2, rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// IsFinite reports whether both components are neither NaN nor infinite
func IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
