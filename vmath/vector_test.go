package vmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestDistanceAndMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, Distance(V2(1, 2), V2(4, 6)))
	assert.Equal(t, 5.0, Distance(V2(4, 6), V2(1, 2)))
	assert.Equal(t, 0.0, Distance(V2(3, 3), V2(3, 3)))
	assert.Equal(t, 13.0, Magnitude(V2(-5, 12)))
	assert.Equal(t, 169.0, MagnitudeSq(V2(-5, 12)))
}

func TestVectorBetween(t *testing.T) {
	assert.Equal(t, V2(3, -4), VectorBetween(V2(1, 5), V2(4, 1)))
}

func TestDotProduct(t *testing.T) {
	assert.Equal(t, 11.0, DotProduct(V2(1, 2), V2(3, 4)))
	assert.Equal(t, 0.0, DotProduct(V2(1, 0), V2(0, 7)))
}

func TestUnitVector(t *testing.T) {
	u, err := UnitVector(V2(3, -4))
	require.NoError(t, err)
	if diff := cmp.Diff(V2(0.6, -0.8), u, approx); diff != "" {
		t.Errorf("unit vector mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.0, Magnitude(u), 1e-12)
}

func TestUnitVectorZero(t *testing.T) {
	_, err := UnitVector(Vec2{})
	assert.ErrorIs(t, err, ErrZeroVector)

	_, err = UnitVector(V2(math.NaN(), 1))
	assert.ErrorIs(t, err, ErrZeroVector)

	_, err = UnitVector(V2(math.Inf(1), 0))
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestReflectPreservesTangentAndFlipsNormal(t *testing.T) {
	n, err := UnitVector(V2(1, -2))
	require.NoError(t, err)

	for _, v := range []Vec2{V2(3, 4), V2(-7, 0.5), V2(0, 9), V2(1, -2)} {
		r := Reflect(v, n)
		assert.InDelta(t, -DotProduct(v, n), DotProduct(r, n), 1e-9)

		tangent := Sub(v, Scale(n, DotProduct(v, n)))
		reflectedTangent := Sub(r, Scale(n, DotProduct(r, n)))
		if diff := cmp.Diff(tangent, reflectedTangent, approx); diff != "" {
			t.Errorf("tangent changed for %v (-want +got):\n%s", v, diff)
		}
		assert.InDelta(t, Magnitude(v), Magnitude(r), 1e-9)
	}
}

func TestRotateVector(t *testing.T) {
	up := V2(0, -1)

	tests := []struct {
		deg  float64
		want Vec2
	}{
		{0, V2(0, -1)},
		{90, V2(1, 0)},
		{180, V2(0, 1)},
		{270, V2(-1, 0)},
		{360, V2(0, -1)},
	}
	for _, tt := range tests {
		got := RotateVector(up, DegToRad(tt.deg))
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("rotate %v° (-want +got):\n%s", tt.deg, diff)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	v := V2(2, 5)
	assert.Equal(t, 0.0, DotProduct(v, Perpendicular(v)))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(V2(1, -1)))
	assert.False(t, IsFinite(V2(math.NaN(), 0)))
	assert.False(t, IsFinite(V2(0, math.Inf(-1))))
}
