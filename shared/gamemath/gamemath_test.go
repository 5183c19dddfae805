package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", V(5, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero", V(0, 0), V(0, 0)},
		{"below threshold", V(0.001, 0.002), V(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y))
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), 1e-9, "in=%v", tt.in)
	}
}

func TestTrackingSpeed(t *testing.T) {
	assert.Equal(t, 0.0, TrackingSpeed(0.5, 0.52, 2, 0.05), "inside dead zone")
	assert.Equal(t, 2.0, TrackingSpeed(0, 1, 2, 0.05), "turn counter-clockwise")
	assert.Equal(t, -2.0, TrackingSpeed(1, 0, 2, 0.05), "turn clockwise")
	// Shortest way across the wrap point.
	assert.Equal(t, 2.0, TrackingSpeed(3, -3, 2, 0.05))
}

func TestAxisDominant(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"x wins", V(-5, 2), V(-1, 0)},
		{"y wins", V(1, 3), V(0, 1)},
		{"tie goes to x", V(-2, 2), V(-1, 0)},
		{"zero", V(0, 0), V(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AxisDominant(tt.in))
		})
	}
}

func TestNormalCC(t *testing.T) {
	n := V(1, 0).NormalCC()
	assert.Equal(t, V(0, 1), n)
	assert.Equal(t, 0.0, n.Dot(V(1, 0)))
}

func TestSegmentIntersects(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	assert.True(t, r.SegmentIntersects(V(0, 15), V(30, 15)))
	assert.False(t, r.SegmentIntersects(V(0, 0), V(30, 0)))
	assert.False(t, r.SegmentIntersects(V(0, 15), V(5, 15)), "segment stops short")
	assert.True(t, r.SegmentIntersects(V(15, 0), V(15, 30)), "vertical segment")
}

func TestClosestPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, V(10, 5), r.ClosestPoint(V(20, 5)))
	assert.Equal(t, V(3, 4), r.ClosestPoint(V(3, 4)))
}
