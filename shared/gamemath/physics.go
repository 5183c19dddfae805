package gamemath

import "math"

// AxisDominant snaps a direction onto the axis with the larger component.
// Ties go to x unless x is zero.
func AxisDominant(d Vec2) Vec2 {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ax > ay:
		return Vec2{sign(d.X), 0}
	case ay > ax:
		return Vec2{0, sign(d.Y)}
	case ax > 0:
		return Vec2{sign(d.X), 0}
	}
	return Vec2{}
}

func sign(f float64) float64 {
	if f > 0 {
		return 1
	}
	if f < 0 {
		return -1
	}
	return 0
}

// Circle is a bounding circle.
type Circle struct {
	Center Vec2
	Radius float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// SegmentIntersects reports whether the segment a-b crosses r, using the
// slab method.
func (r Rect) SegmentIntersects(a, b Vec2) bool {
	d := b.Sub(a)
	tmin, tmax := 0.0, 1.0
	for _, axis := range [2]struct{ p, d, lo, hi float64 }{
		{a.X, d.X, r.X, r.X + r.W},
		{a.Y, d.Y, r.Y, r.Y + r.H},
	} {
		if math.Abs(axis.d) < 1e-12 {
			if axis.p < axis.lo || axis.p > axis.hi {
				return false
			}
			continue
		}
		t1 := (axis.lo - axis.p) / axis.d
		t2 := (axis.hi - axis.p) / axis.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}
