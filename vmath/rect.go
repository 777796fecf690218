package vmath

// RectF is an axis-aligned rectangle anchored at its top-left corner
type RectF struct {
	X, Y, W, H float64
}

// Center returns the rectangle midpoint
func (r RectF) Center() Vec2F {
	return Vec2F{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps reports strict AABB overlap; touching edges do not count
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ClampF limits v to [lo, hi]; hi below lo collapses to lo
func ClampF(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapF wraps v into [0, period)
func WrapF(v, period float64) float64 {
	if period <= 0 {
		return v
	}
	for v >= period {
		v -= period
	}
	for v < 0 {
		v += period
	}
	return v
}
