package main

import "math"

// Bounds is the axis-aligned rectangle an entity is clamped into on
// every move.
type Bounds struct {
	Top, Right, Bottom, Left float64
}

// Sprite is the base movable entity: a rectangle at (X, Y) with a
// speed and the bounds it may not leave.
type Sprite struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Bounds        Bounds

	// FlipX records the facing after the last horizontal move.
	FlipX bool
}

// Center returns the middle of the sprite's rectangle.
func (s *Sprite) Center() (float64, float64) {
	return s.X + s.Width/2, s.Y + s.Height/2
}

// Radius is the circle-collision radius, derived from the rectangle
// and never stored.
func (s *Sprite) Radius() float64 {
	return (s.Width + s.Height) / 4
}

// Move shifts the sprite by direction*speed*frameScale and snaps each
// axis back to the nearest edge of its bounds when it would leave them.
func (s *Sprite) Move(dx, dy, frameScale float64) {
	s.X = clamp(s.X+dx*s.Speed*frameScale, s.Bounds.Left, s.Bounds.Right-s.Width)
	s.Y = clamp(s.Y+dy*s.Speed*frameScale, s.Bounds.Top, s.Bounds.Bottom-s.Height)
	if dx != 0 {
		s.FlipX = dx < 0
	}
}

// CollidesWith reports whether the two sprites' collision circles
// overlap. Symmetric in its arguments.
func (s *Sprite) CollidesWith(o *Sprite) bool {
	sx, sy := s.Center()
	ox, oy := o.Center()
	return math.Hypot(sx-ox, sy-oy) < s.Radius()+o.Radius()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalize scales (x, y) to unit length. A zero vector falls back to
// pointing right so a launched ball always moves.
func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l < 1e-9 {
		return 1, 0
	}
	return x / l, y / l
}
