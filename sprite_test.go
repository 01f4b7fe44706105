package main

import (
	"math"
	"testing"
)

func testBounds() Bounds {
	return Bounds{Top: 0, Right: 800, Bottom: 600, Left: 0}
}

func TestMoveStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		dx, dy float64
		scale  float64
	}{
		{"No movement", 100, 100, 0, 0, 1},
		{"Up left", 100, 100, -1, -1, 1},
		{"Down right", 100, 100, 1, 1, 1},
		{"Huge step right", 790, 300, 1, 0, 1},
		{"Huge step down", 300, 590, 0, 1, 1},
		{"Huge frame scale", 300, 300, 1, 1, 1000},
		{"Starts left of bounds", -500, 300, 0, 0, 1},
		{"Starts below bounds", 300, 5000, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sprite{X: tt.x, Y: tt.y, Width: 16, Height: 96, Speed: 1000, Bounds: testBounds()}
			s.Move(tt.dx, tt.dy, tt.scale)
			if s.X < s.Bounds.Left || s.X+s.Width > s.Bounds.Right {
				t.Errorf("X=%v left sprite outside [%v, %v]", s.X, s.Bounds.Left, s.Bounds.Right-s.Width)
			}
			if s.Y < s.Bounds.Top || s.Y+s.Height > s.Bounds.Bottom {
				t.Errorf("Y=%v left sprite outside [%v, %v]", s.Y, s.Bounds.Top, s.Bounds.Bottom-s.Height)
			}
		})
	}
}

func TestMoveSnapsToNearestEdge(t *testing.T) {
	s := Sprite{X: 100, Y: 100, Width: 16, Height: 16, Speed: 10000, Bounds: testBounds()}
	s.Move(1, 0, 1)
	if got := s.X; got != s.Bounds.Right-s.Width {
		t.Errorf("expected snap to right edge %v, got %v", s.Bounds.Right-s.Width, got)
	}
	s.Move(-1, 0, 1)
	if got := s.X; got != s.Bounds.Left {
		t.Errorf("expected snap to left edge %v, got %v", s.Bounds.Left, got)
	}
}

func TestMoveUpdatesFlipX(t *testing.T) {
	s := Sprite{X: 400, Y: 300, Width: 16, Height: 16, Speed: 1, Bounds: testBounds()}
	s.Move(-1, 0, 1)
	if !s.FlipX {
		t.Error("expected FlipX after moving left")
	}
	s.Move(0, 1, 1)
	if !s.FlipX {
		t.Error("vertical move must not change facing")
	}
	s.Move(1, 0, 1)
	if s.FlipX {
		t.Error("expected FlipX cleared after moving right")
	}
}

func TestRadiusDerived(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          float64
	}{
		{"Ball", 16, 16, 8},
		{"Paddle", 16, 96, 28},
		{"Flat", 100, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sprite{Width: tt.width, Height: tt.height}
			if got := s.Radius(); got != tt.want {
				t.Errorf("Radius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b Sprite
		want bool
	}{
		{
			"Overlapping",
			Sprite{X: 100, Y: 100, Width: 16, Height: 16},
			Sprite{X: 104, Y: 104, Width: 16, Height: 96},
			true,
		},
		{
			"Far apart",
			Sprite{X: 0, Y: 0, Width: 16, Height: 16},
			Sprite{X: 700, Y: 500, Width: 16, Height: 96},
			false,
		},
		{
			"Touching circles",
			Sprite{X: 0, Y: 0, Width: 16, Height: 16},
			Sprite{X: 16, Y: 0, Width: 16, Height: 16},
			false, // distance equals the radius sum, strict overlap required
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := tt.a.CollidesWith(&tt.b)
			ba := tt.b.CollidesWith(&tt.a)
			if ab != ba {
				t.Errorf("collision not symmetric: a-b=%v b-a=%v", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("CollidesWith() = %v, want %v", ab, tt.want)
			}
		})
	}
}

func TestCollisionAtZeroDistance(t *testing.T) {
	// A paddle centered exactly on the ball's center.
	ball := Sprite{X: 392, Y: 292, Width: 16, Height: 16}
	paddle := Sprite{X: 392, Y: 252, Width: 16, Height: 96}
	bx, by := ball.Center()
	px, py := paddle.Center()
	if math.Hypot(bx-px, by-py) != 0 {
		t.Fatalf("test setup: centers differ (%v,%v) vs (%v,%v)", bx, by, px, py)
	}
	if !ball.CollidesWith(&paddle) {
		t.Error("zero center distance must collide")
	}
}
