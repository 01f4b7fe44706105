package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Player is a paddle. The right paddle runs on the AI steering below
// unless the game was started in two-player mode.
type Player struct {
	Sprite

	Score int
	Color color.RGBA
	Human bool
}

func (p *Player) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.Color, false)
}

// Steer moves the paddle's center toward targetY, never covering more
// than its own speed allows this frame.
func (p *Player) Steer(targetY, frameScale float64) {
	if frameScale <= 0 {
		return
	}
	_, cy := p.Center()
	diff := targetY - cy
	if math.Abs(diff) < 1 {
		return
	}
	dy := diff / (p.Speed * frameScale)
	if dy > 1 {
		dy = 1
	} else if dy < -1 {
		dy = -1
	}
	p.Move(0, dy, frameScale)
}

// ChaseBall drives the AI paddle on the right side of the court: track
// the ball while it approaches, drift back to center otherwise.
func (p *Player) ChaseBall(b *Ball, frameScale float64) {
	if b.Launched && b.DX > 0 {
		_, cy := b.Center()
		p.Steer(cy, frameScale)
		return
	}
	p.Steer((p.Bounds.Top+p.Bounds.Bottom)/2, frameScale)
}
