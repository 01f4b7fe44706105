package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ball is an image-backed sprite with a unit direction (DX, DY).
// Movement is gated by Launched.
type Ball struct {
	Sprite

	Img      *Image
	DX, DY   float64
	Launched bool
}

// Launch sets the ball moving with the given horizontal direction and
// a shallow random vertical component.
func (b *Ball) Launch(dir float64) {
	b.DX, b.DY = normalize(dir, rand.Float64()-0.5)
	b.Launched = true
}

// Stop parks the ball until the next launch.
func (b *Ball) Stop() {
	b.DX, b.DY = 0, 0
	b.Launched = false
}

// Step advances the ball one frame and resolves top/bottom wall
// contact, inverting the vertical direction at most once per touch.
// Returns true when a wall was touched.
func (b *Ball) Step(frameScale float64) bool {
	if !b.Launched {
		return false
	}
	b.Move(b.DX, b.DY, frameScale)
	if b.Y <= b.Bounds.Top {
		b.DY = math.Abs(b.DY)
		return true
	}
	if b.Y+b.Height >= b.Bounds.Bottom {
		b.DY = -math.Abs(b.DY)
		return true
	}
	return false
}

// CollideWith returns the first paddle whose collision circle overlaps
// the ball, or nil.
func (b *Ball) CollideWith(players ...*Player) *Player {
	for _, p := range players {
		if p != nil && b.CollidesWith(&p.Sprite) {
			return p
		}
	}
	return nil
}

// movingToward reports whether the ball's horizontal direction points
// at the paddle, so a lingering overlap can't bounce it twice.
func (b *Ball) movingToward(p *Player) bool {
	bcx, _ := b.Center()
	pcx, _ := p.Center()
	if pcx < bcx {
		return b.DX < 0
	}
	return b.DX > 0
}

// BounceOff sends the ball away from the paddle, bending the exit
// angle by where on the paddle it struck. Direction stays unit length.
func (b *Ball) BounceOff(p *Player) {
	bcx, bcy := b.Center()
	pcx, pcy := p.Center()
	if bcx < pcx {
		b.DX = -math.Abs(b.DX)
	} else {
		b.DX = math.Abs(b.DX)
	}
	offset := clamp((bcy-pcy)/(p.Height/2), -1, 1)
	b.DX, b.DY = normalize(b.DX, b.DY+offset*0.5)
}

func (b *Ball) Draw(dst *ebiten.Image) {
	if b.Img != nil {
		b.Img.Draw(dst, b.X, b.Y, b.Width, b.Height)
		return
	}
	cx, cy := b.Center()
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(b.Width/2), color.White, false)
}
