package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay is the HUD layer: banner, start button, score line, mute and
// pause indicators, each with its own visibility. It replaces the DOM
// overlay of the browser build.
type Overlay struct {
	cfg  *Config
	face *text.GoTextFaceSource

	banner        string
	bannerVisible bool

	button        string
	buttonVisible bool

	hint        string
	hintVisible bool

	p1Score, p2Score int
	scoreVisible     bool

	muted  bool
	paused bool
}

func NewOverlay(cfg *Config, face *text.GoTextFaceSource) *Overlay {
	return &Overlay{cfg: cfg, face: face}
}

func (o *Overlay) SetBanner(s string) {
	o.banner = s
	o.bannerVisible = true
}

func (o *Overlay) HideBanner() { o.bannerVisible = false }

func (o *Overlay) SetButton(s string) {
	o.button = s
	o.buttonVisible = true
}

func (o *Overlay) HideButton() { o.buttonVisible = false }

func (o *Overlay) SetHint(s string) {
	o.hint = s
	o.hintVisible = true
}

func (o *Overlay) HideHint() { o.hintVisible = false }

func (o *Overlay) SetScore(p1, p2 int) {
	o.p1Score, o.p2Score = p1, p2
}

func (o *Overlay) ShowScore() { o.scoreVisible = true }
func (o *Overlay) HideScore() { o.scoreVisible = false }

func (o *Overlay) SetMuted(m bool)  { o.muted = m }
func (o *Overlay) SetPaused(p bool) { o.paused = p }

// ButtonRect is the clickable area of the start button; it exists even
// while hidden so the layout stays stable.
func (o *Overlay) ButtonRect() image.Rectangle {
	const bw, bh = 240, 56
	x := (o.cfg.ScreenWidth - bw) / 2
	y := o.cfg.ScreenHeight * 3 / 5
	return image.Rect(x, y, x+bw, y+bh)
}

// ButtonHit reports whether a pointer press at (x, y) lands on the
// visible start button.
func (o *Overlay) ButtonHit(x, y int) bool {
	return o.buttonVisible && image.Pt(x, y).In(o.ButtonRect())
}

func (o *Overlay) Draw(dst *ebiten.Image) {
	w := float64(o.cfg.ScreenWidth)
	h := float64(o.cfg.ScreenHeight)

	if o.scoreVisible {
		o.drawText(dst, fmt.Sprintf("%d", o.p1Score), w/2-80, 48, 36)
		o.drawText(dst, fmt.Sprintf("%d", o.p2Score), w/2+80, 48, 36)
	}

	if o.bannerVisible {
		o.drawText(dst, o.banner, w/2, h*0.35, 44)
	}

	if o.buttonVisible {
		r := o.ButtonRect()
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, false)
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, colorText, false)
		cx := float64(r.Min.X+r.Max.X) / 2
		cy := float64(r.Min.Y+r.Max.Y) / 2
		o.drawText(dst, o.button, cx, cy, 20)
	}

	if o.hintVisible {
		o.drawText(dst, o.hint, w/2, h*0.85, 12)
	}

	if o.paused {
		o.drawText(dst, "PAUSED", w/2, h/2, 32)
	}

	if o.muted {
		o.drawText(dst, "SOUND OFF", 96, h-24, 12)
	}
}

func (o *Overlay) drawText(dst *ebiten.Image, s string, x, y, size float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, &text.GoTextFace{Source: o.face, Size: size}, op)
}
