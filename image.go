package main

import "github.com/hajimehoshi/ebiten/v2"

// Image pairs a raster asset with a draw call that scales it into a
// target rectangle.
type Image struct {
	src *ebiten.Image
}

func NewImage(src *ebiten.Image) *Image {
	return &Image{src: src}
}

func (i *Image) Draw(dst *ebiten.Image, x, y, w, h float64) {
	if i == nil || i.src == nil {
		return
	}
	sw := float64(i.src.Bounds().Dx())
	sh := float64(i.src.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/sw, h/sh)
	op.GeoM.Translate(x, y)
	dst.DrawImage(i.src, op)
}
