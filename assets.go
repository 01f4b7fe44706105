package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Assets is the load-and-cache registry of named image and font
// handles. Everything is built once at startup.
type Assets struct {
	images map[string]*ebiten.Image
	faces  map[string]*text.GoTextFaceSource
}

func LoadAssets() (*Assets, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Assets{
		images: map[string]*ebiten.Image{
			"ball": newBallImage(32),
		},
		faces: map[string]*text.GoTextFaceSource{
			"arcade": face,
		},
	}, nil
}

// newBallImage rasterizes the ball once; entities scale it at draw
// time.
func newBallImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	return img
}

func (a *Assets) Image(name string) *ebiten.Image {
	img, ok := a.images[name]
	if !ok {
		log.Printf("assets: no image %q", name)
	}
	return img
}

func (a *Assets) Face(name string) *text.GoTextFaceSource {
	face, ok := a.faces[name]
	if !ok {
		log.Printf("assets: no face %q", name)
	}
	return face
}
