package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputState is one frame's snapshot of everything the game reacts to.
// Directions are -1 (up), 0, +1 (down).
type inputState struct {
	p1Dir float64
	p2Dir float64

	startKey    bool
	muteToggle  bool
	pauseToggle bool
	quit        bool

	cursorX, cursorY int
	pointerHeld      bool
	pointerJust      bool
}

// readInput gathers keyboard, mouse and touch state. In one-player
// mode the arrow keys double as player 1 controls; in two-player mode
// they belong to player 2.
func (g *Game) readInput() inputState {
	var in inputState

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.p1Dir = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.p1Dir = 1
	}
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	if g.cfg.Players == 2 {
		if up {
			in.p2Dir = -1
		}
		if down {
			in.p2Dir = 1
		}
	} else {
		if up {
			in.p1Dir = -1
		}
		if down {
			in.p1Dir = 1
		}
	}

	in.startKey = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.muteToggle = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.pauseToggle = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	in.cursorX, in.cursorY = ebiten.CursorPosition()
	in.pointerHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
	in.pointerJust = inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		in.cursorX, in.cursorY = ebiten.TouchPosition(g.touchIDs[0])
		in.pointerHeld = true
	}
	g.justTouchIDs = inpututil.AppendJustPressedTouchIDs(g.justTouchIDs[:0])
	if len(g.justTouchIDs) > 0 {
		in.cursorX, in.cursorY = ebiten.TouchPosition(g.justTouchIDs[0])
		in.pointerJust = true
	}

	return in
}
