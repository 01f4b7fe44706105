package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// State is the game's current phase. The win states are terminal; the
// process has to be relaunched for a new match.
type State string

const (
	StateReady      State = "ready"
	StatePlay       State = "play"
	StateWinPlayer1 State = "win-player1"
	StateWinPlayer2 State = "win-player2"
)

// Game owns the entities, the overlay, the sounds and the state
// machine, and implements ebiten.Game.
type Game struct {
	cfg     *Config
	assets  *Assets
	sounds  *SoundBank
	overlay *Overlay

	player1 *Player
	player2 *Player
	ball    *Ball

	state     State
	prevState State
	// paused sits on top of StatePlay and skips the play step; it is
	// not a state of its own.
	paused bool

	serveTimer int
	serveDir   float64

	lastFrame    time.Time
	touchIDs     []ebiten.TouchID
	justTouchIDs []ebiten.TouchID
}

func NewGame(cfg *Config) (*Game, error) {
	assets, err := LoadAssets()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	g := &Game{
		cfg:    cfg,
		assets: assets,
		sounds: NewSoundBank(),
	}
	g.overlay = NewOverlay(cfg, assets.Face("arcade"))

	settings := LoadSettings()
	g.sounds.SetMuted(settings.Muted)
	g.overlay.SetMuted(settings.Muted)

	g.resetEntities()
	g.setState(StateReady)
	return g, nil
}

func (g *Game) resetEntities() {
	cfg := g.cfg
	field := Bounds{
		Top:    0,
		Right:  float64(cfg.ScreenWidth),
		Bottom: float64(cfg.ScreenHeight),
		Left:   0,
	}
	paddleY := (float64(cfg.ScreenHeight) - cfg.PaddleHeight) / 2

	g.player1 = &Player{
		Sprite: Sprite{
			X: cfg.PaddleInset, Y: paddleY,
			Width: cfg.PaddleWidth, Height: cfg.PaddleHeight,
			Speed: cfg.PaddleSpeed, Bounds: field,
		},
		Color: colorPlayer1,
		Human: true,
	}
	g.player2 = &Player{
		Sprite: Sprite{
			X: float64(cfg.ScreenWidth) - cfg.PaddleInset - cfg.PaddleWidth, Y: paddleY,
			Width: cfg.PaddleWidth, Height: cfg.PaddleHeight,
			Speed: cfg.PaddleSpeed, Bounds: field,
		},
		Color: colorPlayer2,
		Human: cfg.Players == 2,
	}
	if !g.player2.Human {
		g.player2.Speed = cfg.AISpeed
	}

	g.ball = &Ball{
		Sprite: Sprite{
			Width: cfg.BallSize, Height: cfg.BallSize,
			Speed: cfg.BallSpeed, Bounds: field,
		},
	}
	if g.assets != nil {
		g.ball.Img = NewImage(g.assets.Image("ball"))
	}
	g.centerBall()
}

func (g *Game) centerBall() {
	g.ball.X = (g.ball.Bounds.Left + g.ball.Bounds.Right - g.ball.Width) / 2
	g.ball.Y = (g.ball.Bounds.Top + g.ball.Bounds.Bottom - g.ball.Height) / 2
}

// setState is the only place the current state changes, so the
// previous state is always recorded alongside it.
func (g *Game) setState(s State) {
	g.prevState = g.state
	g.state = s
	g.syncOverlay()
}

func (g *Game) syncOverlay() {
	if g.overlay == nil {
		return
	}
	o := g.overlay
	o.SetScore(g.player1.Score, g.player2.Score)
	switch g.state {
	case StateReady:
		o.SetBanner(g.cfg.Title)
		o.SetButton(g.cfg.StartText)
		o.SetHint("W/S OR ARROWS TO MOVE   M: MUTE   P: PAUSE")
		o.HideScore()
	case StatePlay:
		o.HideBanner()
		o.HideButton()
		o.HideHint()
		o.ShowScore()
	case StateWinPlayer1:
		o.SetBanner(fmt.Sprintf(g.cfg.WinText, 1))
		o.HideButton()
		o.ShowScore()
	case StateWinPlayer2:
		o.SetBanner(fmt.Sprintf(g.cfg.WinText, 2))
		o.HideButton()
		o.ShowScore()
	}
}

func (g *Game) Update() error {
	in := g.readInput()
	if in.quit {
		return ebiten.Termination
	}
	if in.muteToggle {
		g.toggleMute()
	}

	frameScale := g.frameScale()

	switch g.state {
	case StateReady:
		if in.startKey || (in.pointerJust && g.overlay.ButtonHit(in.cursorX, in.cursorY)) {
			g.startPlay()
		}
	case StatePlay:
		if in.pauseToggle {
			g.togglePause()
		}
		if g.paused {
			return nil
		}
		g.play(in, frameScale)
	case StateWinPlayer1, StateWinPlayer2:
		// Terminal. A new match needs a fresh process.
	}
	return nil
}

// frameScale normalizes this frame's movement against the 60Hz
// baseline so speed stays constant when the tick rate drifts. Capped
// so a stall cannot teleport the ball through a paddle.
func (g *Game) frameScale() float64 {
	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
		return 1
	}
	scale := now.Sub(g.lastFrame).Seconds() * baselineTPS
	g.lastFrame = now
	return clamp(scale, 0.1, 4)
}

func (g *Game) startPlay() {
	g.serveDir = 1
	if rand.Intn(2) == 0 {
		g.serveDir = -1
	}
	g.serveTimer = g.cfg.ServeDelay
	g.setState(StatePlay)
}

// play is the per-frame update: paddles, ball, collisions, scoring and
// the win check.
func (g *Game) play(in inputState, frameScale float64) {
	g.movePaddles(in, frameScale)

	if !g.ball.Launched {
		g.serveTimer--
		if g.serveTimer <= 0 {
			g.serve()
		}
		return
	}

	if g.ball.Step(frameScale) {
		g.sounds.Play("bounce")
	}

	if p := g.ball.CollideWith(g.player1, g.player2); p != nil && g.ball.movingToward(p) {
		g.ball.BounceOff(p)
		g.sounds.Play("hit")
	}

	// A goal is the ball reaching a side edge while in flight. Serve
	// goes back toward whoever conceded.
	if g.ball.X <= g.ball.Bounds.Left {
		g.score(g.player2, StateWinPlayer2, -1)
	} else if g.ball.X+g.ball.Width >= g.ball.Bounds.Right {
		g.score(g.player1, StateWinPlayer1, 1)
	}
}

func (g *Game) movePaddles(in inputState, frameScale float64) {
	if in.p1Dir != 0 {
		g.player1.Move(0, in.p1Dir, frameScale)
	} else if in.pointerHeld {
		g.player1.Steer(float64(in.cursorY), frameScale)
	}

	if g.player2.Human {
		if in.p2Dir != 0 {
			g.player2.Move(0, in.p2Dir, frameScale)
		}
	} else {
		g.player2.ChaseBall(g.ball, frameScale)
	}
}

func (g *Game) serve() {
	g.centerBall()
	g.ball.Launch(g.serveDir)
}

// score credits one goal, parks the ball, arms the delayed serve and
// fires the win transition at the configured threshold.
func (g *Game) score(winner *Player, winState State, serveDir float64) {
	winner.Score++
	g.ball.Stop()
	g.centerBall()
	g.serveDir = serveDir
	g.serveTimer = g.cfg.ServeDelay
	g.syncOverlay()

	if winner.Score >= g.cfg.WinScore {
		g.sounds.Play("win")
		g.setState(winState)
		return
	}
	g.sounds.Play("score")
}

func (g *Game) toggleMute() {
	muted := !g.sounds.Muted()
	g.sounds.SetMuted(muted)
	if g.overlay != nil {
		g.overlay.SetMuted(muted)
	}
	if err := SaveSettings(Settings{Muted: muted}); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.overlay != nil {
		g.overlay.SetPaused(g.paused)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawNet(screen)
	g.player1.Draw(screen)
	g.player2.Draw(screen)
	g.ball.Draw(screen)
	g.overlay.Draw(screen)
}

func (g *Game) drawNet(screen *ebiten.Image) {
	x := float32(g.cfg.ScreenWidth)/2 - 2
	for y := 0; y < g.cfg.ScreenHeight; y += 24 {
		vector.DrawFilledRect(screen, x, float32(y), 4, 12, colorNet, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
