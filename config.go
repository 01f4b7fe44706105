package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Ticks per second ebiten drives Update at; per-frame movement is
// normalized against this baseline.
const baselineTPS = 60.0

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorNet        = color.RGBA{0x3a, 0x3a, 0x4a, 0xff}
	colorPlayer1    = color.RGBA{0x5d, 0xd3, 0x9e, 0xff}
	colorPlayer2    = color.RGBA{0xe8, 0x6a, 0x6a, 0xff}
	colorText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorButton     = color.RGBA{0x2a, 0x2a, 0x3a, 0xff}
)

// Config holds every gameplay tunable. Defaults are compiled in; a
// JSON file passed with -config overrides individual fields.
type Config struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`

	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleInset  float64 `json:"paddleInset"`
	PaddleSpeed  float64 `json:"paddleSpeed"`
	// AISpeed caps the computer paddle so it stays beatable.
	AISpeed float64 `json:"aiSpeed"`

	BallSize  float64 `json:"ballSize"`
	BallSpeed float64 `json:"ballSpeed"`

	WinScore int `json:"winScore"`
	// ServeDelay is the number of ticks between a goal and the next
	// launch of the ball.
	ServeDelay int `json:"serveDelay"`

	Players int `json:"players"`

	Title     string `json:"title"`
	StartText string `json:"startText"`
	WinText   string `json:"winText"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		PaddleWidth:  16,
		PaddleHeight: 96,
		PaddleInset:  48,
		PaddleSpeed:  7,
		BallSize:     16,
		BallSpeed:    8,
		WinScore:     10,
		ServeDelay:   60,
		Players:      1,
		Title:        "PONG",
		StartText:    "PLAY",
		WinText:      "PLAYER %d WINS",
	}
	cfg.AISpeed = cfg.PaddleSpeed * 0.9
	return cfg
}

// LoadConfig returns the defaults overlaid with the JSON file at path.
// An empty path means defaults only.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.BallSize <= 0:
		return fmt.Errorf("entity sizes must be positive")
	case c.PaddleSpeed <= 0 || c.AISpeed <= 0 || c.BallSpeed <= 0:
		return fmt.Errorf("speeds must be positive")
	case c.WinScore < 1:
		return fmt.Errorf("winScore must be at least 1, got %d", c.WinScore)
	case c.ServeDelay < 0:
		return fmt.Errorf("serveDelay must not be negative, got %d", c.ServeDelay)
	case c.Players != 1 && c.Players != 2:
		return fmt.Errorf("players must be 1 or 2, got %d", c.Players)
	}
	return nil
}
