package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a game gets from the platform on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells, help footer excluded
	ScreenH  int   // Screen height in cells, help footer excluded
	TickRate int   // Simulation ticks per second
	Seed     int64 // Bomb placement seed; equal seeds give equal boards
}

// DefaultConfig returns an 80x24 screen at the default tick rate with a
// zero seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults replaces a non-positive tick rate with DefaultTickRate and a
// zero seed with the current time.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the platform-facing summary of a game after a tick.
type GameState struct {
	Score    int  // Non-bomb cells revealed so far
	GameOver bool // The board was cleared or a bomb went off
	Won      bool // Set together with GameOver when the board was cleared
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
