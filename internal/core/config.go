package core

import "github.com/vovakirdan/dino-dash/internal/upgrades"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int             // Screen width in characters
	ScreenH  int             // Screen height in characters
	TickRate int             // Simulation ticks per second (default 60)
	Seed     int64           // RNG seed for deterministic gameplay
	Upgrades upgrades.Levels // Upgrade snapshot for the run, validated by the caller
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current (displayed) score
	Coins    int  // Coins earned during this run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// RunStats summarises a finished run for persistence.
type RunStats struct {
	Ticks           int
	Passed          int
	DestroyedByDash int
	Dodges          int
	HitsTaken       int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Stats RunStats
}
