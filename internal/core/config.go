package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; frontends use it for pacing.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (cells for terminals, pixels for windows)
	ScreenH  int   // Frontend height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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
	Score     int    // Current score
	Level     int    // Current difficulty level
	Highscore int    // Best score of this process
	Phase     string // State machine phase name (Menu, Gameplay, GameOver)
	Mode      string // Selected mode name
	GameOver  bool   // Whether the game has ended
}

// Event flags raised by a single tick.
type Event uint8

const (
	EventRecycled Event = 1 << iota // A falling entity passed the bottom edge
	EventLevelUp                    // Difficulty level increased
	EventGameOver                   // The session just ended
	EventStarted                    // A session just began (mode select or restart)
	EventMenu                       // Returned to the menu
)

// Has reports whether all bits of e are set.
func (ev Event) Has(e Event) bool {
	return ev&e == e
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events Event
}

// SessionSummary describes a finished session.
type SessionSummary struct {
	Mode     string
	Score    int
	Level    int
	Duration time.Duration
	Reason   string // Why the session ended, e.g. "collision"
}
