package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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
	Score    int  // Current score
	Started  bool // Whether the start trigger has been received
	GameOver bool // Whether the game was lost
	Won      bool // Whether the game was won
}

// Finished reports whether the game reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// Running reports whether the platform should keep scheduling ticks.
func (s GameState) Running() bool {
	return s.Started && !s.Finished()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
