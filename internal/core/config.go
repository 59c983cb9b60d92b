package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the terminal and command-line flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle heights
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

// GameState is a read-only snapshot of a session's status.
type GameState struct {
	Started bool // Whether the first start has happened
	Over    bool // Whether the current session has ended
	Score   int  // Obstacles passed in the current session
	Frame   int  // Ticks since the last (re)start
}

// Running reports whether the session is active (started and not over).
func (s GameState) Running() bool {
	return s.Started && !s.Over
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Continue is false once the tick ended the session; the clock
	// should not schedule another tick until the next start.
	Continue bool
}
