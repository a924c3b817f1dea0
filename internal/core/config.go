package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate       int   // Simulation ticks per second (default 25)
	Seed           int64 // RNG seed for deterministic gameplay, 0 = time based
	SpeedThreshold int   // Gravity threshold in ticks at level 0 (default 20)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 25 ticks per second is one tick every 40ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:       25,
		Seed:           0,
		SpeedThreshold: 20,
	}
}

// GameState is the summary of a game the platform needs after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score including this run
	Level     int  // Current level
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
