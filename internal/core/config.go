package core

// RuntimeConfig is what the platform tells a game when it resets: the size
// of the terminal and how to seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Fixed ticks per second
	Seed     int64 // 0 asks the game for a time-based seed
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the platform-facing summary of a game after a tick.
type GameState struct {
	Score     int  // Live score, or the final score once the run is over
	HighScore int  // Best final score of this process
	Started   bool // A run has begun
	GameOver  bool // The latest run has ended
	Paused    bool
}

// StepResult is what Game.Step hands back after one tick.
type StepResult struct {
	State  GameState
	Events []Event
}
