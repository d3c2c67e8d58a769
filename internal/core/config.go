package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// LevelOutcome reports one resolved attempt at a level.
type LevelOutcome struct {
	LevelID   string
	Number    int
	Won       bool
	MarksUsed int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Outcomes holds the attempts resolved during this tick, oldest first.
type StepResult struct {
	State    GameState
	Outcomes []LevelOutcome
}
