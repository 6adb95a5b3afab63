package core

// RuntimeConfig is what a platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells; 0 outside the terminal
	ScreenH  int   // Terminal height in cells
	TickRate int   // Step calls per second
	Seed     int64 // 0 picks a seed from the current time

	// Clock overrides the game's tick-derived time when set.
	Clock Clock

	// Records keeps the high score between runs. Nil keeps it in memory.
	Records RecordSlot
}

// GameState is the status a platform needs after each Step.
type GameState struct {
	Score     int  // Score of the current round
	HighScore int  // Best score known to the game
	GameOver  bool // The round has ended
	InMenu    bool // The game shows its own menu
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
