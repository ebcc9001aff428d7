package core

// Reference viewport the game is tuned for; speeds in config are
// expressed relative to it.
const (
	BaseWidth  = 800
	BaseHeight = 450
	BaseFPS    = 60
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	WorldW   int   // Playfield width in world pixels
	WorldH   int   // Playfield height in world pixels
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the 1.5x reference viewport at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   BaseWidth * 3 / 2,
		WorldH:   BaseHeight * 3 / 2,
		ScreenW:  100,
		ScreenH:  30,
		TickRate: BaseFPS,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a summary of the running game for the platform layer.
type GameState struct {
	Scene    string // Active scene name
	Score    int
	Health   int
	Wave     int
	Kills    int
	GameOver bool // Player died and the death scene is showing
	Paused   bool
	Quit     bool // A quit event was processed
}
