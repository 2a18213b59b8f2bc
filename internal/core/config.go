package core

// RuntimeConfig contains configuration passed to the session and every
// level at construction time. Levels use it for viewport dimensions and
// for seeding their random streams.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in cells
	ScreenH  int   // Viewport height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
