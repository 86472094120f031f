package core

// RuntimeConfig contains settings the platform resolves at startup and
// passes to the viewer: terminal size, frame pacing and the seed used
// for deterministic spawning.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Render frames per second (default 30)
	Seed    int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Seed:    0,
	}
}
