package core

// RuntimeConfig contains frontend parameters passed to the scene director.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (ignored by the window frontend)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Updates per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock in the frontend
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

// FrameDeltaMs returns the nominal frame duration in milliseconds.
func (c RuntimeConfig) FrameDeltaMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}
