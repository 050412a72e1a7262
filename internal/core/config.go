package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed delay between simulation ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
	}
}
