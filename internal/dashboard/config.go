package dashboard

import "time"

// Config holds configuration for the refresh loop and composer.
type Config struct {
	// Interval is the time between ticks.
	Interval time.Duration
	// RecentTrades is how many executed trades each render model carries.
	RecentTrades int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Interval:     2 * time.Second,
		RecentTrades: 5,
	}
}
