package service

// Config holds configuration for the price engine.
type Config struct {
	// HistoryLength is the number of prices kept per asset.
	HistoryLength int
	// MaxMove is the largest fractional price change per tick, in both directions.
	MaxMove float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		HistoryLength: 20,
		MaxMove:       0.05,
	}
}
