package simulator

// Config holds configuration for the trade simulator.
type Config struct {
	// TradeProbability is the chance per tick that a trade is attempted.
	TradeProbability float64
	// BuyMin and BuyMax bound the uniform buy amount.
	BuyMin float64
	BuyMax float64
	// SellMin and SellMax bound the uniform sell amount before capping at holdings.
	SellMin float64
	SellMax float64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		TradeProbability: 0.05,
		BuyMin:           0.01,
		BuyMax:           0.1,
		SellMin:          0.01,
		SellMax:          0.05,
	}
}
