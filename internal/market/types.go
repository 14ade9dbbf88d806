package market

// Asset is a tradeable instrument in the simulated universe.
type Asset struct {
	Symbol       string
	InitialPrice float64
}

// DefaultAssets returns the fixed four-coin universe.
func DefaultAssets() []Asset {
	return []Asset{
		{Symbol: "BTC", InitialPrice: 50000},
		{Symbol: "ETH", InitialPrice: 3000},
		{Symbol: "SOL", InitialPrice: 100},
		{Symbol: "DOGE", InitialPrice: 0.10},
	}
}

// Symbols returns the symbols of the given assets in order.
func Symbols(assets []Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Symbol
	}
	return out
}
