package game

import (
	"github.com/zappabad/cryptoterm/internal/market"
	marketservice "github.com/zappabad/cryptoterm/internal/market/service"
	"github.com/zappabad/cryptoterm/internal/portfolio"
	"github.com/zappabad/cryptoterm/internal/trader/simulator"
)

// Config holds configuration for the game.
type Config struct {
	// Assets is the fixed asset universe, in display order.
	Assets []market.Asset
	// Opening is the portfolio at startup.
	Opening []portfolio.Lot
	// LogPath is the location of the CSV trade log.
	LogPath string
	// Seed seeds the shared random source. Zero seeds from the clock.
	Seed int64
	// MarketConfig is the configuration for the price engine.
	MarketConfig marketservice.Config
	// TraderConfig is the configuration for the trade simulator.
	TraderConfig simulator.Config
	// KeepTrades is how many recent trades are kept in memory for display.
	KeepTrades int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Assets: market.DefaultAssets(),
		Opening: []portfolio.Lot{
			{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000},
			{Symbol: "ETH", Holdings: 2.0, AvgCost: 2900},
		},
		LogPath:      "simulated_trades_log.csv",
		MarketConfig: marketservice.DefaultConfig(),
		TraderConfig: simulator.DefaultConfig(),
		KeepTrades:   8,
	}
}
