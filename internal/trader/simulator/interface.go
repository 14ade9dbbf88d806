package simulator

import (
	"github.com/shopspring/decimal"
	"github.com/zappabad/cryptoterm/internal/market"
	"github.com/zappabad/cryptoterm/internal/trader"
)

// RandSource supplies uniform samples. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// PriceReader provides read-only access to current prices.
type PriceReader interface {
	Assets() []market.Asset
	Price(symbol string) (float64, error)
}

// Ledger is the portfolio the simulator trades against.
type Ledger interface {
	ApplyBuy(symbol string, price, amount decimal.Decimal) error
	ApplySell(symbol string, amount decimal.Decimal) (decimal.Decimal, error)
	Holdings(symbol string) decimal.Decimal
}

// Recorder durably stores executed trades.
type Recorder interface {
	Append(rec trader.TradeRecord) error
}
