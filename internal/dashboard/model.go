package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zappabad/cryptoterm/internal/analysis"
)

// RenderModel is everything a presentation layer needs to draw one frame.
// It holds no references into simulation state.
type RenderModel struct {
	Tick         int
	UpdatedAt    time.Time
	Rows         []AssetRow
	Summary      Summary
	Alerts       []Alert
	RecentTrades []TradeLine
}

// AssetRow is one line of the asset table.
type AssetRow struct {
	Symbol         string
	Price          float64
	PriceText      string
	Trend          analysis.Trend
	TrendLabel     string
	TrendIndicator string
	Signal         analysis.Signal
	SignalCategory analysis.Category
	Sparkline      string
	Holdings       decimal.Decimal
	HoldingsText   string
	HasPosition    bool
	PnLPct         decimal.Decimal
	PnLText        string
}

// Summary is the aggregate portfolio line.
type Summary struct {
	TotalValue decimal.Decimal
	TotalCost  decimal.Decimal
	ProfitPct  decimal.Decimal
	ValueText  string
	CostText   string
	ProfitText string
}

// Alert flags a held asset that is trending down.
type Alert struct {
	Symbol  string
	Message string
}

// TradeLine is one executed trade formatted for display.
type TradeLine struct {
	Time       string
	Symbol     string
	Action     string
	PriceText  string
	AmountText string
	TotalText  string
}
