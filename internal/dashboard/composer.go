package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zappabad/cryptoterm/internal/analysis"
	"github.com/zappabad/cryptoterm/internal/market"
	"github.com/zappabad/cryptoterm/internal/portfolio"
	"github.com/zappabad/cryptoterm/internal/sparkline"
	"github.com/zappabad/cryptoterm/internal/tradelog"
	"github.com/zappabad/cryptoterm/internal/trader"
)

// Source provides read-only access to simulation state.
type Source interface {
	Assets() []market.Asset
	Prices() map[string]float64
	History(symbol string) ([]float64, error)
	Position(symbol string) (portfolio.Position, error)
	Totals() portfolio.Totals
	RecentTrades(n int) []trader.TradeRecord
	Ticks() int
}

// Composer assembles render models from simulation state.
type Composer struct {
	recent int
	now    func() time.Time
}

// NewComposer creates a new Composer.
func NewComposer(cfg Config) *Composer {
	if cfg.RecentTrades < 0 {
		cfg.RecentTrades = 0
	}
	return &Composer{recent: cfg.RecentTrades, now: time.Now}
}

// Build reads src and returns a fresh RenderModel.
func (c *Composer) Build(src Source) RenderModel {
	prices := src.Prices()
	m := RenderModel{
		Tick:      src.Ticks(),
		UpdatedAt: c.now(),
	}

	for _, a := range src.Assets() {
		history, err := src.History(a.Symbol)
		if err != nil {
			continue
		}
		pos, err := src.Position(a.Symbol)
		if err != nil {
			continue
		}
		row := buildRow(a.Symbol, prices[a.Symbol], history, pos)
		m.Rows = append(m.Rows, row)

		if row.Trend == analysis.TrendDown && row.HasPosition {
			m.Alerts = append(m.Alerts, Alert{
				Symbol:  a.Symbol,
				Message: a.Symbol + " trending down - consider stop-loss",
			})
		}
	}

	m.Summary = buildSummary(src.Totals())

	for _, rec := range src.RecentTrades(c.recent) {
		m.RecentTrades = append(m.RecentTrades, TradeLine{
			Time:       rec.Time.Format(tradelog.TimeLayout),
			Symbol:     rec.Symbol,
			Action:     string(rec.Action),
			PriceText:  formatPrice(rec.Price.InexactFloat64()),
			AmountText: rec.Amount.StringFixed(4),
			TotalText:  formatUSD(rec.Total),
		})
	}
	return m
}

func buildRow(symbol string, price float64, history []float64, pos portfolio.Position) AssetRow {
	trend := analysis.ClassifyTrend(history)
	signal := analysis.SignalFor(trend)

	row := AssetRow{
		Symbol:         symbol,
		Price:          price,
		PriceText:      formatPrice(price),
		Trend:          trend,
		TrendLabel:     trend.Label(),
		TrendIndicator: trend.Indicator(),
		Signal:         signal,
		SignalCategory: signal.Category(),
		Sparkline:      sparkline.Render(history),
		Holdings:       pos.Holdings,
		HoldingsText:   "0",
		PnLText:        "-",
	}

	if pct, ok := pos.PnLPct(decimal.NewFromFloat(price)); ok {
		row.HasPosition = true
		row.HoldingsText = pos.Holdings.StringFixed(4)
		row.PnLPct = pct
		row.PnLText = formatPct(pct)
	}
	return row
}

func buildSummary(t portfolio.Totals) Summary {
	return Summary{
		TotalValue: t.TotalValue,
		TotalCost:  t.TotalCost,
		ProfitPct:  t.ProfitPct,
		ValueText:  formatUSD(t.TotalValue),
		CostText:   formatUSD(t.TotalCost),
		ProfitText: formatPct(t.ProfitPct),
	}
}
