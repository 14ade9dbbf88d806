package portfolio

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Position is the holdings and weighted average cost of one asset.
type Position struct {
	Symbol   string
	Holdings decimal.Decimal
	avgCost  decimal.Decimal
}

// AvgCost returns the weighted average buy price. The second result is false
// when nothing is held, in which case the cost basis is undefined.
func (p Position) AvgCost() (decimal.Decimal, bool) {
	if !p.Holdings.IsPositive() {
		return decimal.Zero, false
	}
	return p.avgCost, true
}

// Value returns Holdings * price.
func (p Position) Value(price decimal.Decimal) decimal.Decimal {
	return p.Holdings.Mul(price)
}

// Cost returns Holdings * average cost, or zero when nothing is held.
func (p Position) Cost() decimal.Decimal {
	avg, ok := p.AvgCost()
	if !ok {
		return decimal.Zero
	}
	return p.Holdings.Mul(avg)
}

// PnLPct returns the unrealized profit of the position in percent of its
// average cost. The second result is false when nothing is held.
func (p Position) PnLPct(price decimal.Decimal) (decimal.Decimal, bool) {
	avg, ok := p.AvgCost()
	if !ok || avg.IsZero() {
		return decimal.Zero, false
	}
	return price.Sub(avg).Div(avg).Mul(hundred), true
}

// Totals aggregates the value and cost of every position.
type Totals struct {
	TotalValue decimal.Decimal
	TotalCost  decimal.Decimal
	ProfitPct  decimal.Decimal
}

// Lot is an opening position used to seed a ledger.
type Lot struct {
	Symbol   string
	Holdings float64
	AvgCost  float64
}
