package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownAsset      = errors.New("unknown asset")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Ledger owns every Position and the aggregate portfolio math.
// It is not safe for concurrent mutation.
type Ledger struct {
	symbols   []string
	positions map[string]*Position
}

// NewLedger creates an empty ledger over a fixed set of symbols.
func NewLedger(symbols []string) *Ledger {
	l := &Ledger{
		symbols:   append([]string(nil), symbols...),
		positions: make(map[string]*Position, len(symbols)),
	}
	for _, s := range symbols {
		l.positions[s] = &Position{Symbol: s}
	}
	return l
}

// Seed applies opening lots as buys.
func (l *Ledger) Seed(lots []Lot) error {
	for _, lot := range lots {
		err := l.ApplyBuy(lot.Symbol, decimal.NewFromFloat(lot.AvgCost), decimal.NewFromFloat(lot.Holdings))
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyBuy adds amount to the holdings of symbol and folds price into the
// weighted average cost.
func (l *Ledger) ApplyBuy(symbol string, price, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	p, ok := l.positions[symbol]
	if !ok {
		return ErrUnknownAsset
	}

	oldCost := p.Cost()
	newHoldings := p.Holdings.Add(amount)
	p.avgCost = oldCost.Add(amount.Mul(price)).Div(newHoldings)
	p.Holdings = newHoldings
	return nil
}

// ApplySell removes up to amount from the holdings of symbol and returns the
// quantity actually sold. Selling more than is held sells everything.
// The average cost is left untouched.
func (l *Ledger) ApplySell(symbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	p, ok := l.positions[symbol]
	if !ok {
		return decimal.Zero, ErrUnknownAsset
	}

	sold := decimal.Min(amount, p.Holdings)
	p.Holdings = p.Holdings.Sub(sold)
	if p.Holdings.IsZero() {
		p.avgCost = decimal.Zero
	}
	return sold, nil
}

// Holdings returns the quantity held of symbol, zero for unknown symbols.
func (l *Ledger) Holdings(symbol string) decimal.Decimal {
	p, ok := l.positions[symbol]
	if !ok {
		return decimal.Zero
	}
	return p.Holdings
}

// Position returns a copy of the position of symbol.
func (l *Ledger) Position(symbol string) (Position, error) {
	p, ok := l.positions[symbol]
	if !ok {
		return Position{}, ErrUnknownAsset
	}
	return *p, nil
}

// Positions returns copies of all positions in symbol order.
func (l *Ledger) Positions() []Position {
	out := make([]Position, 0, len(l.symbols))
	for _, s := range l.symbols {
		out = append(out, *l.positions[s])
	}
	return out
}

// ValueAndCost values every position at the given prices. Symbols missing
// from prices contribute no value. ProfitPct is zero when there is no cost.
func (l *Ledger) ValueAndCost(prices map[string]float64) Totals {
	value := decimal.Zero
	cost := decimal.Zero
	for _, s := range l.symbols {
		p := l.positions[s]
		value = value.Add(p.Value(decimal.NewFromFloat(prices[s])))
		cost = cost.Add(p.Cost())
	}

	profit := decimal.Zero
	if cost.IsPositive() {
		profit = value.Sub(cost).Div(cost).Mul(hundred)
	}
	return Totals{
		TotalValue: value,
		TotalCost:  cost,
		ProfitPct:  profit,
	}
}
