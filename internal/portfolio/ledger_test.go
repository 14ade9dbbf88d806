package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyBuyWeightedAverage(t *testing.T) {
	l := NewLedger([]string{"BTC"})
	if err := l.Seed([]Lot{{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.ApplyBuy("BTC", d("50000"), d("0.1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := l.Position("BTC")
	if !p.Holdings.Equal(d("0.6")) {
		t.Errorf("expected holdings 0.6, got %s", p.Holdings)
	}
	avg, ok := p.AvgCost()
	if !ok {
		t.Fatal("expected defined average cost")
	}
	if got := avg.StringFixed(2); got != "48333.33" {
		t.Errorf("expected avg cost 48333.33, got %s", got)
	}
}

func TestApplyBuyFromZero(t *testing.T) {
	l := NewLedger([]string{"SOL"})
	if err := l.ApplyBuy("SOL", d("100"), d("0.05")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	avg, ok := l.Positions()[0].AvgCost()
	if !ok || !avg.Equal(d("100")) {
		t.Errorf("expected avg 100, got %s (ok=%v)", avg, ok)
	}
}

func TestApplyBuyRejectsNonPositive(t *testing.T) {
	l := NewLedger([]string{"BTC"})

	if err := l.ApplyBuy("BTC", d("1"), decimal.Zero); err != ErrNonPositiveAmount {
		t.Errorf("expected ErrNonPositiveAmount, got %v", err)
	}
	if err := l.ApplyBuy("BTC", d("1"), d("-1")); err != ErrNonPositiveAmount {
		t.Errorf("expected ErrNonPositiveAmount, got %v", err)
	}
	if err := l.ApplyBuy("XRP", d("1"), d("1")); err != ErrUnknownAsset {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestApplySellCapsAtHoldings(t *testing.T) {
	l := NewLedger([]string{"ETH"})
	if err := l.ApplyBuy("ETH", d("3000"), d("0.03")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sold, err := l.ApplySell("ETH", d("0.05"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sold.Equal(d("0.03")) {
		t.Errorf("expected sold 0.03, got %s", sold)
	}
	if !l.Holdings("ETH").IsZero() {
		t.Errorf("expected zero holdings, got %s", l.Holdings("ETH"))
	}
	p, _ := l.Position("ETH")
	if _, ok := p.AvgCost(); ok {
		t.Error("expected undefined average cost at zero holdings")
	}
}

func TestApplySellKeepsAverageCost(t *testing.T) {
	l := NewLedger([]string{"ETH"})
	if err := l.Seed([]Lot{{Symbol: "ETH", Holdings: 2, AvgCost: 2900}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.ApplySell("ETH", d("0.5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := l.Position("ETH")
	avg, ok := p.AvgCost()
	if !ok || !avg.Equal(d("2900")) {
		t.Errorf("expected avg 2900 after sell, got %s (ok=%v)", avg, ok)
	}
	if !p.Holdings.Equal(d("1.5")) {
		t.Errorf("expected holdings 1.5, got %s", p.Holdings)
	}
}

func TestApplySellThenBuyResetsBasis(t *testing.T) {
	l := NewLedger([]string{"SOL"})
	_ = l.ApplyBuy("SOL", d("200"), d("1"))
	_, _ = l.ApplySell("SOL", d("1"))
	_ = l.ApplyBuy("SOL", d("100"), d("1"))

	p, _ := l.Position("SOL")
	avg, _ := p.AvgCost()
	if !avg.Equal(d("100")) {
		t.Errorf("expected fresh basis 100, got %s", avg)
	}
}

func TestApplySellRejectsNonPositive(t *testing.T) {
	l := NewLedger([]string{"BTC"})
	if _, err := l.ApplySell("BTC", decimal.Zero); err != ErrNonPositiveAmount {
		t.Errorf("expected ErrNonPositiveAmount, got %v", err)
	}
	if _, err := l.ApplySell("XRP", d("1")); err != ErrUnknownAsset {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestValueAndCostZeroCost(t *testing.T) {
	l := NewLedger([]string{"BTC", "ETH"})

	totals := l.ValueAndCost(map[string]float64{"BTC": 50000, "ETH": 3000})
	if !totals.TotalValue.IsZero() || !totals.TotalCost.IsZero() {
		t.Errorf("expected zero totals, got %s / %s", totals.TotalValue, totals.TotalCost)
	}
	if !totals.ProfitPct.IsZero() {
		t.Errorf("expected zero profit, got %s", totals.ProfitPct)
	}
}

func TestValueAndCost(t *testing.T) {
	l := NewLedger([]string{"BTC", "ETH", "SOL"})
	err := l.Seed([]Lot{
		{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000},
		{Symbol: "ETH", Holdings: 2, AvgCost: 2900},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals := l.ValueAndCost(map[string]float64{"BTC": 50000, "ETH": 3000, "SOL": 100})
	// value = 25000 + 6000, cost = 24000 + 5800
	if !totals.TotalValue.Equal(d("31000")) {
		t.Errorf("expected value 31000, got %s", totals.TotalValue)
	}
	if !totals.TotalCost.Equal(d("29800")) {
		t.Errorf("expected cost 29800, got %s", totals.TotalCost)
	}
	if got := totals.ProfitPct.StringFixed(2); got != "4.03" {
		t.Errorf("expected profit 4.03%%, got %s", got)
	}
}

func TestPositionPnLPct(t *testing.T) {
	l := NewLedger([]string{"BTC", "SOL"})
	_ = l.Seed([]Lot{{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000}})

	p, _ := l.Position("BTC")
	pct, ok := p.PnLPct(d("50400"))
	if !ok || !pct.Equal(d("5")) {
		t.Errorf("expected +5%%, got %s (ok=%v)", pct, ok)
	}

	empty, _ := l.Position("SOL")
	if _, ok := empty.PnLPct(d("100")); ok {
		t.Error("expected no P&L for empty position")
	}
}
