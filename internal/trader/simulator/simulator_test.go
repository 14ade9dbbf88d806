package simulator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zappabad/cryptoterm/internal/market"
	marketservice "github.com/zappabad/cryptoterm/internal/market/service"
	"github.com/zappabad/cryptoterm/internal/portfolio"
	"github.com/zappabad/cryptoterm/internal/trader"
)

// scriptedRand replays fixed samples in order.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type memRecorder struct {
	records []trader.TradeRecord
	err     error
}

func (m *memRecorder) Append(rec trader.TradeRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

// Universe order: BTC=0, ETH=1, SOL=2, DOGE=3.
func setup(t *testing.T, rnd RandSource, rec Recorder, lots ...portfolio.Lot) (*Simulator, *portfolio.Ledger) {
	t.Helper()
	assets := market.DefaultAssets()
	engine := marketservice.NewPriceEngine(assets, marketservice.DefaultConfig(), nil)
	ledger := portfolio.NewLedger(market.Symbols(assets))
	if err := ledger.Seed(lots); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewSimulator(DefaultConfig(), rnd, engine, ledger, rec, nil), ledger
}

func TestMaybeTradeNoRoll(t *testing.T) {
	rec := &memRecorder{}
	sim, _ := setup(t, &scriptedRand{floats: []float64{0.05}}, rec)

	got, err := sim.MaybeTrade()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no trade, got %+v", got)
	}
	if len(rec.records) != 0 {
		t.Errorf("expected nothing logged, got %d", len(rec.records))
	}
}

func TestMaybeTradeBuy(t *testing.T) {
	rec := &memRecorder{}
	rnd := &scriptedRand{floats: []float64{0.01, 0.5}, ints: []int{0, 0}}
	sim, ledger := setup(t, rnd, rec, portfolio.Lot{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000})

	got, err := sim.MaybeTrade()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a trade")
	}
	if got.Symbol != "BTC" || got.Action != trader.ActionBuy {
		t.Errorf("expected BTC BUY, got %s %s", got.Symbol, got.Action)
	}
	if a := got.Amount.StringFixed(4); a != "0.0550" {
		t.Errorf("expected amount 0.0550, got %s", a)
	}
	if !got.Price.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected price 50000, got %s", got.Price)
	}
	if !got.Total.Equal(got.Price.Mul(got.Amount)) {
		t.Errorf("total %s != price*amount", got.Total)
	}

	wantHoldings := decimal.NewFromFloat(0.5).Add(got.Amount)
	if !ledger.Holdings("BTC").Equal(wantHoldings) {
		t.Errorf("expected holdings %s, got %s", wantHoldings, ledger.Holdings("BTC"))
	}
	if len(rec.records) != 1 || rec.records[0].ID != got.ID {
		t.Errorf("expected exactly the returned record to be logged, got %v", rec.records)
	}
}

func TestMaybeTradeSellWithoutHoldingsIsNoop(t *testing.T) {
	rec := &memRecorder{}
	rnd := &scriptedRand{floats: []float64{0.0}, ints: []int{2, 1}}
	sim, ledger := setup(t, rnd, rec)

	got, err := sim.MaybeTrade()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no trade, got %+v", got)
	}
	if len(rec.records) != 0 {
		t.Errorf("expected nothing logged, got %d", len(rec.records))
	}
	if !ledger.Holdings("SOL").IsZero() {
		t.Errorf("expected SOL holdings unchanged")
	}
}

func TestMaybeTradeSellCappedAtHoldings(t *testing.T) {
	rec := &memRecorder{}
	rnd := &scriptedRand{floats: []float64{0.0, 1.0}, ints: []int{1, 1}}
	sim, ledger := setup(t, rnd, rec, portfolio.Lot{Symbol: "ETH", Holdings: 0.03, AvgCost: 2900})

	got, err := sim.MaybeTrade()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Action != trader.ActionSell {
		t.Fatalf("expected a sell, got %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromFloat(0.03)) {
		t.Errorf("expected amount capped to 0.03, got %s", got.Amount)
	}
	if !ledger.Holdings("ETH").IsZero() {
		t.Errorf("expected zero ETH, got %s", ledger.Holdings("ETH"))
	}
}

func TestMaybeTradeSellKeepsBasis(t *testing.T) {
	rec := &memRecorder{}
	rnd := &scriptedRand{floats: []float64{0.0, 0.0}, ints: []int{1, 1}}
	sim, ledger := setup(t, rnd, rec, portfolio.Lot{Symbol: "ETH", Holdings: 2, AvgCost: 2900})

	if _, err := sim.MaybeTrade(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := ledger.Position("ETH")
	avg, ok := p.AvgCost()
	if !ok || !avg.Equal(decimal.NewFromInt(2900)) {
		t.Errorf("expected basis 2900, got %s", avg)
	}
	if !p.Holdings.Equal(decimal.NewFromFloat(1.99)) {
		t.Errorf("expected 1.99 held, got %s", p.Holdings)
	}
}

func TestMaybeTradeAppendFailureLeavesLedger(t *testing.T) {
	diskFull := errors.New("disk full")
	rec := &memRecorder{err: diskFull}
	rnd := &scriptedRand{floats: []float64{0.0, 0.5}, ints: []int{0, 0}}
	sim, ledger := setup(t, rnd, rec, portfolio.Lot{Symbol: "BTC", Holdings: 0.5, AvgCost: 48000})

	got, err := sim.MaybeTrade()
	if !errors.Is(err, diskFull) {
		t.Fatalf("expected disk full error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no record on failure, got %+v", got)
	}
	if !ledger.Holdings("BTC").Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("ledger changed despite failed append: %s", ledger.Holdings("BTC"))
	}
}
