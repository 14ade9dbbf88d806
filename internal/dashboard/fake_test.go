package dashboard

import (
	"context"
	"errors"

	"github.com/zappabad/cryptoterm/internal/market"
	"github.com/zappabad/cryptoterm/internal/portfolio"
	"github.com/zappabad/cryptoterm/internal/trader"
)

// fakeSim is an in-memory Simulation with scripted histories.
type fakeSim struct {
	assets   []market.Asset
	history  map[string][]float64
	ledger   *portfolio.Ledger
	trades   []trader.TradeRecord
	ticks    int
	logged   int
	failAt   int
	cancelAt int
	cancel   context.CancelFunc
}

var (
	errTick          = errors.New("append failed")
	errUnknownSymbol = errors.New("unknown symbol")
)

func newFakeSim(lots ...portfolio.Lot) *fakeSim {
	assets := market.DefaultAssets()
	s := &fakeSim{
		assets:  assets,
		history: make(map[string][]float64),
		ledger:  portfolio.NewLedger(market.Symbols(assets)),
	}
	for _, a := range assets {
		h := make([]float64, 20)
		for i := range h {
			h[i] = a.InitialPrice
		}
		s.history[a.Symbol] = h
	}
	if err := s.ledger.Seed(lots); err != nil {
		panic(err)
	}
	return s
}

func (s *fakeSim) Assets() []market.Asset { return s.assets }

func (s *fakeSim) Prices() map[string]float64 {
	out := make(map[string]float64)
	for sym, h := range s.history {
		out[sym] = h[len(h)-1]
	}
	return out
}

func (s *fakeSim) History(symbol string) ([]float64, error) {
	h, ok := s.history[symbol]
	if !ok {
		return nil, errUnknownSymbol
	}
	return append([]float64(nil), h...), nil
}

func (s *fakeSim) Position(symbol string) (portfolio.Position, error) {
	return s.ledger.Position(symbol)
}

func (s *fakeSim) Totals() portfolio.Totals { return s.ledger.ValueAndCost(s.Prices()) }

func (s *fakeSim) RecentTrades(n int) []trader.TradeRecord {
	if n > len(s.trades) {
		n = len(s.trades)
	}
	return s.trades[len(s.trades)-n:]
}

func (s *fakeSim) Ticks() int        { return s.ticks }
func (s *fakeSim) TradesLogged() int { return s.logged }
func (s *fakeSim) LogPath() string   { return "trades.csv" }

func (s *fakeSim) Tick() (*trader.TradeRecord, error) {
	if s.failAt > 0 && s.ticks+1 == s.failAt {
		return nil, errTick
	}
	s.ticks++
	if s.cancelAt > 0 && s.ticks == s.cancelAt {
		s.cancel()
	}
	return nil, nil
}

// recorder collects published models.
type recorder struct {
	models []RenderModel
}

func (r *recorder) Publish(m RenderModel) { r.models = append(r.models, m) }
