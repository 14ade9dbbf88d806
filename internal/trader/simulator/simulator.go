package simulator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zappabad/cryptoterm/internal/trader"
	"go.uber.org/zap"
)

// Simulator generates random synthetic trades against a ledger.
type Simulator struct {
	cfg    Config
	rnd    RandSource
	prices PriceReader
	ledger Ledger
	rec    Recorder
	log    *zap.Logger
	now    func() time.Time
}

// NewSimulator creates a new Simulator.
func NewSimulator(
	cfg Config,
	rnd RandSource,
	prices PriceReader,
	ledger Ledger,
	rec Recorder,
	log *zap.Logger,
) *Simulator {
	def := DefaultConfig()
	if cfg.TradeProbability <= 0 {
		cfg.TradeProbability = def.TradeProbability
	}
	if cfg.BuyMax <= 0 || cfg.BuyMin > cfg.BuyMax {
		cfg.BuyMin, cfg.BuyMax = def.BuyMin, def.BuyMax
	}
	if cfg.SellMax <= 0 || cfg.SellMin > cfg.SellMax {
		cfg.SellMin, cfg.SellMax = def.SellMin, def.SellMax
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Simulator{
		cfg:    cfg,
		rnd:    rnd,
		prices: prices,
		ledger: ledger,
		rec:    rec,
		log:    log,
		now:    time.Now,
	}
}

// MaybeTrade rolls for a trade and, when one happens, records it and applies
// it to the ledger. It returns nil when no trade was executed this tick,
// including when a sell is drawn for an asset with no holdings.
//
// The record is appended before the ledger changes, so a failed append
// leaves the portfolio as it was.
func (s *Simulator) MaybeTrade() (*trader.TradeRecord, error) {
	if s.rnd.Float64() >= s.cfg.TradeProbability {
		return nil, nil
	}

	assets := s.prices.Assets()
	if len(assets) == 0 {
		return nil, nil
	}
	symbol := assets[s.rnd.Intn(len(assets))].Symbol
	action := trader.Actions[s.rnd.Intn(len(trader.Actions))]

	p, err := s.prices.Price(symbol)
	if err != nil {
		return nil, fmt.Errorf("price %s: %w", symbol, err)
	}
	price := decimal.NewFromFloat(p)

	var rec trader.TradeRecord
	switch action {
	case trader.ActionBuy:
		amount := s.uniform(s.cfg.BuyMin, s.cfg.BuyMax)
		rec = trader.NewTradeRecord(s.now(), symbol, action, price, amount)
		if err := s.rec.Append(rec); err != nil {
			return nil, err
		}
		if err := s.ledger.ApplyBuy(symbol, price, amount); err != nil {
			return nil, fmt.Errorf("apply buy %s: %w", symbol, err)
		}

	case trader.ActionSell:
		held := s.ledger.Holdings(symbol)
		if !held.IsPositive() {
			s.log.Debug("sell skipped, nothing held", zap.String("symbol", symbol))
			return nil, nil
		}
		amount := decimal.Min(s.uniform(s.cfg.SellMin, s.cfg.SellMax), held)
		rec = trader.NewTradeRecord(s.now(), symbol, action, price, amount)
		if err := s.rec.Append(rec); err != nil {
			return nil, err
		}
		if _, err := s.ledger.ApplySell(symbol, amount); err != nil {
			return nil, fmt.Errorf("apply sell %s: %w", symbol, err)
		}
	}

	s.log.Info("trade executed",
		zap.String("id", rec.ID.String()),
		zap.String("symbol", rec.Symbol),
		zap.String("action", string(rec.Action)),
		zap.String("price", rec.Price.StringFixed(2)),
		zap.String("amount", rec.Amount.StringFixed(4)),
		zap.String("total", rec.Total.StringFixed(2)),
	)
	return &rec, nil
}

func (s *Simulator) uniform(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + (hi-lo)*s.rnd.Float64())
}
