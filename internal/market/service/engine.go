package service

import (
	"errors"

	"github.com/zappabad/cryptoterm/internal/market"
	marketview "github.com/zappabad/cryptoterm/internal/market/view"
)

var ErrUnknownAsset = errors.New("unknown asset")

// RandSource supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// PriceEngine owns the current price and rolling history of every asset.
// It is not safe for concurrent mutation; the refresh loop is its only writer.
type PriceEngine struct {
	cfg     Config
	rnd     RandSource
	assets  []market.Asset
	prices  map[string]float64
	history map[string]*marketview.PriceHistory
	ticks   int
}

// NewPriceEngine creates an engine seeded with each asset's initial price.
func NewPriceEngine(assets []market.Asset, cfg Config, rnd RandSource) *PriceEngine {
	if cfg.HistoryLength <= 0 {
		cfg.HistoryLength = DefaultConfig().HistoryLength
	}
	if cfg.MaxMove <= 0 {
		cfg.MaxMove = DefaultConfig().MaxMove
	}

	e := &PriceEngine{
		cfg:     cfg,
		rnd:     rnd,
		assets:  append([]market.Asset(nil), assets...),
		prices:  make(map[string]float64, len(assets)),
		history: make(map[string]*marketview.PriceHistory, len(assets)),
	}
	for _, a := range assets {
		e.prices[a.Symbol] = a.InitialPrice
		e.history[a.Symbol] = marketview.NewPriceHistory(cfg.HistoryLength, a.InitialPrice)
	}
	return e
}

// Update moves every price by a uniform random fraction in
// [-MaxMove, +MaxMove] and pushes the result into its history.
func (e *PriceEngine) Update() {
	for _, a := range e.assets {
		change := -e.cfg.MaxMove + 2*e.cfg.MaxMove*e.rnd.Float64()
		p := e.prices[a.Symbol] * (1 + change)
		e.prices[a.Symbol] = p
		e.history[a.Symbol].Push(p)
	}
	e.ticks++
}

// Assets returns the asset universe in display order.
func (e *PriceEngine) Assets() []market.Asset {
	return append([]market.Asset(nil), e.assets...)
}

// Price returns the current price of symbol.
func (e *PriceEngine) Price(symbol string) (float64, error) {
	p, ok := e.prices[symbol]
	if !ok {
		return 0, ErrUnknownAsset
	}
	return p, nil
}

// Prices returns a copy of all current prices keyed by symbol.
func (e *PriceEngine) Prices() map[string]float64 {
	out := make(map[string]float64, len(e.prices))
	for k, v := range e.prices {
		out[k] = v
	}
	return out
}

// History returns the rolling price window of symbol, oldest first.
func (e *PriceEngine) History(symbol string) ([]float64, error) {
	h, ok := e.history[symbol]
	if !ok {
		return nil, ErrUnknownAsset
	}
	return h.Values(), nil
}

// Ticks returns how many times Update has run.
func (e *PriceEngine) Ticks() int {
	return e.ticks
}
