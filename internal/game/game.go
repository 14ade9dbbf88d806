package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zappabad/cryptoterm/internal/market"
	marketservice "github.com/zappabad/cryptoterm/internal/market/service"
	"github.com/zappabad/cryptoterm/internal/portfolio"
	"github.com/zappabad/cryptoterm/internal/tradelog"
	"github.com/zappabad/cryptoterm/internal/trader"
	"github.com/zappabad/cryptoterm/internal/trader/simulator"
	traderview "github.com/zappabad/cryptoterm/internal/trader/view"
	"go.uber.org/zap"
)

// Game owns all the simulation subsystems and manages their lifecycle.
// A Game is not safe for concurrent use; one goroutine drives Tick and
// reads state between ticks.
type Game struct {
	Engine    *marketservice.PriceEngine
	Ledger    *portfolio.Ledger
	Simulator *simulator.Simulator
	TradeLog  *tradelog.Logger
	Trades    *traderview.SessionTrades

	cfg Config
	log *zap.Logger
}

// New creates a new Game with the given configuration. It opens (and if
// needed creates) the trade log.
func New(cfg Config, log *zap.Logger) (*Game, error) {
	if len(cfg.Assets) == 0 {
		cfg.Assets = DefaultConfig().Assets
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultConfig().LogPath
	}
	if cfg.KeepTrades <= 0 {
		cfg.KeepTrades = DefaultConfig().KeepTrades
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if log == nil {
		log = zap.NewNop()
	}

	tradeLog, err := tradelog.Open(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	ledger := portfolio.NewLedger(market.Symbols(cfg.Assets))
	if err := ledger.Seed(cfg.Opening); err != nil {
		tradeLog.Close()
		return nil, fmt.Errorf("seed portfolio: %w", err)
	}

	// One source drives both prices and trades so a seed replays a whole run.
	rnd := rand.New(rand.NewSource(cfg.Seed))
	engine := marketservice.NewPriceEngine(cfg.Assets, cfg.MarketConfig, rnd)

	g := &Game{
		Engine:   engine,
		Ledger:   ledger,
		TradeLog: tradeLog,
		Trades:   traderview.NewSessionTrades(cfg.KeepTrades),
		cfg:      cfg,
		log:      log,
	}
	g.Simulator = simulator.NewSimulator(cfg.TraderConfig, rnd, engine, ledger, tradeLog, log)

	log.Info("game initialized",
		zap.Strings("assets", market.Symbols(cfg.Assets)),
		zap.String("log_path", cfg.LogPath),
		zap.Int64("seed", cfg.Seed),
	)
	return g, nil
}

// Tick advances prices and gives the simulator one chance to trade.
// It returns the executed trade, if any.
func (g *Game) Tick() (*trader.TradeRecord, error) {
	g.Engine.Update()

	rec, err := g.Simulator.MaybeTrade()
	if err != nil {
		return nil, err
	}
	if rec != nil {
		g.Trades.Record(*rec)
	}
	return rec, nil
}

// Assets returns the asset universe in display order.
func (g *Game) Assets() []market.Asset {
	return g.Engine.Assets()
}

// Prices returns current prices keyed by symbol.
func (g *Game) Prices() map[string]float64 {
	return g.Engine.Prices()
}

// History returns the rolling price window of symbol.
func (g *Game) History(symbol string) ([]float64, error) {
	return g.Engine.History(symbol)
}

// Position returns the ledger position of symbol.
func (g *Game) Position(symbol string) (portfolio.Position, error) {
	return g.Ledger.Position(symbol)
}

// RecentTrades returns up to n of the latest executed trades, oldest first.
func (g *Game) RecentTrades(n int) []trader.TradeRecord {
	return g.Trades.Recent(n)
}

// Ticks returns the number of completed price updates.
func (g *Game) Ticks() int {
	return g.Engine.Ticks()
}

// TradesLogged returns the number of trades appended this session.
func (g *Game) TradesLogged() int {
	return g.TradeLog.Rows()
}

// Totals values the portfolio at current prices.
func (g *Game) Totals() portfolio.Totals {
	return g.Ledger.ValueAndCost(g.Engine.Prices())
}

// LogPath returns the trade log location.
func (g *Game) LogPath() string {
	return g.TradeLog.Path()
}

// Seed returns the seed of the random source.
func (g *Game) Seed() int64 {
	return g.cfg.Seed
}

// Close releases the trade log. Closing twice is a no-op.
func (g *Game) Close() error {
	return g.TradeLog.Close()
}
