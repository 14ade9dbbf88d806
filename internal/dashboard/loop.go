package dashboard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zappabad/cryptoterm/internal/trader"
	"go.uber.org/zap"
)

// Simulation is the state the loop advances and renders.
type Simulation interface {
	Source
	Tick() (*trader.TradeRecord, error)
	TradesLogged() int
	LogPath() string
}

// Loop runs one tick per interval and publishes a render model after each.
// All simulation mutation happens on the goroutine calling Run.
type Loop struct {
	cfg      Config
	sim      Simulation
	pub      Publisher
	composer *Composer
	log      *zap.Logger

	state atomic.Int32
}

// NewLoop creates a new Loop.
func NewLoop(cfg Config, sim Simulation, pub Publisher, log *zap.Logger) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		cfg:      cfg,
		sim:      sim,
		pub:      pub,
		composer: NewComposer(cfg),
		log:      log,
	}
}

// State returns the current lifecycle phase. Safe for concurrent use.
func (l *Loop) State() State {
	return State(l.state.Load())
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
	l.log.Debug("loop state", zap.Stringer("state", s))
}

// Run publishes an initial model, then ticks until ctx is cancelled or a
// tick fails. Cancellation is checked between ticks, never inside one.
// The final summary is always returned; the error is non-nil only when a
// tick failed.
func (l *Loop) Run(ctx context.Context) (FinalSummary, error) {
	l.setState(StateInitializing)
	l.pub.Publish(l.composer.Build(l.sim))
	l.setState(StateRunning)

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			if ctx.Err() != nil {
				break loop
			}
			if _, err := l.sim.Tick(); err != nil {
				l.log.Error("tick failed", zap.Int("tick", l.sim.Ticks()), zap.Error(err))
				runErr = fmt.Errorf("tick %d: %w", l.sim.Ticks(), err)
				break loop
			}
			l.pub.Publish(l.composer.Build(l.sim))
		}
	}

	l.setState(StateShuttingDown)
	totals := l.sim.Totals()
	summary := FinalSummary{
		TotalValue:   totals.TotalValue,
		TotalCost:    totals.TotalCost,
		ProfitPct:    totals.ProfitPct,
		Ticks:        l.sim.Ticks(),
		TradesLogged: l.sim.TradesLogged(),
		LogPath:      l.sim.LogPath(),
	}
	l.log.Info("loop stopped",
		zap.Int("ticks", summary.Ticks),
		zap.Int("trades", summary.TradesLogged),
		zap.String("value", summary.TotalValue.StringFixed(2)),
	)
	l.setState(StateTerminated)
	return summary, runErr
}
