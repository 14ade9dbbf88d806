package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.Interval = time.Millisecond
	return cfg
}

func TestLoopRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim := newFakeSim()
	sim.cancelAt = 3
	sim.cancel = cancel
	rec := &recorder{}
	loop := NewLoop(fastConfig(), sim, rec, nil)

	summary, err := loop.Run(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", sim.ticks)
	}
	// Initial model plus one per tick.
	if len(rec.models) != 4 {
		t.Fatalf("expected 4 models, got %d", len(rec.models))
	}
	if rec.models[0].Tick != 0 || rec.models[3].Tick != 3 {
		t.Errorf("unexpected tick numbers %d..%d", rec.models[0].Tick, rec.models[3].Tick)
	}
	if loop.State() != StateTerminated {
		t.Errorf("expected TERMINATED, got %s", loop.State())
	}
	if summary.Ticks != 3 || summary.LogPath != "trades.csv" {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestLoopCancelledBeforeFirstTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := newFakeSim()
	rec := &recorder{}
	loop := NewLoop(Config{Interval: time.Hour}, sim, rec, nil)

	if _, err := loop.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.models) != 1 {
		t.Errorf("expected only the initial model, got %d", len(rec.models))
	}
	if sim.ticks != 0 {
		t.Errorf("expected no ticks, got %d", sim.ticks)
	}
	if loop.State() != StateTerminated {
		t.Errorf("expected TERMINATED, got %s", loop.State())
	}
}

func TestLoopStopsOnTickError(t *testing.T) {
	sim := newFakeSim()
	sim.failAt = 2
	rec := &recorder{}
	loop := NewLoop(fastConfig(), sim, rec, nil)

	summary, err := loop.Run(context.Background())
	if !errors.Is(err, errTick) {
		t.Fatalf("expected tick error, got %v", err)
	}
	if len(rec.models) != 2 {
		t.Errorf("expected 2 models, got %d", len(rec.models))
	}
	if summary.Ticks != 1 {
		t.Errorf("expected summary after 1 tick, got %d", summary.Ticks)
	}
	if loop.State() != StateTerminated {
		t.Errorf("expected TERMINATED, got %s", loop.State())
	}
}

func TestStateString(t *testing.T) {
	if StateShuttingDown.String() != "SHUTTING_DOWN" {
		t.Errorf("unexpected %s", StateShuttingDown)
	}
}
