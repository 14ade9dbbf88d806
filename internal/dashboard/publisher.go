package dashboard

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Publisher receives a render model once per tick.
type Publisher interface {
	Publish(m RenderModel)
}

// ChannelPublisher hands render models to a presentation layer running in
// another goroutine. It never blocks: when the consumer falls behind, the
// stale model is replaced by the newest one.
type ChannelPublisher struct {
	models  chan RenderModel
	dropped atomic.Int64

	closeOnce sync.Once
}

// NewChannelPublisher creates a publisher with the given buffer size.
func NewChannelPublisher(buffer int) *ChannelPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelPublisher{models: make(chan RenderModel, buffer)}
}

// Publish implements Publisher. It must be called from a single goroutine.
func (p *ChannelPublisher) Publish(m RenderModel) {
	for {
		select {
		case p.models <- m:
			return
		default:
		}
		// Full: drop the oldest queued model and retry.
		select {
		case <-p.models:
			p.dropped.Add(1)
		default:
		}
	}
}

// Models returns the channel the presentation layer reads from.
func (p *ChannelPublisher) Models() <-chan RenderModel {
	return p.models
}

// Dropped returns the number of models replaced before being read.
func (p *ChannelPublisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close closes the models channel. Publish must not be called afterwards.
func (p *ChannelPublisher) Close() {
	p.closeOnce.Do(func() {
		close(p.models)
	})
}

// TextPublisher writes each render model as plain lines, for pipes and
// terminals without TUI support.
type TextPublisher struct {
	w io.Writer
}

// NewTextPublisher creates a TextPublisher writing to w.
func NewTextPublisher(w io.Writer) *TextPublisher {
	return &TextPublisher{w: w}
}

// Publish implements Publisher.
func (p *TextPublisher) Publish(m RenderModel) {
	io.WriteString(p.w, RenderText(m))
}

// RenderText formats m as a block of plain text ending in a blank line.
func RenderText(m RenderModel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== tick %d  %s ==\n", m.Tick, m.UpdatedAt.Format("15:04:05"))
	fmt.Fprintf(&b, "%-5s %14s %-12s %-5s %-20s %10s %9s\n",
		"Coin", "Price", "Trend", "Sig", "Chart", "Holdings", "P&L")
	for _, r := range m.Rows {
		fmt.Fprintf(&b, "%-5s %14s %-12s %-5s %-20s %10s %9s\n",
			r.Symbol, r.PriceText, r.TrendIndicator+" "+r.TrendLabel, r.Signal,
			r.Sparkline, r.HoldingsText, r.PnLText)
	}
	fmt.Fprintf(&b, "Portfolio Value: %s | Cost Basis: %s | Total P&L: %s\n",
		m.Summary.ValueText, m.Summary.CostText, m.Summary.ProfitText)
	for _, t := range m.RecentTrades {
		fmt.Fprintf(&b, "trade %s %s %s %s @ %s = %s\n",
			t.Time, t.Action, t.AmountText, t.Symbol, t.PriceText, t.TotalText)
	}
	if len(m.Alerts) == 0 {
		b.WriteString("No alerts\n")
	}
	for _, a := range m.Alerts {
		fmt.Fprintf(&b, "ALERT %s\n", a.Message)
	}
	b.WriteString("\n")
	return b.String()
}
