// Package analysis classifies price momentum and derives trading signals.
package analysis

// Trend window constants. They are independent of the price history length.
const (
	TrendWindow    = 10
	TrendHalf      = 5
	TrendThreshold = 0.02
)

// Trend classifies recent versus older price momentum.
type Trend string

const (
	TrendUp     Trend = "UP"
	TrendDown   Trend = "DOWN"
	TrendStable Trend = "STABLE"
)

// Label returns the lowercase display label.
func (t Trend) Label() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "stable"
	}
}

// Indicator returns a one-glyph marker for the trend.
func (t Trend) Indicator() string {
	switch t {
	case TrendUp:
		return "📈"
	case TrendDown:
		return "📉"
	default:
		return "➡"
	}
}

// Signal is a trading recommendation derived from a Trend.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Category is a presentation-neutral tone for a value.
type Category int

const (
	CategoryNeutral Category = iota
	CategoryPositive
	CategoryNegative
)

// Category returns the tone of the signal.
func (s Signal) Category() Category {
	switch s {
	case SignalBuy:
		return CategoryPositive
	case SignalSell:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// ClassifyTrend compares the mean of the last TrendHalf samples with the mean
// of the TrendHalf samples before them. Histories shorter than TrendWindow are
// STABLE.
func ClassifyTrend(history []float64) Trend {
	n := len(history)
	if n < TrendWindow {
		return TrendStable
	}

	recent := mean(history[n-TrendHalf:])
	older := mean(history[n-TrendWindow : n-TrendHalf])

	switch {
	case recent > older*(1+TrendThreshold):
		return TrendUp
	case recent < older*(1-TrendThreshold):
		return TrendDown
	default:
		return TrendStable
	}
}

// SignalFor maps a trend to its signal.
func SignalFor(t Trend) Signal {
	switch t {
	case TrendUp:
		return SignalBuy
	case TrendDown:
		return SignalSell
	default:
		return SignalHold
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
