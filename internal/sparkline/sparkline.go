// Package sparkline renders numeric series as compact block-glyph strings.
package sparkline

import "strings"

// Glyphs is the ordered alphabet from lowest to highest intensity.
var Glyphs = []rune("▁▂▃▄▅▆▇█")

// Render maps each sample to a glyph by its position between the series
// minimum and maximum. A flat series uses a range of 1.
func Render(samples []float64) string {
	if len(samples) == 0 {
		return ""
	}

	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	top := len(Glyphs) - 1
	var b strings.Builder
	b.Grow(len(samples) * 3)
	for _, s := range samples {
		idx := int((s - lo) / span * float64(top))
		if idx > top {
			idx = top
		}
		b.WriteRune(Glyphs[idx])
	}
	return b.String()
}
