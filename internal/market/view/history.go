package view

// PriceHistory is a fixed-capacity ring of the most recent prices for one
// asset. It is always full: it starts with capacity copies of the seed price
// and every Push overwrites the oldest sample. It is owned by the price
// engine and is not safe for concurrent use.
type PriceHistory struct {
	buf   []float64
	start int
}

// NewPriceHistory creates a history of the given capacity filled with seed.
func NewPriceHistory(capacity int, seed float64) *PriceHistory {
	if capacity <= 0 {
		capacity = 1
	}
	buf := make([]float64, capacity)
	for i := range buf {
		buf[i] = seed
	}
	return &PriceHistory{buf: buf}
}

// Push drops the oldest price and appends p as the newest.
func (h *PriceHistory) Push(p float64) {
	h.buf[h.start] = p
	h.start = (h.start + 1) % len(h.buf)
}

// Values returns a copy of the prices, oldest first.
func (h *PriceHistory) Values() []float64 {
	n := len(h.buf)
	out := make([]float64, n)
	for i := range n {
		out[i] = h.buf[(h.start+i)%n]
	}
	return out
}

// Latest returns the newest price.
func (h *PriceHistory) Latest() float64 {
	n := len(h.buf)
	return h.buf[(h.start+n-1)%n]
}

// Len returns the capacity, which is also the number of stored prices.
func (h *PriceHistory) Len() int {
	return len(h.buf)
}
