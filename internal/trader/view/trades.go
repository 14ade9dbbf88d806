package view

import "github.com/zappabad/cryptoterm/internal/trader"

// SessionTrades is the in-memory record of trades executed during this run.
// Only the newest keep records are retained; Count covers the whole session.
type SessionTrades struct {
	keep   int
	recent []trader.TradeRecord
	count  int
}

// NewSessionTrades returns an empty history that retains up to keep trades.
func NewSessionTrades(keep int) *SessionTrades {
	if keep <= 0 {
		keep = 1
	}
	return &SessionTrades{keep: keep, recent: make([]trader.TradeRecord, 0, keep)}
}

// Record adds an executed trade, evicting the oldest retained one when full.
func (s *SessionTrades) Record(rec trader.TradeRecord) {
	s.count++
	if len(s.recent) == s.keep {
		copy(s.recent, s.recent[1:])
		s.recent = s.recent[:s.keep-1]
	}
	s.recent = append(s.recent, rec)
}

// Recent returns up to n of the newest trades, oldest first.
func (s *SessionTrades) Recent(n int) []trader.TradeRecord {
	if n <= 0 || len(s.recent) == 0 {
		return nil
	}
	n = min(n, len(s.recent))
	return append([]trader.TradeRecord(nil), s.recent[len(s.recent)-n:]...)
}

// Retained is how many trades are currently held for display.
func (s *SessionTrades) Retained() int {
	return len(s.recent)
}

// Count is the number of trades executed this session.
func (s *SessionTrades) Count() int {
	return s.count
}
