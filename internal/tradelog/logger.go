// Package tradelog persists executed trades to an append-only CSV file.
package tradelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/zappabad/cryptoterm/internal/trader"
)

// TimeLayout is the timestamp format of the Timestamp column.
const TimeLayout = "2006-01-02 15:04:05"

// Header is the fixed column header written once per file.
var Header = []string{"Timestamp", "Coin", "Action", "Price", "Amount", "Total"}

var ErrClosed = errors.New("trade log closed")

// Logger appends one row per executed trade. Rows are flushed and synced
// before Append returns; existing rows are never rewritten.
type Logger struct {
	mu   sync.Mutex
	path string
	f    *os.File
	w    *csv.Writer
	rows int
}

// Open opens or creates the log at path, writing the header if the file is
// new or empty. A last line cut short by a crash is terminated so new rows
// start on a line of their own.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat trade log: %w", err)
	}

	l := &Logger{path: path, f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := l.writeRow(Header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write trade log header: %w", err)
		}
		return l, nil
	}
	if err := terminateLastLine(f, info.Size()); err != nil {
		f.Close()
		return nil, fmt.Errorf("repair trade log: %w", err)
	}
	return l, nil
}

func terminateLastLine(f *os.File, size int64) error {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return err
	}
	return f.Sync()
}

// Append writes rec as one row.
func (l *Logger) Append(rec trader.TradeRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return ErrClosed
	}
	if err := l.writeRow(Format(rec)); err != nil {
		return fmt.Errorf("append trade %s: %w", rec.ID, err)
	}
	l.rows++
	return nil
}

func (l *Logger) writeRow(row []string) error {
	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return err
	}
	return l.f.Sync()
}

// Path returns the file location.
func (l *Logger) Path() string {
	return l.path
}

// Rows returns how many trades were appended through this Logger.
func (l *Logger) Rows() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows
}

// Close closes the underlying file. Further appends fail with ErrClosed.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// Format renders rec as a CSV row.
func Format(rec trader.TradeRecord) []string {
	return []string{
		rec.Time.Format(TimeLayout),
		rec.Symbol,
		string(rec.Action),
		rec.Price.StringFixed(2),
		rec.Amount.StringFixed(4),
		rec.Total.StringFixed(2),
	}
}

// Row is one parsed data row.
type Row struct {
	Timestamp string
	Coin      string
	Action    string
	Price     string
	Amount    string
	Total     string
}

// ReadAll parses every data row of the log at path, skipping the header.
func ReadAll(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	var out []Row
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read trade log: %w", err)
		}
		if first {
			first = false
			if rec[0] == Header[0] {
				continue
			}
		}
		out = append(out, Row{
			Timestamp: rec[0],
			Coin:      rec[1],
			Action:    rec[2],
			Price:     rec[3],
			Amount:    rec[4],
			Total:     rec[5],
		})
	}
	return out, nil
}
