package dashboard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FinalSummary is reported once when the loop shuts down.
type FinalSummary struct {
	TotalValue   decimal.Decimal
	TotalCost    decimal.Decimal
	ProfitPct    decimal.Decimal
	Ticks        int
	TradesLogged int
	LogPath      string
}

// Text renders the summary as plain lines.
func (s FinalSummary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Final Portfolio Value: %s\n", formatUSD(s.TotalValue))
	fmt.Fprintf(&b, "Cost Basis: %s | Total P&L: %s\n", formatUSD(s.TotalCost), formatPct(s.ProfitPct))
	fmt.Fprintf(&b, "Ticks: %d | Trades this session: %d\n", s.Ticks, s.TradesLogged)
	fmt.Fprintf(&b, "Trades logged to: %s\n", s.LogPath)
	return b.String()
}

// Markdown renders the summary as a markdown document.
func (s FinalSummary) Markdown() string {
	var b strings.Builder
	b.WriteString("# Dashboard stopped\n\n")
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Final portfolio value | **%s** |\n", formatUSD(s.TotalValue))
	fmt.Fprintf(&b, "| Cost basis | %s |\n", formatUSD(s.TotalCost))
	fmt.Fprintf(&b, "| Total P&L | %s |\n", formatPct(s.ProfitPct))
	fmt.Fprintf(&b, "| Ticks | %d |\n", s.Ticks)
	fmt.Fprintf(&b, "| Trades this session | %d |\n", s.TradesLogged)
	fmt.Fprintf(&b, "\nTrades logged to `%s`\n", s.LogPath)
	return b.String()
}
