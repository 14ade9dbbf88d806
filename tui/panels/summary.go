package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/tui/styles"
)

// SummaryPanel shows the aggregate portfolio value, cost and profit.
type SummaryPanel struct {
	summary dashboard.Summary
	width   int
}

// NewSummaryPanel creates a new summary panel.
func NewSummaryPanel() *SummaryPanel {
	return &SummaryPanel{}
}

// SetSummary replaces the displayed summary.
func (p *SummaryPanel) SetSummary(s dashboard.Summary) {
	p.summary = s
}

// SetSize sets the panel width.
func (p *SummaryPanel) SetSize(width int) {
	p.width = width
}

// View renders the panel.
func (p *SummaryPanel) View() string {
	s := p.summary
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("💼 Portfolio Value: "),
		styles.ValueStyle.Render(s.ValueText),
		styles.LabelStyle.Render(" | Cost Basis: "),
		styles.LabelStyle.Render(s.CostText),
		styles.LabelStyle.Render(" | Total P&L: "),
		styles.SignStyle(s.ProfitPct.IsPositive()).Render(s.ProfitText),
	)
	return styles.FocusedPanelStyle.Width(p.width - 2).Render(line)
}
