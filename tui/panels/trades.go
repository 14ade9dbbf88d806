package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/internal/trader"
	"github.com/zappabad/cryptoterm/tui/styles"
)

// TradesPanel shows the most recent simulated trades, newest last.
type TradesPanel struct {
	trades  []dashboard.TradeLine
	logPath string
	focused bool
	width   int
	height  int
}

// NewTradesPanel creates a new trades panel.
func NewTradesPanel(logPath string) *TradesPanel {
	return &TradesPanel{logPath: logPath}
}

// Init initializes the panel.
func (p *TradesPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *TradesPanel) Update(msg tea.Msg) (*TradesPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *TradesPanel) View() string {
	var content strings.Builder

	if len(p.trades) == 0 {
		content.WriteString(styles.MutedStyle.Render("No trades yet"))
	} else {
		for i, t := range p.trades {
			action := styles.SellStyle.Render(fmt.Sprintf("%-4s", t.Action))
			if t.Action == string(trader.ActionBuy) {
				action = styles.BuyStyle.Render(fmt.Sprintf("%-4s", t.Action))
			}
			line := fmt.Sprintf("%s %s %-5s %s @ %s = %s",
				styles.TimeStyle.Render(t.Time),
				action,
				t.Symbol,
				t.AmountText,
				t.PriceText,
				t.TotalText,
			)
			content.WriteString(line)
			if i < len(p.trades)-1 {
				content.WriteString("\n")
			}
		}
	}

	if p.logPath != "" {
		content.WriteString("\n")
		content.WriteString(styles.MutedStyle.Render("log: " + p.logPath))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🧾 Recent Trades", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *TradesPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TradesPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTrades replaces the displayed trades.
func (p *TradesPanel) SetTrades(trades []dashboard.TradeLine) {
	p.trades = trades
}
