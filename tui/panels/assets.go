package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/tui/styles"
)

var (
	upKey   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	downKey = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
)

// AssetsPanel displays price, trend, signal, chart and position per asset.
type AssetsPanel struct {
	rows          []dashboard.AssetRow
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewAssetsPanel creates a new assets panel.
func NewAssetsPanel() *AssetsPanel {
	return &AssetsPanel{}
}

// Init initializes the panel.
func (p *AssetsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *AssetsPanel) Update(msg tea.Msg) (*AssetsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, upKey):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, downKey):
			if p.selectedIndex < len(p.rows)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

const rowFormat = "%-5s %14s %-9s %-5s %-20s %10s %9s"

// View renders the panel.
func (p *AssetsPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf(rowFormat, "Coin", "Price", "Trend", "Sig", "Chart (20 ticks)", "Holdings", "P&L")
	content.WriteString(styles.HeaderStyle.Render(header))

	for i, r := range p.rows {
		content.WriteString("\n")

		// Pad plain text first so colored cells keep their column width.
		signal := styles.CategoryStyle(r.SignalCategory).Render(fmt.Sprintf("%-5s", r.Signal))
		pnl := fmt.Sprintf("%9s", r.PnLText)
		if r.HasPosition {
			pnl = styles.SignStyle(r.PnLPct.IsPositive()).Render(pnl)
		}

		line := fmt.Sprintf("%-5s %14s %-9s %s %s %10s %s",
			styles.SymbolStyle.Render(fmt.Sprintf("%-5s", r.Symbol)),
			r.PriceText,
			r.TrendIndicator+" "+r.TrendLabel,
			signal,
			styles.SparklineStyle.Render(fmt.Sprintf("%-20s", r.Sparkline)),
			r.HoldingsText,
			pnl,
		)

		if i == p.selectedIndex && p.focused {
			line = styles.SelectedRowStyle.Render(line)
		}
		content.WriteString(line)
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🚀 Crypto Terminal Dashboard", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *AssetsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *AssetsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRows replaces the displayed rows.
func (p *AssetsPanel) SetRows(rows []dashboard.AssetRow) {
	p.rows = rows
	if p.selectedIndex >= len(p.rows) {
		p.selectedIndex = max(len(p.rows)-1, 0)
	}
}

// SelectedRow returns the currently selected row.
func (p *AssetsPanel) SelectedRow() (dashboard.AssetRow, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.rows) {
		return p.rows[p.selectedIndex], true
	}
	return dashboard.AssetRow{}, false
}
