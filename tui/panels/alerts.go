package panels

import (
	"strings"

	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/tui/styles"
)

// AlertsPanel lists held assets that are trending down.
type AlertsPanel struct {
	alerts []dashboard.Alert
	width  int
}

// NewAlertsPanel creates a new alerts panel.
func NewAlertsPanel() *AlertsPanel {
	return &AlertsPanel{}
}

// SetAlerts replaces the displayed alerts.
func (p *AlertsPanel) SetAlerts(alerts []dashboard.Alert) {
	p.alerts = alerts
}

// SetSize sets the panel width.
func (p *AlertsPanel) SetSize(width int) {
	p.width = width
}

// View renders the panel.
func (p *AlertsPanel) View() string {
	if len(p.alerts) == 0 {
		return styles.CalmPanelStyle.Width(p.width - 2).Render(styles.BuyStyle.Render("✅ No alerts"))
	}

	lines := make([]string, 0, len(p.alerts)+1)
	lines = append(lines, styles.RenderTitle("⚠️  Alerts", false))
	for _, a := range p.alerts {
		lines = append(lines, styles.AlertStyle.Render("⚠️  "+a.Message))
	}
	return styles.AlertPanelStyle.Width(p.width - 2).Render(strings.Join(lines, "\n"))
}
