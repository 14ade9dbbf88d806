package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/cryptoterm/internal/dashboard"
	"github.com/zappabad/cryptoterm/tui/panels"
	"github.com/zappabad/cryptoterm/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusAssets PanelFocus = 0
	FocusTrades PanelFocus = 1

	panelCount = 2
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Up, k.Down}, {k.Quit}}
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// modelMsg carries a freshly composed frame from the refresh loop.
type modelMsg struct {
	model dashboard.RenderModel
}

// streamClosedMsg is sent once the refresh loop stops publishing.
type streamClosedMsg struct{}

// Model is the main TUI application model.
type Model struct {
	models <-chan dashboard.RenderModel
	onQuit func()

	// Panels
	assetsPanel  *panels.AssetsPanel
	summaryPanel *panels.SummaryPanel
	alertsPanel  *panels.AlertsPanel
	tradesPanel  *panels.TradesPanel

	help help.Model

	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	current dashboard.RenderModel
	frames  int
	ready   bool
}

// NewModel creates a TUI model that renders frames received on models.
// onQuit is invoked when the user asks to quit; it may be nil.
func NewModel(models <-chan dashboard.RenderModel, logPath string, onQuit func()) *Model {
	m := &Model{
		models:       models,
		onQuit:       onQuit,
		assetsPanel:  panels.NewAssetsPanel(),
		summaryPanel: panels.NewSummaryPanel(),
		alertsPanel:  panels.NewAlertsPanel(),
		tradesPanel:  panels.NewTradesPanel(logPath),
		help:         help.New(),
		focusedPanel: FocusAssets,
	}
	m.applyFocus()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.assetsPanel.Init(),
		m.tradesPanel.Init(),
		m.listen(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if m.onQuit != nil {
				m.onQuit()
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Tab):
			m.cycleFocus()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case modelMsg:
		m.apply(msg.model)
		cmds = append(cmds, m.listen())

	case streamClosedMsg:
		return m, tea.Quit
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusAssets:
		m.assetsPanel, cmd = m.assetsPanel.Update(msg)
	case FocusTrades:
		m.tradesPanel, cmd = m.tradesPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.frames == 0 {
		return "Waiting for market data..."
	}

	// Layout:
	// ┌──────────────────────────────────┐
	// │            Assets                │
	// ├──────────────────────────────────┤
	// │            Summary               │
	// ├──────────────────────────────────┤
	// │            Alerts                │
	// ├──────────────────────────────────┤
	// │          Recent trades           │
	// └──────────────────────────────────┘
	m.assetsPanel.SetSize(m.width, len(m.current.Rows)+3)
	m.summaryPanel.SetSize(m.width)
	m.alertsPanel.SetSize(m.width)
	m.tradesPanel.SetSize(m.width, len(m.current.RecentTrades)+3)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.assetsPanel.View(),
		m.summaryPanel.View(),
		m.alertsPanel.View(),
		m.tradesPanel.View(),
		m.renderStatusBar(),
	)
}

func (m *Model) renderStatusBar() string {
	updated := fmt.Sprintf("tick %d │ updated %s", m.current.Tick, m.current.UpdatedAt.Format("15:04:05"))
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.help.View(keys),
		styles.StatusBarDescStyle.Render(" │ "+updated),
	)
	return styles.StatusBarStyle.Width(m.width).Render(bar)
}

func (m *Model) apply(rm dashboard.RenderModel) {
	m.current = rm
	m.frames++
	m.assetsPanel.SetRows(rm.Rows)
	m.summaryPanel.SetSummary(rm.Summary)
	m.alertsPanel.SetAlerts(rm.Alerts)
	m.tradesPanel.SetTrades(rm.RecentTrades)
}

func (m *Model) cycleFocus() {
	m.focusedPanel = (m.focusedPanel + 1) % panelCount
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.assetsPanel.SetFocus(m.focusedPanel == FocusAssets)
	m.tradesPanel.SetFocus(m.focusedPanel == FocusTrades)
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		rm, ok := <-m.models
		if !ok {
			return streamClosedMsg{}
		}
		return modelMsg{model: rm}
	}
}

// Run starts the full-screen program and blocks until the user quits,
// the model stream closes, or ctx is cancelled. Interrupts are delivered
// through ctx, so an interrupted program is not an error.
func Run(ctx context.Context, models <-chan dashboard.RenderModel, logPath string, onQuit func(), opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, opts...)
	p := tea.NewProgram(NewModel(models, logPath, onQuit), opts...)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
