package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/cryptoterm/internal/analysis"
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#22D3EE") // Cyan
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	BuyColor     = lipgloss.Color("#10B981") // Green
	SellColor    = lipgloss.Color("#EF4444") // Red
	HoldColor    = lipgloss.Color("#EAB308") // Yellow
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#22D3EE")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Alert panel styles
	AlertPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)

	CalmPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BuyColor).
			Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Header row style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	// Row styles
	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Text styles
var (
	BuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BuyColor)

	SellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SellColor)

	HoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HoldColor)

	SymbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	SparklineStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	AlertStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor).Underline(true)
	}
	return style.Render(title)
}

// CategoryStyle maps a value tone to its text style.
func CategoryStyle(c analysis.Category) lipgloss.Style {
	switch c {
	case analysis.CategoryPositive:
		return BuyStyle
	case analysis.CategoryNegative:
		return SellStyle
	default:
		return HoldStyle
	}
}

// SignStyle colors a number by sign: green above zero, red otherwise.
func SignStyle(positive bool) lipgloss.Style {
	if positive {
		return BuyStyle
	}
	return SellStyle
}
