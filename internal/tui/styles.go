package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("12")
	ColorSuccess = lipgloss.Color("10")
	ColorDanger  = lipgloss.Color("9")
	ColorMuted   = lipgloss.Color("8")
	ColorBorder  = lipgloss.Color("8")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	RefundStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	OwedStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)

// metricCard renders one bordered label/value pair.
func metricCard(label, value string) string {
	content := MetricLabelStyle.Render(label) + "\n" + MetricValueStyle.Render(value)
	return CardStyle.Render(content)
}
