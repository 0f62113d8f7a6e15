package admin

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4af37")).Bold(true)
	tabStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeTab     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4af37")).Bold(true).Underline(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + helpStyle.Render(" "+label)
}
