package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the THIEP MOI wordmark.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerTitle renders "T H I E P  M O I" as a flowing wave of golden
// light, deep bronze (#5a3a10) to bright gold (#f4d06f), no hue drift.
func renderShimmerTitle(frame int) string {
	const text = "THIEP MOI"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		if text[i] == ' ' {
			out += "  "
			continue
		}
		x := float64(i) / float64(n-1)

		// Flowing phase: one smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep bronze (90, 58, 16) -> bright gold (244, 208, 111)
		r := clampByte(90 + b*(244-90))
		g := clampByte(58 + b*(208-58))
		bl := clampByte(16 + b*(111-16))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles: velvet-and-gold ceremony palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f0e6")).
			Bold(true)

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4af37"))

	brightGoldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f4d06f")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	// Curtain / stage
	curtainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a1212"))

	curtainFringeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4af37"))

	// Code entry
	codeCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f0e6")).
			Bold(true)

	codeEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a4050"))

	// Chat
	chatTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	chatSelfNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4af37")).
				Bold(true)

	chatSelfTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f5f0e6"))

	chatBotNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a78bfa")).
				Bold(true)

	chatErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171")).
			Italic(true)

	chatSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#404858"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4af37"))

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#404858"))

	chatComposingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f5f0e6"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))
)

// fireworkPalette is the set of burst colors, drawn at random per burst.
var fireworkPalette = []lipgloss.Color{
	"#f4d06f", // gold
	"#f87171", // red
	"#60a5fa", // blue
	"#4ade80", // green
	"#c084fc", // violet
	"#f5f0e6", // white
}

// helpEntry renders one "key label" pair for the help bar.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
