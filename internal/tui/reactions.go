package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// Batch size per tap is drawn uniformly from [3, 7].
	reactionBatchMin = 3
	reactionBatchMax = 7
	// reactionFrameInterval is the particle animation frame rate.
	reactionFrameInterval = 120 * time.Millisecond
)

// reactionEmojis are the emoji hotkeys available on the invitation view,
// in keybinding order (1, 2, 3).
var reactionEmojis = []string{"🎉", "❤️", "🎓"}

// reactionFrameMsg advances all live particles by one frame.
type reactionFrameMsg time.Time

func reactionFrameCmd() tea.Cmd {
	return tea.Tick(reactionFrameInterval, func(t time.Time) tea.Msg {
		return reactionFrameMsg(t)
	})
}

// particle is one floating emoji. It lives for a randomized number of
// frames and is removed when its animation completes, not by wall clock.
type particle struct {
	id    int
	emoji string
	col   int // horizontal position, percent of width
	frame int
	life  int // frames until removal
}

type reactionModel struct {
	rng       *rand.Rand
	particles []particle
	nextID    int
	width     int
}

func newReactionModel(rng *rand.Rand) reactionModel {
	return reactionModel{rng: rng}
}

// tap spawns a random-sized batch of particles for one emoji press.
// Starts the frame ticker if nothing was animating before.
func (m reactionModel) tap(emoji string) (reactionModel, tea.Cmd) {
	wasEmpty := len(m.particles) == 0
	n := reactionBatchMin + m.rng.IntN(reactionBatchMax-reactionBatchMin+1)
	for i := 0; i < n; i++ {
		m.particles = append(m.particles, particle{
			id:    m.nextID,
			emoji: emoji,
			col:   m.rng.IntN(100),
			life:  6 + m.rng.IntN(6),
		})
		m.nextID++
	}
	if wasEmpty {
		return m, reactionFrameCmd()
	}
	return m, nil
}

func (m reactionModel) Update(msg tea.Msg) (reactionModel, tea.Cmd) {
	if _, ok := msg.(reactionFrameMsg); !ok {
		return m, nil
	}
	kept := m.particles[:0]
	for _, p := range m.particles {
		p.frame++
		if p.frame < p.life {
			kept = append(kept, p)
		}
	}
	m.particles = kept
	if len(m.particles) > 0 {
		return m, reactionFrameCmd()
	}
	return m, nil
}

// View renders one floating line; particles drift upward by fading style as
// their animation progresses. Empty when nothing is live.
func (m reactionModel) View() string {
	if len(m.particles) == 0 {
		return ""
	}
	width := m.width
	if width < 20 {
		width = 20
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	for _, p := range m.particles {
		x := p.col * (width - 2) / 100
		if p.frame > p.life/2 {
			cells[x] = dimStyle.Render("·")
			continue
		}
		cells[x] = p.emoji
	}
	return strings.Join(cells, "")
}
