package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// maxBursts caps how many bursts are live at once.
	maxBursts = 6
	// burstLifetime is how long a burst stays on screen before it self-removes.
	burstLifetime = 1200 * time.Millisecond
	// Spawn interval is drawn uniformly from [300ms, 800ms).
	burstBaseInterval = 300 * time.Millisecond
	burstJitter       = 500 * time.Millisecond
	// skyHeight is how many terminal rows the firework strip occupies.
	skyHeight = 3
)

// burstGlyphs are the explosion shapes, one picked per burst.
var burstGlyphs = []string{"✶", "✺", "❋", "✦", "✹"}

// burstSpawnMsg fires when it's time to consider launching a new burst.
type burstSpawnMsg time.Time

// burstExpireMsg removes one burst by its locally generated id.
type burstExpireMsg struct {
	id int
}

// burst is one ephemeral firework explosion.
type burst struct {
	id    int
	col   int // horizontal position, percent of width
	row   int // 0-based row within the sky strip
	color lipgloss.Color
	glyph string
}

// fireworksModel schedules decorative bursts while active. All timing comes
// in as messages and all randomness from the injected source, so behavior is
// deterministic under test. Dropping this model entirely would not affect
// any domain state.
type fireworksModel struct {
	rng    *rand.Rand
	active bool
	bursts []burst
	nextID int
	width  int
}

func newFireworksModel(rng *rand.Rand) fireworksModel {
	return fireworksModel{rng: rng}
}

// start activates the scheduler and queues the first spawn.
func (m fireworksModel) start() (fireworksModel, tea.Cmd) {
	if m.active {
		return m, nil
	}
	m.active = true
	return m, m.scheduleSpawn()
}

// stop deactivates the scheduler and clears all live bursts immediately.
func (m fireworksModel) stop() fireworksModel {
	m.active = false
	m.bursts = nil
	return m
}

func (m fireworksModel) scheduleSpawn() tea.Cmd {
	d := burstBaseInterval + time.Duration(m.rng.Int64N(int64(burstJitter)))
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return burstSpawnMsg(t)
	})
}

func expireCmd(id int) tea.Cmd {
	return tea.Tick(burstLifetime, func(time.Time) tea.Msg {
		return burstExpireMsg{id: id}
	})
}

func (m fireworksModel) Update(msg tea.Msg) (fireworksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case burstSpawnMsg:
		if !m.active {
			return m, nil
		}
		cmds := []tea.Cmd{m.scheduleSpawn()}
		if len(m.bursts) < maxBursts {
			b := m.spawn()
			m.bursts = append(m.bursts, b)
			cmds = append(cmds, expireCmd(b.id))
		}
		return m, tea.Batch(cmds...)

	case burstExpireMsg:
		kept := m.bursts[:0]
		for _, b := range m.bursts {
			if b.id != msg.id {
				kept = append(kept, b)
			}
		}
		m.bursts = kept
		return m, nil
	}
	return m, nil
}

func (m *fireworksModel) spawn() burst {
	id := m.nextID
	m.nextID++
	return burst{
		id:    id,
		col:   5 + m.rng.IntN(90),
		row:   m.rng.IntN(skyHeight),
		color: fireworkPalette[m.rng.IntN(len(fireworkPalette))],
		glyph: burstGlyphs[m.rng.IntN(len(burstGlyphs))],
	}
}

// View renders the sky strip: skyHeight rows with bursts plotted by column.
// Returns empty when inactive so the invitation content reclaims the rows.
func (m fireworksModel) View() string {
	if !m.active {
		return ""
	}
	width := m.width
	if width < 20 {
		width = 20
	}
	rows := make([][]rune, skyHeight)
	styles := make([]map[int]lipgloss.Color, skyHeight)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
		styles[i] = map[int]lipgloss.Color{}
	}
	for _, b := range m.bursts {
		x := b.col * (width - 1) / 100
		rows[b.row][x] = []rune(b.glyph)[0]
		styles[b.row][x] = b.color
	}

	var sb strings.Builder
	for r := 0; r < skyHeight; r++ {
		for x, ch := range rows[r] {
			if color, ok := styles[r][x]; ok {
				sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(ch)))
			} else {
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
