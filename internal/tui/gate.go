package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

const (
	// curtainFrames is how many animation frames the velvet curtain takes
	// to slide open before the code form appears.
	curtainFrames   = 14
	curtainInterval = 120 * time.Millisecond
)

// curtainTickMsg advances the opening animation by one frame.
type curtainTickMsg time.Time

func curtainTickCmd() tea.Cmd {
	return tea.Tick(curtainInterval, func(t time.Time) tea.Msg {
		return curtainTickMsg(t)
	})
}

// verifyResultMsg carries the outcome of a code verification request.
// The root App intercepts the success case to swap views.
type verifyResultMsg struct {
	guest *domain.VerifiedGuest
	err   error
}

// gateModel is the invitation code entry screen.
type gateModel struct {
	client    *client.Client
	loc       *i18n.Localizer
	code      string
	errText   string
	verifying bool
	curtain   int // animation progress, 0..curtainFrames
	width     int
	height    int
}

func newGateModel(c *client.Client, loc *i18n.Localizer) gateModel {
	return gateModel{client: c, loc: loc}
}

func (m gateModel) Init() tea.Cmd {
	return curtainTickCmd()
}

func (m gateModel) opened() bool {
	return m.curtain >= curtainFrames
}

// verify submits the code. Callers guarantee it already passed ValidCode.
func (m gateModel) verify(code string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		guest, err := c.VerifyInvitation(context.Background(), code)
		return verifyResultMsg{guest: guest, err: err}
	}
}

func (m gateModel) Update(msg tea.Msg) (gateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case curtainTickMsg:
		if m.curtain < curtainFrames {
			m.curtain++
			return m, curtainTickCmd()
		}
		return m, nil

	case verifyResultMsg:
		// Success is handled by the App; only failures reach this model.
		m.verifying = false
		if msg.err != nil {
			m.errText = verifyErrText(msg.err, m.loc)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.opened() {
			// Any key skips the curtain.
			m.curtain = curtainFrames
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		default:
			m.code = editDigits(m.code, msg.String(), domain.CodeLength)
			if m.errText != "" {
				m.errText = ""
			}
			return m, nil
		}
	}
	return m, nil
}

func (m gateModel) submit() (gateModel, tea.Cmd) {
	if m.verifying {
		return m, nil
	}
	code := strings.TrimSpace(m.code)
	if !domain.ValidCode(code) {
		m.errText = m.loc.T("error.invalid_code")
		return m, nil
	}
	m.errText = ""
	m.verifying = true
	return m, m.verify(code)
}

// verifyErrText maps a verification error to user-facing text. The server's
// detail is shown verbatim when present; otherwise application errors get the
// generic rejection and transport errors the connectivity message.
func verifyErrText(err error, loc *i18n.Localizer) string {
	if detail := client.Detail(err); detail != "" {
		return detail
	}
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return loc.T("error.verify_fallback")
	}
	return loc.T("error.connection")
}

func (m gateModel) View() string {
	if !m.opened() {
		return m.renderCurtain()
	}

	var b strings.Builder
	top := m.height/2 - 6
	padLines(top, &b)

	b.WriteString(centerLine(brightGoldStyle.Render(m.loc.T("gate.event")), m.width) + "\n")
	b.WriteString(centerLine(dimStyle.Render(m.loc.T("gate.tagline")), m.width) + "\n\n")
	b.WriteString(centerLine(selectedStyle.Render(m.loc.T("gate.title")), m.width) + "\n")
	b.WriteString(centerLine(metaStyle.Render(m.loc.T("gate.subtitle")), m.width) + "\n\n")
	b.WriteString(centerLine(m.renderCodeCells(), m.width) + "\n")

	switch {
	case m.verifying:
		b.WriteString("\n" + centerLine(dimStyle.Render("..."), m.width) + "\n")
	case m.errText != "":
		b.WriteString("\n" + centerLine(errStyle.Render(m.errText), m.width) + "\n")
	}

	return b.String()
}

// renderCodeCells draws the six code slots, typed digits first.
func (m gateModel) renderCodeCells() string {
	var cells []string
	for i := 0; i < domain.CodeLength; i++ {
		if i < len(m.code) {
			cells = append(cells, codeCellStyle.Render(string(m.code[i])))
		} else {
			cells = append(cells, codeEmptyStyle.Render("_"))
		}
	}
	left := curtainFringeStyle.Render("❖ ")
	right := curtainFringeStyle.Render(" ❖")
	return left + strings.Join(cells, " ") + right
}

// renderCurtain draws two velvet halves sliding apart, with the stage
// message revealed in the widening gap.
func (m gateModel) renderCurtain() string {
	width := m.width
	if width < 20 {
		width = 20
	}
	height := m.height
	if height < 6 {
		height = 6
	}

	gap := width * m.curtain / curtainFrames
	side := (width - gap) / 2

	var b strings.Builder
	msgRow := height / 2
	for row := 0; row < height-1; row++ {
		panel := curtainStyle.Render(strings.Repeat("█", side))
		middle := strings.Repeat(" ", width-2*side)
		if row == msgRow && gap > 0 {
			middle = centerLine(dimStyle.Render(m.loc.T("gate.preparing")), width-2*side)
		}
		b.WriteString(panel + middle + panel + "\n")
	}
	// Gold fringe along the bottom edge.
	b.WriteString(curtainFringeStyle.Render(strings.Repeat("▚", width)))
	return b.String()
}
