package tui

import (
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

type view int

const (
	viewGate view = iota
	viewInvitation
)

// App is the root model for the guest program. It owns the gate and
// invitation views and routes messages between them; the chat overlay
// sits on top of the invitation and keeps its transcript when closed.
type App struct {
	client *client.Client
	loc    *i18n.Localizer
	rng    *rand.Rand

	view       view
	gate       gateModel
	invitation invitationModel
	chat       chatModel
	showChat   bool

	shimmerFrame int
	width        int
	height       int
}

func NewApp(c *client.Client, loc *i18n.Localizer, rng *rand.Rand) App {
	return App{
		client: c,
		loc:    loc,
		rng:    rng,
		gate:   newGateModel(c, loc),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.gate.Init(), shimmerTickCmd())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.gate, _ = a.gate.Update(msg)
		a.invitation, _ = a.invitation.Update(msg)
		a.chat, _ = a.chat.Update(msg)
		return a, nil

	case shimmerTickMsg:
		a.shimmerFrame++
		return a, shimmerTickCmd()

	case verifyResultMsg:
		if msg.err == nil && msg.guest != nil {
			return a.open(*msg.guest)
		}
		var cmd tea.Cmd
		a.gate, cmd = a.gate.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.showChat {
				a.showChat = false
				return a, nil
			}
			if a.view == viewInvitation {
				return a, tea.Quit
			}
		}
		return a.routeKey(msg)
	}

	return a.route(msg)
}

// open swaps the gate for the verified invitation and primes the chat
// overlay with the graduate to talk to.
func (a App) open(guest domain.VerifiedGuest) (tea.Model, tea.Cmd) {
	a.view = viewInvitation
	a.invitation = newInvitationModel(guest, a.loc, a.rng)
	a.invitation.width = a.width
	a.invitation.height = a.height
	a.invitation.fireworks.width = a.width
	a.invitation.reactions.width = a.width
	a.chat = newChatModel(a.client, a.loc, guest.ChatTargetID())
	a.chat.width = a.width
	a.chat.height = a.height
	return a, nil
}

func (a App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showChat {
		var cmd tea.Cmd
		a.chat, cmd = a.chat.Update(msg)
		return a, cmd
	}
	switch a.view {
	case viewGate:
		var cmd tea.Cmd
		a.gate, cmd = a.gate.Update(msg)
		return a, cmd
	case viewInvitation:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter", "c":
			a.showChat = true
			return a, nil
		}
		var cmd tea.Cmd
		a.invitation, cmd = a.invitation.Update(msg)
		return a, cmd
	}
	return a, nil
}

// route forwards non-key messages to every live model. Effect ticks keep
// running underneath the chat overlay, and spinner frames keep arriving
// after the overlay closes mid-request.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.gate, cmd = a.gate.Update(msg)
	cmds = append(cmds, cmd)
	if a.view == viewInvitation {
		a.invitation, cmd = a.invitation.Update(msg)
		cmds = append(cmds, cmd)
		a.chat, cmd = a.chat.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(centerLine(renderShimmerTitle(a.shimmerFrame), a.width) + "\n")

	switch {
	case a.showChat:
		b.WriteString(a.chat.View())
	case a.view == viewGate:
		b.WriteString(a.gate.View())
	default:
		b.WriteString(a.invitation.View())
	}

	b.WriteString("\n" + a.helpBar())
	return b.String()
}

func (a App) helpBar() string {
	switch {
	case a.showChat:
		return helpEntry("enter", a.loc.T("chat.bot")) + "  " + helpEntry("esc", "←")
	case a.view == viewInvitation:
		return strings.Join([]string{
			helpEntry("c", shortLabel(a.loc.T("chat.title"))),
			helpEntry("o", "⌖"),
			helpEntry("1/2/3", strings.Join(reactionEmojis, "")),
			helpEntry("f", "✶"),
			helpEntry("j/k", "↕"),
			helpEntry("q", "✕"),
		}, "  ")
	default:
		return helpEntry("0-9", "······") + "  " + helpEntry("enter", "→") + "  " + helpEntry("ctrl+c", "✕")
	}
}

// shortLabel truncates a label to keep the help bar on one line.
func shortLabel(s string) string {
	r := []rune(s)
	if len(r) > 12 {
		return string(r[:12]) + "…"
	}
	return s
}
