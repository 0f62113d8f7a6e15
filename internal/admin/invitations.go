package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

// invitationState is the state machine for the invitations section.
type invitationState int

const (
	ivPicking   invitationState = iota // choosing which graduate
	ivListing                          // codes of the chosen graduate
	ivComposing                        // guest name batch entry
)

// -- messages --

type invitationsLoadedMsg struct {
	invitations []domain.Invitation
	err         error
}

type invitationsCreatedMsg struct {
	invitations []domain.Invitation
	err         error
}

type copiedMsg struct {
	code string
	err  error
}

type invitationsModel struct {
	client *client.Client
	loc    *i18n.Localizer

	graduates   []domain.Graduate
	gradCursor  int
	graduateID  string
	invitations []domain.Invitation
	invCursor   int
	state       invitationState
	names       textarea.Model
	status      string
	width       int
	height      int
}

func newInvitationsModel(c *client.Client, loc *i18n.Localizer) invitationsModel {
	ta := textarea.New()
	ta.SetHeight(6)
	ta.SetWidth(40)
	ta.CharLimit = 2000
	return invitationsModel{client: c, loc: loc, names: ta}
}

// setGraduates shares the roster loaded by the graduates section.
func (m invitationsModel) setGraduates(graduates []domain.Graduate) invitationsModel {
	m.graduates = graduates
	if m.gradCursor >= len(m.graduates) {
		m.gradCursor = 0
	}
	return m
}

func (m invitationsModel) load(graduateID string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		invitations, err := c.ListInvitations(context.Background(), graduateID)
		return invitationsLoadedMsg{invitations: invitations, err: err}
	}
}

func (m invitationsModel) create(graduateID string, guests []string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		invitations, err := c.CreateInvitations(context.Background(), graduateID, guests)
		return invitationsCreatedMsg{invitations: invitations, err: err}
	}
}

// guestNames parses the textarea, one guest per line, blanks dropped.
func guestNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

func (m invitationsModel) Update(msg tea.Msg) (invitationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case invitationsLoadedMsg:
		if msg.err != nil {
			m.invitations = nil
			return m, nil
		}
		m.invitations = msg.invitations
		if m.invCursor >= len(m.invitations) {
			m.invCursor = 0
		}
		return m, nil

	case invitationsCreatedMsg:
		if msg.err != nil {
			m.state = ivComposing
			m.status = errorText(msg.err, m.loc)
			return m, nil
		}
		m.state = ivListing
		m.status = m.loc.TData("admin.created_invitations", map[string]any{"Count": len(msg.invitations)})
		return m, m.load(m.graduateID)

	case copiedMsg:
		if msg.err != nil {
			m.status = errorText(msg.err, m.loc)
		} else {
			m.status = m.loc.TData("admin.copied", map[string]any{"Code": msg.code})
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case ivPicking:
			return m.handlePickKey(msg)
		case ivComposing:
			return m.handleComposeKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	if m.state == ivComposing {
		var cmd tea.Cmd
		m.names, cmd = m.names.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m invitationsModel) handlePickKey(msg tea.KeyMsg) (invitationsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.gradCursor < len(m.graduates)-1 {
			m.gradCursor++
		}
	case "k", "up":
		if m.gradCursor > 0 {
			m.gradCursor--
		}
	case "enter":
		if len(m.graduates) == 0 {
			return m, nil
		}
		m.graduateID = m.graduates[m.gradCursor].ID
		m.state = ivListing
		m.status = m.loc.T("admin.loading")
		return m, m.load(m.graduateID)
	}
	return m, nil
}

func (m invitationsModel) handleListKey(msg tea.KeyMsg) (invitationsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.invCursor < len(m.invitations)-1 {
			m.invCursor++
		}
	case "k", "up":
		if m.invCursor > 0 {
			m.invCursor--
		}
	case "n":
		m.state = ivComposing
		m.status = ""
		m.names.Reset()
		return m, m.names.Focus()
	case "c":
		if m.invCursor < len(m.invitations) {
			code := m.invitations[m.invCursor].Code
			return m, func() tea.Msg {
				return copiedMsg{code: code, err: clipboard.WriteAll(code)}
			}
		}
	case "r":
		return m, m.load(m.graduateID)
	case "esc":
		m.state = ivPicking
		m.status = ""
	}
	return m, nil
}

func (m invitationsModel) handleComposeKey(msg tea.KeyMsg) (invitationsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = ivListing
		m.status = ""
		return m, nil
	case "ctrl+d":
		guests := guestNames(m.names.Value())
		if len(guests) == 0 {
			m.status = m.loc.T("admin.guests_required")
			return m, nil
		}
		m.status = m.loc.T("admin.loading")
		return m, m.create(m.graduateID, guests)
	}
	var cmd tea.Cmd
	m.names, cmd = m.names.Update(msg)
	return m, cmd
}

func (m invitationsModel) View() string {
	var b strings.Builder
	switch m.state {
	case ivPicking:
		m.renderPicker(&b)
	case ivComposing:
		b.WriteString("\n  " + labelStyle.Render(m.loc.T("admin.compose_hint")) + "\n")
		b.WriteString(indent(m.names.View()) + "\n")
	default:
		m.renderCodes(&b)
	}
	if m.status != "" {
		b.WriteString("\n  " + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m invitationsModel) renderPicker(b *strings.Builder) {
	b.WriteString("\n  " + labelStyle.Render(m.loc.T("admin.select_graduate")) + "\n")
	if len(m.graduates) == 0 {
		b.WriteString("  " + dimStyle.Render(m.loc.T("admin.empty_graduates")) + "\n")
		return
	}
	for i, g := range m.graduates {
		if i == m.gradCursor {
			b.WriteString("  " + selectedStyle.Render("▸ "+g.Name) + "\n")
		} else {
			b.WriteString("    " + normalStyle.Render(g.Name) + "\n")
		}
	}
}

func (m invitationsModel) renderCodes(b *strings.Builder) {
	b.WriteString("\n")
	if len(m.invitations) == 0 {
		b.WriteString("  " + dimStyle.Render(m.loc.T("admin.empty_invitations")) + "\n")
		return
	}
	for i, inv := range m.invitations {
		line := fmt.Sprintf("%s  %s", inv.Code, inv.GuestName)
		if i == m.invCursor {
			b.WriteString("  " + selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + normalStyle.Render(line) + "\n")
		}
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
