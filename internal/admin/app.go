package admin

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
)

type section int

const (
	sectionGraduates section = iota
	sectionInvitations
)

// App is the root model for the admin program. Before authentication only
// the passcode prompt is reachable; afterwards the dashboard sections are
// tab-switched and share one loaded graduate roster.
type App struct {
	client    *client.Client
	loc       *i18n.Localizer
	adminCode string

	authed      bool
	login       loginModel
	section     section
	graduates   graduatesModel
	invitations invitationsModel
	width       int
	height      int
}

func NewApp(c *client.Client, loc *i18n.Localizer, adminCode string) App {
	return App{
		client:      c,
		loc:         loc,
		adminCode:   adminCode,
		login:       newLoginModel(loc),
		graduates:   newGraduatesModel(c, loc),
		invitations: newInvitationsModel(c, loc),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login, _ = a.login.Update(msg)
		a.graduates, _ = a.graduates.Update(msg)
		a.invitations, _ = a.invitations.Update(msg)
		return a, nil

	case graduatesLoadedMsg:
		var cmd tea.Cmd
		a.graduates, cmd = a.graduates.Update(msg)
		if msg.err == nil {
			a.invitations = a.invitations.setGraduates(msg.graduates)
		}
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.authed {
			return a.handleLoginKey(msg)
		}
		return a.handleKey(msg)
	}

	return a.route(msg)
}

func (a App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		var ok bool
		a.login, ok = a.login.submit(a.adminCode)
		if ok {
			a.authed = true
			return a, a.graduates.load()
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.login, cmd = a.login.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" && !a.editing() {
		if a.section == sectionGraduates {
			a.section = sectionInvitations
		} else {
			a.section = sectionGraduates
		}
		return a, nil
	}
	if msg.String() == "q" && !a.editing() {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	if a.section == sectionGraduates {
		a.graduates, cmd = a.graduates.Update(msg)
	} else {
		a.invitations, cmd = a.invitations.Update(msg)
	}
	return a, cmd
}

// editing reports whether a text field currently owns the keyboard, so
// tab and q keep their typing meaning there.
func (a App) editing() bool {
	if a.section == sectionGraduates {
		return a.graduates.state == gAdding
	}
	return a.invitations.state == ivComposing
}

func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.login, cmd = a.login.Update(msg)
	cmds = append(cmds, cmd)
	a.graduates, cmd = a.graduates.Update(msg)
	cmds = append(cmds, cmd)
	a.invitations, cmd = a.invitations.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if !a.authed {
		return a.login.View()
	}

	var b strings.Builder
	b.WriteString("\n  " + a.renderTabs() + "\n")
	if a.section == sectionGraduates {
		b.WriteString(a.graduates.View())
	} else {
		b.WriteString(a.invitations.View())
	}
	b.WriteString("\n" + a.helpBar() + "\n")
	return b.String()
}

func (a App) renderTabs() string {
	g := tabStyle.Render(a.loc.T("admin.graduates"))
	i := tabStyle.Render(a.loc.T("admin.invitations"))
	if a.section == sectionGraduates {
		g = activeTab.Render(a.loc.T("admin.graduates"))
	} else {
		i = activeTab.Render(a.loc.T("admin.invitations"))
	}
	return g + "   " + i
}

func (a App) helpBar() string {
	entries := []string{helpEntry("tab", "⇄")}
	if a.section == sectionGraduates {
		switch a.graduates.state {
		case gAdding:
			entries = append(entries, helpEntry("enter", "→"), helpEntry("esc", "✕"))
		default:
			entries = append(entries, helpEntry("a", "+"), helpEntry("r", "↻"))
		}
	} else {
		switch a.invitations.state {
		case ivComposing:
			entries = append(entries, helpEntry("ctrl+d", "✓"), helpEntry("esc", "✕"))
		case ivListing:
			entries = append(entries, helpEntry("n", "+"), helpEntry("c", "⎘"), helpEntry("r", "↻"), helpEntry("esc", "←"))
		default:
			entries = append(entries, helpEntry("enter", "→"))
		}
	}
	entries = append(entries, helpEntry("q", "✕"))
	return "  " + strings.Join(entries, "  ")
}

// errorText maps a request failure to status panel text: the server's
// detail verbatim when present, otherwise a localized connectivity line.
func errorText(err error, loc *i18n.Localizer) string {
	if detail := client.Detail(err); detail != "" {
		return detail
	}
	return loc.T("error.connection")
}
