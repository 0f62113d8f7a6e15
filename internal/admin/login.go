package admin

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
)

// loginModel is the passcode prompt shown until the operator authenticates.
// The session flag lives on the App and lasts for the life of the process.
type loginModel struct {
	input   textinput.Model
	loc     *i18n.Localizer
	errText string
	width   int
	height  int
}

func newLoginModel(loc *i18n.Localizer) loginModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()
	return loginModel{input: ti, loc: loc}
}

// submit checks the typed passcode. A mismatch clears the input so the
// operator retypes from scratch.
func (m loginModel) submit(adminCode string) (loginModel, bool) {
	if strings.TrimSpace(m.input.Value()) == adminCode {
		m.errText = ""
		return m, true
	}
	m.errText = m.loc.T("admin.login_error")
	m.input.SetValue("")
	return m, false
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(m.loc.T("admin.login_title")) + "\n\n")
	b.WriteString("  " + labelStyle.Render(m.loc.T("admin.login_prompt")) + "\n")
	b.WriteString("  " + m.input.View() + "\n")
	if m.errText != "" {
		b.WriteString("\n  " + errStyle.Render(m.errText) + "\n")
	}
	return b.String()
}
