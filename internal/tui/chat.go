package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lamvt/thiepmoi/internal/i18n"
	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

// missingIDDelay spaces out the canned reply so it reads like a real
// round trip when no graduate id is available to chat with.
const missingIDDelay = 500 * time.Millisecond

// chatSendResultMsg carries the assistant's reply, or the send failure.
type chatSendResultMsg struct {
	text string
	err  error
}

// chatMissingIDMsg delivers the delayed canned reply when the verified
// invitation had no graduate id to address.
type chatMissingIDMsg struct{}

// chatModel is the assistant overlay. Its transcript survives the overlay
// being closed and reopened.
type chatModel struct {
	client     *client.Client
	loc        *i18n.Localizer
	graduateID string
	messages   []domain.ChatMessage
	input      string
	waiting    bool
	spin       spinner.Model
	width      int
	height     int
}

func newChatModel(c *client.Client, loc *i18n.Localizer, graduateID string) chatModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return chatModel{
		client:     c,
		loc:        loc,
		graduateID: graduateID,
		messages:   []domain.ChatMessage{domain.NewBotMessage(loc.T("chat.greeting"))},
		spin:       sp,
	}
}

func (m chatModel) send(text string) tea.Cmd {
	c := m.client
	id := m.graduateID
	return func() tea.Msg {
		reply, err := c.Chat(context.Background(), id, text)
		return chatSendResultMsg{text: reply, err: err}
	}
}

func missingIDCmd() tea.Cmd {
	return tea.Tick(missingIDDelay, func(time.Time) tea.Msg {
		return chatMissingIDMsg{}
	})
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case chatSendResultMsg:
		m.waiting = false
		if msg.err != nil {
			text := client.Detail(msg.err)
			if text == "" {
				text = m.loc.T("chat.error")
			}
			m.messages = append(m.messages, domain.NewBotError(text))
		} else {
			m.messages = append(m.messages, domain.NewBotMessage(msg.text))
		}
		return m, nil

	case chatMissingIDMsg:
		m.waiting = false
		m.messages = append(m.messages, domain.NewBotError(m.loc.T("chat.missing_id")))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		default:
			m.input = editRune(m.input, msg.String())
			return m, nil
		}
	}
	return m, nil
}

func (m chatModel) submit() (chatModel, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	text := strings.TrimSpace(m.input)
	if text == "" {
		return m, nil
	}
	m.messages = append(m.messages, domain.NewUserMessage(text))
	m.input = ""
	m.waiting = true
	if m.graduateID == "" {
		// No one to ask: answer locally with a short delay, no request.
		return m, missingIDCmd()
	}
	return m, tea.Batch(m.send(text), m.spin.Tick)
}

func (m chatModel) View() string {
	width := m.width
	if width < 30 {
		width = 30
	}
	bodyWidth := width - 4

	var b strings.Builder
	b.WriteString(chatSepStyle.Render(strings.Repeat("─", width)) + "\n")
	b.WriteString(goldStyle.Render("  "+m.loc.T("chat.title")) + "\n")
	b.WriteString(chatSepStyle.Render(strings.Repeat("─", width)) + "\n")

	for _, msg := range m.messages {
		b.WriteString(m.renderMessage(msg, bodyWidth))
	}

	if m.waiting {
		b.WriteString("  " + m.spin.View() + chatComposingStyle.Render(m.loc.T("chat.bot")+"...") + "\n")
	}

	b.WriteString(chatSepStyle.Render(strings.Repeat("─", width)) + "\n")
	b.WriteString(inputPromptStyle.Render("  > "))
	if m.input == "" {
		b.WriteString(inputPlaceholderStyle.Render(m.loc.T("chat.placeholder")))
	} else {
		b.WriteString(chatTextStyle.Render(m.input))
	}
	b.WriteString("\n")
	return b.String()
}

func (m chatModel) renderMessage(msg domain.ChatMessage, width int) string {
	var name, body string
	switch {
	case msg.Sender == domain.SenderUser:
		name = chatSelfNameStyle.Render(m.loc.T("chat.you"))
		body = chatSelfTextStyle.Render(hardWrap(msg.Text, width))
	case msg.IsError:
		name = chatBotNameStyle.Render(m.loc.T("chat.bot"))
		body = chatErrStyle.Render(hardWrap(msg.Text, width))
	default:
		name = chatBotNameStyle.Render(m.loc.T("chat.bot"))
		body = chatTextStyle.Render(hardWrap(msg.Text, width))
	}
	var b strings.Builder
	b.WriteString("  " + name + "\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
