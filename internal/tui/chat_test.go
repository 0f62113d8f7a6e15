package tui

import (
	"strings"
	"testing"

	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

func newTestChatModel(graduateID string) chatModel {
	m := newChatModel(client.New("http://localhost:0"), testLocalizer(), graduateID)
	m.width = 60
	m.height = 20
	return m
}

func TestChatOpensWithGreeting(t *testing.T) {
	m := newTestChatModel("g1")
	if len(m.messages) != 1 {
		t.Fatalf("expected one seeded message, got %d", len(m.messages))
	}
	if m.messages[0].Sender != domain.SenderBot {
		t.Error("expected the greeting to come from the assistant")
	}
	if !strings.Contains(m.View(), m.loc.T("chat.greeting")) {
		t.Errorf("expected greeting in view, got:\n%s", m.View())
	}
}

func TestChatSubmitAppendsUserMessageAndSends(t *testing.T) {
	m := newTestChatModel("g1")
	for _, r := range "hello" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if !m.waiting {
		t.Error("expected chat in waiting state")
	}
	if m.input != "" {
		t.Errorf("expected input cleared, got %q", m.input)
	}
	last := m.messages[len(m.messages)-1]
	if last.Sender != domain.SenderUser || last.Text != "hello" {
		t.Errorf("expected user message 'hello' appended, got %+v", last)
	}
}

func TestChatBlankInputIgnored(t *testing.T) {
	m := newTestChatModel("g1")
	m.input = "   "
	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("expected blank input not to send")
	}
	if len(m.messages) != 1 {
		t.Errorf("expected transcript unchanged, got %d messages", len(m.messages))
	}
}

func TestChatSubmitLockedWhileWaiting(t *testing.T) {
	m := newTestChatModel("g1")
	m.waiting = true
	m.input = "second question"
	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("expected enter ignored while waiting")
	}
	if m.input != "second question" {
		t.Error("expected input kept while locked")
	}
}

func TestChatReplyAppended(t *testing.T) {
	m := newTestChatModel("g1")
	m.waiting = true
	m, _ = m.Update(chatSendResultMsg{text: "Chào bạn!"})
	if m.waiting {
		t.Error("expected waiting cleared")
	}
	last := m.messages[len(m.messages)-1]
	if last.Sender != domain.SenderBot || last.IsError {
		t.Errorf("expected a normal assistant reply, got %+v", last)
	}
	if !strings.Contains(m.View(), "Chào bạn!") {
		t.Errorf("expected reply in view, got:\n%s", m.View())
	}
}

func TestChatErrorReplyMarked(t *testing.T) {
	m := newTestChatModel("g1")
	m.waiting = true
	m, _ = m.Update(chatSendResultMsg{err: &client.HTTPError{StatusCode: 500}})
	last := m.messages[len(m.messages)-1]
	if !last.IsError {
		t.Error("expected an error-flagged message")
	}
	if last.Text != m.loc.T("chat.error") {
		t.Errorf("expected fallback error text, got %q", last.Text)
	}
}

func TestChatErrorDetailShownVerbatim(t *testing.T) {
	m := newTestChatModel("g1")
	m.waiting = true
	m, _ = m.Update(chatSendResultMsg{err: &client.HTTPError{StatusCode: 429, Detail: "Quá nhiều yêu cầu"}})
	last := m.messages[len(m.messages)-1]
	if last.Text != "Quá nhiều yêu cầu" {
		t.Errorf("expected server detail verbatim, got %q", last.Text)
	}
}

func TestChatMissingIDAnswersLocally(t *testing.T) {
	m := newTestChatModel("")
	m.input = "ai đó ơi"
	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("expected a delayed local reply command")
	}
	if !m.waiting {
		t.Error("expected waiting state while the delay runs")
	}
	m, _ = m.Update(chatMissingIDMsg{})
	last := m.messages[len(m.messages)-1]
	if last.Sender != domain.SenderBot || last.Text != m.loc.T("chat.missing_id") {
		t.Errorf("expected the canned missing-id reply, got %+v", last)
	}
	if !last.IsError {
		t.Error("expected the missing-id reply flagged as an error")
	}
	if m.waiting {
		t.Error("expected waiting cleared after the canned reply")
	}
}

func TestChatViewShowsPlaceholderWhenEmpty(t *testing.T) {
	m := newTestChatModel("g1")
	if !strings.Contains(m.View(), m.loc.T("chat.placeholder")) {
		t.Errorf("expected placeholder in view, got:\n%s", m.View())
	}
}
