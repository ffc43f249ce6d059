package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"firechat/internal/api"
	"firechat/internal/config"
	"firechat/internal/models"
	"firechat/internal/tools"
)

func newTestModel(client api.AgentClientInterface) Model {
	m := NewChatModel(client, config.DefaultConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestNewChatModelInitialState(t *testing.T) {
	m := NewChatModel(&api.MockAgentClient{}, config.DefaultConfig())

	if m.loading {
		t.Error("model should not start in loading state")
	}
	if !m.toolsLoading {
		t.Error("tool directory load should be pending at startup")
	}
	if m.showTools {
		t.Error("tool panel should start closed")
	}
	if msgs := m.controller.Messages(); len(msgs) != 1 {
		t.Errorf("controller should hold only the welcome message, got %d", len(msgs))
	}
}

func TestToolsLoadedReplacesDirectory(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})

	updated, _ := m.Update(toolsLoadedMsg{names: []string{"a", "b", "c"}})
	m = updated.(Model)

	if m.toolsLoading {
		t.Error("toolsLoading should clear after the fetch lands")
	}
	if m.directory.Count() != 3 {
		t.Errorf("directory count = %d, want 3", m.directory.Count())
	}
	if m.directory.UsingFallback() {
		t.Error("successful fetch should not mark fallback")
	}
}

func TestToolsLoadFailureAppliesFallback(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})

	updated, _ := m.Update(toolsLoadedMsg{err: errors.New("connection refused")})
	m = updated.(Model)

	if !m.directory.UsingFallback() {
		t.Error("failed fetch should fall back to the static list")
	}
	if m.directory.Count() != len(tools.Fallback) {
		t.Errorf("directory count = %d, want %d", m.directory.Count(), len(tools.Fallback))
	}

	// The header and the tool panel both surface the fallback state.
	if !strings.Contains(m.renderHeader(80), "fallback") {
		t.Error("header should flag the fallback directory")
	}
	m.showTools = true
	if !strings.Contains(m.renderToolPanel(), "Backend unreachable") {
		t.Error("tool panel should carry the unreachable note")
	}
}

func TestEnterStartsExchange(t *testing.T) {
	mock := &api.MockAgentClient{ReplyVal: &models.ChatReply{Text: "hi"}}
	m := newTestModel(mock)
	m.textarea.SetValue("what is firecrawl?")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.loading {
		t.Error("send should put the model into loading state")
	}
	if cmd == nil {
		t.Fatal("send should produce commands")
	}
	if m.textarea.Value() != "" {
		t.Error("input should clear after send")
	}

	msgs := m.controller.Messages()
	if len(msgs) != 2 || msgs[1].Role != models.RoleUser {
		t.Errorf("user message should be in the log immediately: %+v", msgs)
	}
}

func TestEnterWhileInFlightIsIgnored(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})
	m.textarea.SetValue("first")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	m.textarea.SetValue("second")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if len(m.controller.Messages()) != 2 {
		t.Error("second enter should be a no-op while a send is outstanding")
	}
}

func TestChatReplyResolvesExchange(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})
	m.textarea.SetValue("question")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	updated, _ = m.Update(chatReplyMsg{reply: &models.ChatReply{
		Text:      "the answer",
		ToolCalls: []models.ToolCall{{Name: "firecrawl_search", ID: "1"}},
	}})
	m = updated.(Model)

	if m.loading {
		t.Error("reply should clear loading state")
	}
	msgs := m.controller.Messages()
	last := msgs[len(msgs)-1]
	if last.Content != "the answer" {
		t.Errorf("reply content = %q", last.Content)
	}
	if len(last.ToolsUsed) != 1 || last.ToolsUsed[0] != "firecrawl_search" {
		t.Errorf("tools used = %v", last.ToolsUsed)
	}
}

func TestChatFailureStaysInteractive(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})
	m.textarea.SetValue("question")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	updated, _ = m.Update(chatFailedMsg{err: errors.New("boom")})
	m = updated.(Model)

	if m.loading {
		t.Error("failure should clear loading state")
	}
	if m.controller.InFlight() {
		t.Error("failure should allow the next send")
	}
	msgs := m.controller.Messages()
	if !strings.Contains(msgs[len(msgs)-1].Content, "Something Went Wrong") {
		t.Errorf("failure should land as a remediation message: %q", msgs[len(msgs)-1].Content)
	}
}

func TestToolPanelToggle(t *testing.T) {
	m := newTestModel(&api.MockAgentClient{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if !m.showTools {
		t.Fatal("ctrl+t should open the tool panel")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.showTools {
		t.Error("esc should close the tool panel")
	}
}

func TestQuitWords(t *testing.T) {
	for _, word := range []string{"exit", "quit", "/exit", "/quit"} {
		m := newTestModel(&api.MockAgentClient{})
		m.textarea.SetValue(word)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("%q should produce a quit command", word)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should quit, got %T", word, cmd())
		}
	}
}

func TestToolsUsedLine(t *testing.T) {
	got := toolsUsedLine([]string{"firecrawl_search", "firecrawl_search"})
	if !strings.HasPrefix(got, "⚙ Tools used: ") {
		t.Errorf("line = %q", got)
	}
	if strings.Count(got, "firecrawl_search") != 2 {
		t.Error("duplicate tool names must be kept")
	}
}
