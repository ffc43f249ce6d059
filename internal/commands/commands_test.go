package commands

import (
	"errors"
	"strings"
	"testing"

	"firechat/internal/models"
	"firechat/internal/tools"
)

func TestToolLines(t *testing.T) {
	d := tools.NewDirectory()
	d.Replace([]string{"firecrawl_search", "firecrawl_scrape"})

	lines := ToolLines(d)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "firecrawl_search") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[0], "🔍") {
		t.Errorf("line 0 missing icon: %q", lines[0])
	}
}

func TestToolLinesFallbackNote(t *testing.T) {
	d := tools.NewDirectory()
	d.ApplyFallback(errors.New("connection refused"))

	lines := ToolLines(d)
	if len(lines) != len(tools.Fallback)+1 {
		t.Fatalf("got %d lines, want %d entries plus a note", len(lines), len(tools.Fallback))
	}
	note := lines[len(lines)-1]
	if !strings.Contains(note, "fallback") || !strings.Contains(note, "connection refused") {
		t.Errorf("note = %q", note)
	}
}

func TestLastBotMessage(t *testing.T) {
	messages := []models.Message{
		{Role: models.RoleBot, Content: "welcome"},
		{Role: models.RoleUser, Content: "question"},
		{Role: models.RoleBot, Content: "answer"},
	}

	if got := lastBotMessage(messages); got.Content != "answer" {
		t.Errorf("Content = %q, want answer", got.Content)
	}

	if got := lastBotMessage(nil); got.Role != models.RoleBot || got.Content != "" {
		t.Errorf("empty log should yield an empty bot message, got %+v", got)
	}
}
