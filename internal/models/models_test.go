package models

import (
	"encoding/json"
	"testing"
)

func TestHistoryEntryFromMessage(t *testing.T) {
	m := Message{
		ID:        42,
		Role:      RoleBot,
		Content:   "hello",
		Timestamp: "3:04 PM",
		ToolsUsed: []string{"firecrawl_search"},
	}

	entry := HistoryEntryFromMessage(m)
	if entry.Type != "bot" {
		t.Errorf("Type = %q, want bot", entry.Type)
	}
	if entry.Content != "hello" {
		t.Errorf("Content = %q, want hello", entry.Content)
	}

	// Only role and content travel on the wire.
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"bot","content":"hello"}` {
		t.Errorf("wire form = %s", data)
	}
}

func TestToolNamesKeepsOrderAndDuplicates(t *testing.T) {
	reply := &ChatReply{
		ToolCalls: []ToolCall{
			{Name: "firecrawl_search", ID: "1"},
			{Name: "firecrawl_scrape", ID: "2"},
			{Name: "firecrawl_search", ID: "3"},
		},
	}

	got := reply.ToolNames()
	want := []string{"firecrawl_search", "firecrawl_scrape", "firecrawl_search"}
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestToolNamesEmpty(t *testing.T) {
	reply := &ChatReply{Text: "no tools"}
	if names := reply.ToolNames(); names != nil {
		t.Errorf("ToolNames = %v, want nil", names)
	}
}

func TestHealthStatusReady(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"healthy", true},
		{"initializing", false},
		{"", false},
	}

	for _, tt := range tests {
		h := &HealthStatus{Status: tt.status}
		if got := h.Ready(); got != tt.want {
			t.Errorf("Ready with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
