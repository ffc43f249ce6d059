// Package models defines the data types exchanged with the agent backend
// and held in the session message log.
package models

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks messages typed by the user.
	RoleUser Role = "user"
	// RoleBot marks messages produced by the agent.
	RoleBot Role = "bot"
)

// Message is one entry in the session message log. The log is append-only
// for the lifetime of the session; insertion order is display order.
type Message struct {
	ID        int64
	Role      Role
	Content   string
	Timestamp string   // display-only, never used for ordering
	ToolsUsed []string // tool identifiers, only meaningful for bot messages
}

// HistoryEntry is the wire form of a prior message in the chat payload.
// Only the role and content travel; ids and timestamps stay local.
type HistoryEntry struct {
	Type    string `json:"type"` // "user" or "bot"
	Content string `json:"content"`
}

// HistoryEntryFromMessage converts a stored message to its wire form.
func HistoryEntryFromMessage(m Message) HistoryEntry {
	return HistoryEntry{Type: string(m.Role), Content: m.Content}
}
