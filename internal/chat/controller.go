// Package chat owns the session message log and the request/response
// cycle against the backend chat endpoint. All mutation goes through the
// Controller; the UI renders its state as a pure projection.
package chat

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"firechat/internal/api"
	"firechat/internal/format"
	"firechat/internal/models"
)

// The backend truncates inputs at this length; mirror the guard here so
// oversized pastes don't travel the wire.
const maxMessageLen = 175000

const welcomeMessage = "**Welcome!**\n\n" +
	"I'm your web research assistant. I can:\n" +
	"• 🔍 Search the web\n" +
	"• 🌐 Scrape and extract website content\n" +
	"• 🕷️ Crawl multi-page sites\n\n" +
	"What would you like to know?"

// Controller holds the ordered, append-only message log and drives chat
// exchanges. At most one send is in flight at a time; the flag is the only
// guard needed since the controller lives on the UI event loop.
type Controller struct {
	client   api.AgentClientInterface
	messages []models.Message
	inFlight bool
	lastID   int64
	now      func() time.Time
}

// NewController creates a controller seeded with the welcome bot message.
func NewController(client api.AgentClientInterface) *Controller {
	c := &Controller{
		client: client,
		now:    time.Now,
	}
	c.append(models.RoleBot, welcomeMessage, nil)
	return c
}

// Messages returns a copy of the message log in insertion order.
func (c *Controller) Messages() []models.Message {
	return append([]models.Message(nil), c.messages...)
}

// InFlight reports whether a send is currently outstanding.
func (c *Controller) InFlight() bool {
	return c.inFlight
}

// LastReply returns the content of the most recent bot message.
func (c *Controller) LastReply() string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == models.RoleBot {
			return c.messages[i].Content
		}
	}
	return ""
}

// Begin starts a chat exchange. It trims the input, rejects empty text and
// refuses to start while another send is outstanding. On success it appends
// the user message immediately and returns the outbound text plus the
// serialized prior log to send as history.
func (c *Controller) Begin(text string) (string, []models.HistoryEntry, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || c.inFlight {
		return "", nil, false
	}
	if len(trimmed) > maxMessageLen {
		cut := maxMessageLen
		// Back off to a rune boundary so the cut never splits a character.
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		trimmed = trimmed[:cut]
	}

	// History is the log before this message; the message itself travels
	// in its own field.
	history := make([]models.HistoryEntry, len(c.messages))
	for i, m := range c.messages {
		history[i] = models.HistoryEntryFromMessage(m)
	}

	c.append(models.RoleUser, trimmed, nil)
	c.inFlight = true
	return trimmed, history, true
}

// Resolve completes an exchange with a successful reply: the raw text runs
// through the formatter and lands in the log with the invoked tool names.
func (c *Controller) Resolve(reply *models.ChatReply) {
	c.inFlight = false
	c.append(models.RoleBot, format.Format(reply.Text), reply.ToolNames())
}

// Fail completes an exchange with a category-specific remediation message.
// The error is terminal for this attempt; the user must resend.
func (c *Controller) Fail(err error) {
	c.inFlight = false
	c.append(models.RoleBot, Remediation(err), nil)
}

// Send runs one full exchange synchronously. Used by the one-shot query
// path; the TUI drives Begin/Resolve/Fail itself so the user message shows
// before the reply arrives.
func (c *Controller) Send(ctx context.Context, text string) bool {
	outbound, history, ok := c.Begin(text)
	if !ok {
		return false
	}

	reply, err := c.client.SendChat(ctx, outbound, history)
	if err != nil {
		c.Fail(err)
		return true
	}
	c.Resolve(reply)
	return true
}

// append adds a message to the log with a unique time-based id.
func (c *Controller) append(role models.Role, content string, toolsUsed []string) {
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	c.messages = append(c.messages, models.Message{
		ID:        id,
		Role:      role,
		Content:   content,
		Timestamp: c.now().Format("3:04 PM"),
		ToolsUsed: toolsUsed,
	})
}
