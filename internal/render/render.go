// Package render turns parsed message blocks into styled terminal output.
// It is display-only: callers keep the raw message content untouched.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"firechat/internal/markup"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7")).
			Bold(true)

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7"))

	boldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))
)

// Message parses a message's content and renders it wrapped to width.
func Message(content string, width int) string {
	return Blocks(markup.Parse(content), width)
}

// Blocks renders a block sequence wrapped to width.
func Blocks(blocks []markup.Block, width int) string {
	if width < 10 {
		width = 10
	}

	var out []string
	for _, block := range blocks {
		switch block.Kind {
		case markup.KindBlank:
			out = append(out, "")
		case markup.KindHeading:
			out = append(out, headingStyle.Width(width).Render(block.Text))
		case markup.KindBullet:
			row := bulletStyle.Render("• ") + inline(block.Text, block.Spans)
			out = append(out, lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row))
		default:
			out = append(out, lipgloss.NewStyle().Width(width).Render(inline(block.Text, block.Spans)))
		}
	}
	return strings.Join(out, "\n")
}

// inline applies emphasis spans to a block's plain text.
func inline(text string, spans []markup.Span) string {
	if len(spans) == 0 {
		return textStyle.Render(text)
	}

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start < pos || span.End > len(text) {
			continue
		}
		if span.Start > pos {
			b.WriteString(textStyle.Render(text[pos:span.Start]))
		}
		b.WriteString(boldStyle.Render(text[span.Start:span.End]))
		pos = span.End
	}
	if pos < len(text) {
		b.WriteString(textStyle.Render(text[pos:]))
	}
	return b.String()
}
