// Package markup parses the lightweight inline markup carried in message
// content into a typed sequence of display blocks. Parsing is pure: the
// stored message content is never mutated, and rendering never injects
// marker strings back into output.
package markup

import "strings"

// Kind discriminates the block variants a message line can produce.
type Kind int

const (
	// KindBlank renders as vertical spacing, not text.
	KindBlank Kind = iota
	// KindParagraph is a plain text line with optional emphasis spans.
	KindParagraph
	// KindBullet is a list row introduced by a bullet marker.
	KindBullet
	// KindHeading is a line that both contains and ends with a bold pair.
	KindHeading
)

// Span marks an emphasized byte range within a block's text.
type Span struct {
	Start int
	End   int
}

// Block is one display unit: plain text plus its emphasis spans.
type Block struct {
	Kind  Kind
	Text  string
	Spans []Span
}

// Bullet markers recognized at the start of a line.
var bulletPrefixes = []string{"• ", "- ", "* "}

// Parse splits content on explicit line breaks and classifies each line.
func Parse(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: KindBlank})

		case bulletBody(trimmed) != "":
			text, spans := ExtractSpans(bulletBody(trimmed))
			blocks = append(blocks, Block{Kind: KindBullet, Text: text, Spans: spans})

		case isHeading(trimmed):
			// Headings are styled as a whole; inline spans are dropped.
			text, _ := ExtractSpans(trimmed)
			blocks = append(blocks, Block{Kind: KindHeading, Text: text})

		default:
			text, spans := ExtractSpans(trimmed)
			blocks = append(blocks, Block{Kind: KindParagraph, Text: text, Spans: spans})
		}
	}
	return blocks
}

// bulletBody returns the line body after its bullet marker, or "" when the
// line is not a bullet row.
func bulletBody(line string) string {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

// isHeading reports whether the line contains a bold pair and ends with one.
func isHeading(line string) bool {
	return strings.HasSuffix(line, "**") && strings.Count(line, "**") >= 2
}

// ExtractSpans strips **...** pairs from s, returning the plain text and
// the byte ranges that were emphasized. An unmatched trailing marker is
// left in the text verbatim.
func ExtractSpans(s string) (string, []Span) {
	var b strings.Builder
	var spans []Span

	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "**")
		if end < 0 {
			break
		}

		b.WriteString(s[:open])
		start := b.Len()
		b.WriteString(s[open+2 : open+2+end])
		spans = append(spans, Span{Start: start, End: b.Len()})
		s = s[open+2+end+2:]
	}
	b.WriteString(s)
	return b.String(), spans
}
