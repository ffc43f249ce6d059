// Package format post-processes raw agent prose into display-friendlier
// text. It is a best-effort cosmetic heuristic, not a structural parser:
// sentence splitting is purely punctuation-based and may mis-segment text
// containing abbreviations or decimal numbers.
package format

import (
	"regexp"
	"strings"
)

// Thresholds below which text is left untouched.
const (
	minLength = 300
	// More than this many sentence-like segments are required.
	minSentences = 3
	// More than this many name tokens are required for list synthesis.
	minTokens = 2
)

const closingLine = "Would you like more details on any of these?"

// namePattern matches tokens resembling website or platform names:
// domain-like strings and CamelCase words.
var namePattern = regexp.MustCompile(
	`\b[A-Za-z0-9-]+\.(?:com|org|net|io|ai|dev|co|app)\b|\b[A-Z][a-z]+(?:[A-Z][A-Za-z]*)+\b`)

// Format restructures a raw reply for display. Text that already carries
// structure (paragraph breaks, bold markers, bullet markers) is returned
// unchanged, as is anything short or with few sentences.
func Format(text string) string {
	if alreadyStructured(text) {
		return text
	}
	if len(text) <= minLength {
		return text
	}

	sentences := SplitSentences(text)
	if len(sentences) <= minSentences {
		return text
	}

	if list, ok := synthesizeList(text, sentences); ok {
		return list
	}
	return splitParagraphs(sentences)
}

// alreadyStructured reports whether the text carries explicit markup.
func alreadyStructured(text string) bool {
	return strings.Contains(text, "\n\n") ||
		strings.Contains(text, "**") ||
		strings.Contains(text, "• ") ||
		strings.HasPrefix(text, "- ") ||
		strings.Contains(text, "\n- ") ||
		strings.HasPrefix(text, "* ") ||
		strings.Contains(text, "\n* ")
}

// SplitSentences cuts text into sentence-like segments on '.', '!' and '?'.
// Each segment keeps its terminal punctuation; surrounding whitespace is
// trimmed and empty segments are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			seg := strings.TrimSpace(text[start : i+1])
			if seg != "" && seg != "." && seg != "!" && seg != "?" {
				sentences = append(sentences, seg)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// synthesizeList turns prose that mentions several platform names into a
// bulleted list, one bullet per detected token. Repeated tokens are not
// deduplicated; every match produces a bullet.
func synthesizeList(text string, sentences []string) (string, bool) {
	tokens := namePattern.FindAllString(text, -1)
	if len(tokens) <= minTokens {
		return "", false
	}

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString("• **")
		b.WriteString(tok)
		b.WriteString("**")
		if body := surroundingSentence(sentences, tok); body != "" {
			b.WriteString(" - ")
			b.WriteString(body)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(closingLine)
	return b.String(), true
}

// surroundingSentence finds the first sentence containing the token and
// returns it with the token substring stripped out.
func surroundingSentence(sentences []string, token string) string {
	for _, s := range sentences {
		if strings.Contains(s, token) {
			return strings.TrimSpace(strings.Replace(s, token, "", 1))
		}
	}
	return ""
}

// splitParagraphs rejoins the sentence list as two paragraphs split at the
// midpoint, separated by a blank line.
func splitParagraphs(sentences []string) string {
	mid := len(sentences) / 2
	first := strings.Join(sentences[:mid], " ")
	second := strings.Join(sentences[mid:], " ")
	return first + "\n\n" + second
}
