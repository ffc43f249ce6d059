package markup

import "testing"

func TestParseClassifiesLines(t *testing.T) {
	content := "**Welcome!**\n" +
		"\n" +
		"A plain paragraph line.\n" +
		"• bullet with dot marker\n" +
		"- bullet with dash marker\n" +
		"* bullet with star marker"

	blocks := Parse(content)
	want := []Kind{KindHeading, KindBlank, KindParagraph, KindBullet, KindBullet, KindBullet}

	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}

	if blocks[0].Text != "Welcome!" {
		t.Errorf("heading text = %q, want markers stripped", blocks[0].Text)
	}
	if blocks[3].Text != "bullet with dot marker" {
		t.Errorf("bullet text = %q, want marker stripped", blocks[3].Text)
	}
}

func TestParseHeadingRule(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{"bold pair at end", "Key **Findings**", KindHeading},
		{"whole line bold", "**Results**", KindHeading},
		{"bold at start only", "**Bold** then prose", KindParagraph},
		{"single trailing marker", "Results**", KindParagraph},
		{"no markers", "Results", KindParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.line)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].Kind != tt.want {
				t.Errorf("kind = %v, want %v", blocks[0].Kind, tt.want)
			}
		})
	}
}

func TestParseBulletCarriesSpans(t *testing.T) {
	blocks := Parse("• **Tavily** - a search API")
	if len(blocks) != 1 || blocks[0].Kind != KindBullet {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
	b := blocks[0]
	if b.Text != "Tavily - a search API" {
		t.Errorf("text = %q", b.Text)
	}
	if len(b.Spans) != 1 || b.Spans[0] != (Span{Start: 0, End: 6}) {
		t.Errorf("spans = %+v, want one span over Tavily", b.Spans)
	}
}

func TestExtractSpans(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantText  string
		wantSpans []Span
	}{
		{"no markers", "plain text", "plain text", nil},
		{"single pair", "a **b** c", "a b c", []Span{{2, 3}}},
		{"two pairs", "a **b** c **d**", "a b c d", []Span{{2, 3}, {6, 7}}},
		{"whole string", "**Welcome!**", "Welcome!", []Span{{0, 8}}},
		{"unmatched trailing marker kept", "a **b", "a **b", nil},
		{"empty pair", "a **** b", "a  b", []Span{{2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, spans := ExtractSpans(tt.in)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if len(spans) != len(tt.wantSpans) {
				t.Fatalf("spans = %+v, want %+v", spans, tt.wantSpans)
			}
			for i := range spans {
				if spans[i] != tt.wantSpans[i] {
					t.Errorf("span %d = %+v, want %+v", i, spans[i], tt.wantSpans[i])
				}
			}
		})
	}
}

func TestParseNeverInjectsMarkers(t *testing.T) {
	// Marker pairs must never survive into block text.
	for _, content := range []string{
		"**Request Timeout**\n\nTry again.\n• **resend** now",
		"mixed **bold** prose",
	} {
		for _, b := range Parse(content) {
			if b.Kind == KindBlank {
				continue
			}
			if containsPair(b.Text) {
				t.Errorf("block text still carries marker pair: %q", b.Text)
			}
		}
	}
}

func containsPair(s string) bool {
	text, spans := ExtractSpans(s)
	return text != s || spans != nil
}
