package segment

import (
	"strings"
	"testing"
)

func TestSplit_ShortText(t *testing.T) {
	chunks := Split("short text", 260)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "short text" {
		t.Errorf("expected unchanged text, got %q", chunks[0])
	}
}

func TestSplit_EmptyText(t *testing.T) {
	if chunks := Split("", 260); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
	if chunks := Split("   \n ", 260); len(chunks) != 0 {
		t.Fatalf("expected no chunks for whitespace input, got %d", len(chunks))
	}
}

func TestSplit_PrefersSentenceBoundaries(t *testing.T) {
	text := strings.Repeat("This is a full sentence about something. ", 20)
	chunks := Split(text, 260)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 260 {
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(c))
		}
		if !strings.HasSuffix(c, ".") {
			t.Errorf("chunk %d not cut at sentence boundary: %q", i, c)
		}
	}
}

func TestSplit_LengthInvariant(t *testing.T) {
	texts := []string{
		strings.Repeat("word ", 400),
		strings.Repeat("a", 1000),
		strings.Repeat("Some sentences here! And more? Yes. ", 50),
	}
	for _, limit := range []int{21, 50, 260, 280} {
		for _, text := range texts {
			for i, c := range Split(text, limit) {
				if len(c) > limit {
					t.Errorf("limit %d: chunk %d has %d chars", limit, i, len(c))
				}
			}
		}
	}
}

func TestSplit_CoverageRoundTrip(t *testing.T) {
	text := strings.Repeat("Alpha beta gamma delta. Epsilon zeta eta theta! ", 15)
	chunks := Split(text, 260)

	squash := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	joined := squash(strings.Join(chunks, " "))
	if joined != squash(text) {
		t.Errorf("chunks do not reproduce original content\nwant: %q\ngot:  %q", squash(text), joined)
	}
}

func TestSplit_NoWhitespaceFallsBackToHardCut(t *testing.T) {
	text := strings.Repeat("x", 600)
	chunks := Split(text, 260)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 260 {
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(c))
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("hard-cut chunks do not reassemble the original text")
	}
}

func TestSplit_MultibyteCountsBytes(t *testing.T) {
	// Each sentence is 32 bytes but only 12 runes; the limit applies to
	// bytes, so chunks hold fewer sentences than a rune count would allow.
	text := strings.Trim(strings.Repeat("绝对不错的项目值得看. ", 30), " ")
	chunks := Split(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds limit in bytes: %d", i, len(c))
		}
	}
}
