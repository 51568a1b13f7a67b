// Package segment splits long generated content into platform-sized chunks
// while keeping sentences intact where possible.
package segment

import "strings"

// safetyMargin keeps each cut well inside the limit so a chunk still fits
// after downstream trimming (URLs, emojis).
const safetyMargin = 20

var sentenceEndings = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// Split breaks text into ordered chunks of at most limit bytes each. Lengths
// are byte counts, not runes, so multi-byte text splits earlier than a
// character count would; no chunk ever exceeds the limit. Chunks are cut at
// the last sentence ending before the limit, falling back to the last word
// boundary, then to a hard cut. Every chunk is trimmed. Empty input yields no
// chunks.
func Split(text string, limit int) []string {
	chunks := []string{}
	remaining := strings.TrimSpace(text)

	for remaining != "" {
		if len(remaining) <= limit {
			chunks = append(chunks, remaining)
			break
		}

		cut := findBoundary(remaining, limit)
		if cut <= 0 {
			cut = min(limit-safetyMargin, len(remaining))
		}
		if cut <= 0 {
			// Degenerate limit; cut at the limit itself rather than loop.
			cut = min(limit, len(remaining))
		}

		chunks = append(chunks, strings.TrimSpace(remaining[:cut]))
		remaining = strings.TrimSpace(remaining[cut:])
	}

	// Defensive post-pass: force-split anything that still exceeds the limit.
	for i := 0; i < len(chunks); i++ {
		if len(chunks[i]) <= limit {
			continue
		}
		first := strings.TrimSpace(chunks[i][:limit-safetyMargin])
		rest := strings.TrimSpace(chunks[i][limit-safetyMargin:])
		chunks[i] = first
		chunks = append(chunks[:i+1], append([]string{rest}, chunks[i+1:]...)...)
	}

	return chunks
}

// findBoundary returns the index to cut text at so the chunk stays within
// maxLen. Prefers the position just after a sentence ending, then the last
// space, then a hard position with the safety margin applied.
func findBoundary(text string, maxLen int) int {
	if len(text) <= maxLen {
		return len(text)
	}

	safeMax := min(maxLen-safetyMargin, len(text))
	bestSplit := 0

	for i := safeMax; i > 0; i-- {
		if i+1 <= len(text) {
			for _, ending := range sentenceEndings {
				if text[i-1:i+1] == ending {
					return i
				}
			}
		}
		if bestSplit == 0 && text[i] == ' ' {
			bestSplit = i
		}
	}

	if bestSplit > 0 {
		return bestSplit
	}
	return min(maxLen-safetyMargin, len(text))
}
