package filter

import "strings"

// MatchesKeyword reports whether text contains any vocabulary entry,
// case-insensitively. This is plain substring containment with no word
// boundaries: "DeFi" matches inside "DeFiance". That permissiveness is
// deliberate and relied on by the comment pass.
func MatchesKeyword(text string, vocabulary []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range vocabulary {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
