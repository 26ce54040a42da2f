package util

import (
	"sort"

	"github.com/agext/levenshtein"
)

// DefaultSuggestionThreshold caps the edit distance of suggestions
const DefaultSuggestionThreshold = 2

// Distance returns the Levenshtein distance between a and b
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// SuggestionThreshold scales the accepted distance with the token length:
// one edit per three runes, at least 1 and at most max. A max <= 0 disables suggestions.
func SuggestionThreshold(token string, max int) int {
	if max <= 0 {
		return 0
	}
	threshold := len([]rune(token)) / 3
	if threshold < 1 {
		threshold = 1
	}
	if threshold > max {
		threshold = max
	}

	return threshold
}

// Suggest returns the candidates within the threshold of token, closest first.
// Candidates at the same distance keep their given order.
func Suggest(token string, candidates []string, max int) []string {
	threshold := SuggestionThreshold(token, max)
	if threshold == 0 {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}
	var matches []scored
	for _, c := range candidates {
		if d := Distance(token, c); d <= threshold {
			matches = append(matches, scored{name: c, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.name
	}

	return suggestions
}
