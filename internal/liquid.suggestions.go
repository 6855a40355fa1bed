package internal

import (
	"sort"
	"strings"
)

// Suggestion tuning; the allowed edits grow with the length of the name
const (
	shortNameLen     = 3 // Names up to this length allow one edit
	mediumNameLen    = 6 // Names up to this length allow two edits
	longNameEditsDiv = 3 // Longer names allow one edit per this many runes
	minPrefixLen     = 2 // Shortest target that can match as a prefix
)

// FindSimilarStrings returns up to maxSuggestions candidates that look like a
// mistyped target, closest first. A candidate matches when its edit distance
// (case-insensitive, adjacent swaps count once) is within editBudget, or when
// it starts with the target. Ties keep candidate order.
func FindSimilarStrings(target string, candidates []string, maxSuggestions int) []string {
	if len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	want := []rune(strings.ToLower(target))
	budget := editBudget(len(want))

	type match struct {
		name     string
		distance int
	}
	var matches []match

	for _, candidate := range candidates {
		have := []rune(strings.ToLower(candidate))
		dist := editDistance(want, have)
		if dist <= budget || isTypedPrefix(want, have) {
			matches = append(matches, match{name: candidate, distance: dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.name
	}
	return result
}

// editBudget is the largest edit distance still treated as a typo of a name with n runes
func editBudget(n int) int {
	switch {
	case n <= shortNameLen:
		return 1
	case n <= mediumNameLen:
		return 2
	default:
		return n / longNameEditsDiv
	}
}

// isTypedPrefix reports whether want is a proper prefix of have ("com" for "comment")
func isTypedPrefix(want, have []rune) bool {
	if len(want) < minPrefixLen || len(want) >= len(have) {
		return false
	}
	return string(have[:len(want)]) == string(want)
}

// editDistance is the optimal string alignment distance between a and b:
// insertions, deletions, substitutions and swaps of adjacent runes cost one.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Three rows: the swap rule looks two rows back
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(b)]
}

// FormatSuggestions renders suggestions as a sentence suffix for error
// messages, e.g. ". Did you mean 'if', 'for' or 'raw'?"
func FormatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s + "'"
	}

	list := quoted[0]
	if n := len(quoted); n > 1 {
		list = strings.Join(quoted[:n-1], ", ") + " or " + quoted[n-1]
	}
	return ". Did you mean " + list + "?"
}
