// Package suggest ranks candidate command names by similarity to a
// mistyped token, for "did you mean" hints.
package suggest

import (
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best
// match first. Ties are broken alphabetically so output is stable.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}

	matches := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name: name, score: score})
		}
	}

	slices.SortFunc(matches, func(a, b scored) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})

	n := min(maxResults, len(matches))
	result := make([]string, 0, n)
	for _, m := range matches[:n] {
		result = append(result, m.name)
	}
	return result
}

// similarity scores two names in [0, 1]: exact match is 1, a prefix match
// scores 0.9, anything else falls back to normalized edit distance.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	maxLen := max(len(a), len(b))
	return 1.0 - float64(editDistance(a, b))/float64(maxLen)
}

// editDistance is the Levenshtein distance, computed with a rolling
// two-row matrix.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
