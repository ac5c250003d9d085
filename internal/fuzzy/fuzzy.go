// Package fuzzy ranks registered flag names against a mistyped one.
// Used by snapflag to attach a "did you mean" suggestion to undefined-flag errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher compares an input against candidates by bounded edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that accepts candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters match almost anything
	}
}

// Match is one accepted candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better

	prefix int
}

// FindBest returns the best candidate, or "" if none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all accepted candidates, best first. Ties are broken
// by distance, then by shared prefix, then by name, so the order does not
// depend on the order of candidates.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := distance(input, lower, m.maxDistance)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: d,
			Score:    score(input, lower, d),
			prefix:   commonPrefix(input, lower),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.prefix != b.prefix {
			return a.prefix > b.prefix
		}
		return a.Value < b.Value
	})
	return matches
}

// score weighs edit distance with prefix, length and shared-character bonuses.
func score(input, candidate string, dist int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}
	s := 1.0 - float64(dist)/float64(longest)

	if p := commonPrefix(input, candidate); p > 0 {
		s += float64(p) / float64(min(len(input), len(candidate))) * 0.3
	}
	s += (1.0 - float64(abs(len(input)-len(candidate)))/float64(longest)) * 0.2
	s += float64(sharedChars(input, candidate)) / float64(longest) * 0.1

	return min(s, 1.0)
}

// distance is the Levenshtein distance between a and b, or limit+1 once it
// is known to exceed limit.
func distance(a, b string, limit int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > limit {
		return limit + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func sharedChars(a, b string) int {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	shared := 0
	for _, r := range b {
		if counts[r] > 0 {
			shared++
			counts[r]--
		}
	}
	return shared
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestFlag returns the registered flag name closest to input.
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, flags)
}

// FindSuggestions returns up to maxSuggestions candidates, best first.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Value)
	}
	return suggestions
}
