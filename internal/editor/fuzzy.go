package editor

import (
	"sort"
	"strings"
)

// Score ranks how well query matches text as a case-insensitive,
// possibly non-contiguous subsequence. Consecutive matches build a
// streak bonus, unmatched text characters cost a point, and an early
// first match earns a recency bonus. Returns ok=false when query is
// not a subsequence of text. The empty query matches everything with
// score 0, so an unfiltered list keeps its registration order.
func Score(query, text string) (int, bool) {
	if query == "" {
		return 0, true
	}
	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(text))

	score := 0
	streak := 0
	matched := 0
	first := -1
	for i := 0; i < len(t) && matched < len(q); i++ {
		if t[i] == q[matched] {
			if first < 0 {
				first = i
			}
			matched++
			streak++
			score += 10 + streak*5
		} else {
			streak = 0
			score--
		}
	}
	if matched < len(q) {
		return 0, false
	}
	if bonus := 50 - first; bonus > 0 {
		score += bonus
	}
	return score, true
}

// Rank scores every item against query, drops non-matches, and
// returns at most limit items ordered by descending score. Equal
// scores keep their input order.
func Rank(query string, items []string, limit int) []string {
	type match struct {
		label string
		score int
	}
	matches := make([]match, 0, len(items))
	for _, item := range items {
		if s, ok := Score(query, item); ok {
			matches = append(matches, match{label: item, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.label
	}
	return out
}
