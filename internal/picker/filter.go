package picker

import (
	"sort"
	"strings"
	"unicode"
)

// Match is one visible row: a candidate and its score for the current query.
type Match struct {
	Candidate Candidate
	Score     int
}

// Filter returns the candidates matching query, best first. An empty query
// returns every candidate in original order with a uniform score. Ties keep
// the original candidate order, so identical inputs always produce identical
// output.
func Filter(candidates []Candidate, query string) []Match {
	if query == "" {
		out := make([]Match, len(candidates))
		for i, c := range candidates {
			out[i] = Match{Candidate: c}
		}
		return out
	}

	var out []Match
	for _, c := range candidates {
		if score := Score(c.Label(), query); score > 0 {
			out = append(out, Match{Candidate: c, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Score rates how well query matches label, 0 meaning no match. Matching is
// case-insensitive and query characters must appear in label in order. Exact,
// prefix and contiguous matches rank above scattered subsequences, which earn
// per-character points with bonuses for consecutive runs and word boundaries.
func Score(label, query string) int {
	label = strings.ToLower(label)
	query = strings.ToLower(query)

	if label == query {
		return 1000
	}
	if strings.HasPrefix(label, query) {
		return 500 + len(query)
	}
	if strings.Contains(label, query) {
		return 200 + len(query)
	}

	li, qi := 0, 0
	score := 0
	consecutive := 0
	lastMatch := -1
	for li < len(label) && qi < len(query) {
		if label[li] == query[qi] {
			qi++
			points := 10
			if lastMatch == li-1 {
				consecutive++
				points += consecutive * 5
			} else {
				consecutive = 0
			}
			if li == 0 || !unicode.IsLetter(rune(label[li-1])) {
				points += 15
			}
			score += points
			lastMatch = li
		}
		li++
	}
	// All query characters must be found for a match.
	if qi == len(query) {
		return score
	}
	return 0
}
