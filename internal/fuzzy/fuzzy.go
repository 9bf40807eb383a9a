// Package fuzzy adapts github.com/sahilm/fuzzy to the contract the
// Resolver's scorer expects from a fuzzy matcher: a query plus a list of
// candidate strings in, a list of {score, exact} matches out.
//
// The original system treated its SIMD matcher (frizbee) as an opaque
// collaborator that already reports an exact-match flag and clamps typo
// tolerance internally. sahilm/fuzzy exposes neither, so this package
// derives both on top of its ordered-subsequence match.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	sahilm "github.com/sahilm/fuzzy"
)

// Match is one candidate's result against a query: a raw (unsigned) score
// and whether the candidate matched exactly (case-insensitive substring,
// not just an ordered subsequence).
type Match struct {
	Score int
	Exact bool
}

// MaxTypos mirrors the original matcher's clamp — never more than 4, and
// never more than the query's own length (an empty or 1-character query
// can't sensibly tolerate typos).
func MaxTypos(query string) int {
	max := len(query) / 5
	if max > 4 {
		max = 4
	}
	if max > len(query) {
		max = len(query)
	}
	return max
}

// Run runs query against candidates and returns one Match per candidate
// that passes the typo-tolerance clamp, in no particular order. A
// zero-length query matches nothing and returns nil (the Resolver's caller
// is expected to special-case this and skip filtering entirely).
func Run(query string, candidates []string) []Match {
	if query == "" {
		return nil
	}

	results := sahilm.Find(query, candidates)
	maxTypos := MaxTypos(query)

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		if typoCount(query, r.MatchedIndexes) > maxTypos {
			continue
		}
		matches = append(matches, Match{
			Score: normalizeScore(r.Score),
			Exact: strings.Contains(strings.ToLower(r.Str), strings.ToLower(query)),
		})
	}
	return matches
}

// typoCount is the number of query characters the match left unmatched.
// Gaps between matched characters are not typos: a non-contiguous ordered
// subsequence is an inexact match, not a typo'd one.
func typoCount(query string, matchedIndexes []int) int {
	missing := utf8.RuneCountInString(query) - len(matchedIndexes)
	if missing < 0 {
		return 0
	}
	return missing
}

// normalizeScore clamps sahilm/fuzzy's signed score (which can go negative
// for poor matches) to the unsigned range the scoring package expects. A
// match that made it past typoCount already cleared the quality bar, so
// negative scores are floored at zero rather than discarded.
func normalizeScore(raw int) int {
	if raw < 0 {
		return 0
	}
	return raw
}
