// Package matching resolves free-text order fields against catalog
// records, producing either an exact match or ranked suggestions that
// require caller confirmation.
package matching

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// normalizeTerm lowercases, trims, replaces punctuation with spaces and
// collapses whitespace runs.
func normalizeTerm(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	t = punctuation.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// searchWords splits a term into the words used for overlap scoring.
// Single characters carry no signal and are dropped.
func searchWords(term string) []string {
	words := []string{}
	for _, w := range strings.Fields(normalizeTerm(term)) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// normalizeCompact lowercases, trims and collapses internal whitespace,
// used where whitespace-only differences must compare equal.
func normalizeCompact(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
