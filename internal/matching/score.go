package matching

import (
	"strings"
	"unicode"

	"github.com/optiorder/vca-engine/internal/catalog"
)

// Tuned against historical lab orders; keep in sync with the similarity
// threshold below when adjusting.
const (
	// presenceBonus is credited for each character of the shorter string
	// found anywhere in the longer one, independent of position.
	presenceBonus = 0.3
	// nameBoost favors matching descriptive search terms against record
	// names over internal codes when both are plausible.
	nameBoost = 1.1
	// similarityCutoff excludes weak character-similarity candidates.
	similarityCutoff = 0.3
)

// wordOverlapScore counts how many search words appear as a substring of
// the candidate's name or code, case-insensitively.
func wordOverlapScore(words []string, rec catalog.Record) int {
	name := strings.ToLower(rec.DisplayName())
	code := strings.ToLower(rec.CanonicalCode())

	score := 0
	for _, w := range words {
		if (name != "" && strings.Contains(name, w)) || (code != "" && strings.Contains(code, w)) {
			score++
		}
	}
	return score
}

// charSimilarity scores how close the term is to one candidate string,
// in [0,1]. Identical normalized strings score 1.0; otherwise the score
// combines position-wise character matches with a presence bonus,
// divided by the longer string's length.
func charSimilarity(term, candidate string) float64 {
	a := normalizeCompact(term)
	b := normalizeCompact(candidate)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	// Equal-length containment means equality after whitespace collapsing.
	// Kept as a separate check for behavioral compatibility.
	if len(a) == len(b) && strings.Contains(longer, shorter) {
		return 1.0
	}

	matches := 0.0
	for i := 0; i < len(shorter); i++ {
		if shorter[i] == longer[i] {
			matches++
		}
	}
	for i := 0; i < len(shorter); i++ {
		if strings.IndexByte(longer, shorter[i]) >= 0 {
			matches += presenceBonus
		}
	}

	sim := matches / float64(len(longer))
	if sim > 1.0 {
		sim = 1.0
	}
	return sim
}

// recordSimilarity is the per-record score for a lens-code lookup: the
// max of name and code similarity, with descriptive terms biased toward
// the name.
func recordSimilarity(term string, rec catalog.Record) float64 {
	nameSim := charSimilarity(term, rec.DisplayName())
	codeSim := charSimilarity(term, rec.CanonicalCode())

	if isDescriptive(term) && nameSim > codeSim {
		nameSim *= nameBoost
		if nameSim > 1.0 {
			nameSim = 1.0
		}
	}

	if nameSim > codeSim {
		return nameSim
	}
	return codeSim
}

// isDescriptive reports whether the term reads like a name rather than a
// purely numeric code.
func isDescriptive(term string) bool {
	for _, r := range term {
		if unicode.IsLetter(r) || r == ' ' {
			return true
		}
	}
	return false
}
