package matching

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/optiorder/vca-engine/internal/catalog"
)

// Mode selects the scoring algorithm for one lookup.
type Mode int

const (
	// ModeWords suits multi-word descriptive names: customer shops,
	// tints, coating descriptions.
	ModeWords Mode = iota
	// ModeChars suits short alphanumeric lens codes where near-identity
	// and typo tolerance matter more than word boundaries.
	ModeChars
)

// ModeForKind returns the scoring mode used for a catalog kind.
func ModeForKind(kind catalog.Kind) Mode {
	if kind == catalog.KindLens {
		return ModeChars
	}
	return ModeWords
}

// maxSuggestions bounds the ranked suggestion list.
const maxSuggestions = 10

// Suggestion is a ranked, non-committed candidate. It is never applied
// without explicit caller confirmation.
type Suggestion struct {
	Record          catalog.Record `json:"record"`
	MatchScore      float64        `json:"matchScore"`
	MatchPercentage float64        `json:"matchPercentage"`
}

// Result reports the outcome of one lookup. When ExactMatch is true,
// Suggestions is empty and Code is set; when Matched is false, Code is
// absent even if suggestions exist.
type Result struct {
	Matched     bool             `json:"matched"`
	ExactMatch  bool             `json:"exactMatch"`
	Code        *string          `json:"code"`
	Record      *catalog.Record  `json:"record"`
	Suggestions []Suggestion     `json:"suggestions"`
	AllRecords  []catalog.Record `json:"allRecords"`
	SearchWords []string         `json:"searchWords"`
	Message     string           `json:"message"`
}

// Match resolves a free-text term against catalog records. It is pure
// and stateless: safe to call concurrently for independent lookups.
func Match(term string, records []catalog.Record, mode Mode) Result {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return Result{
			Suggestions: []Suggestion{},
			AllRecords:  []catalog.Record{},
			SearchWords: []string{},
			Message:     "search term is too short",
		}
	}

	listing := make([]catalog.Record, len(records))
	copy(listing, records)

	// Exact matches win in catalog order, before any scoring.
	for i := range records {
		rec := records[i]
		if equalsNormalized(trimmed, rec.CanonicalCode()) || equalsNormalized(trimmed, rec.DisplayName()) {
			code := rec.CanonicalCode()
			log.WithFields(log.Fields{"term": trimmed, "code": code}).Debug("Exact catalog match")
			return Result{
				Matched:     true,
				ExactMatch:  true,
				Code:        &code,
				Record:      &rec,
				Suggestions: []Suggestion{},
				AllRecords:  listing,
				SearchWords: searchWords(trimmed),
				Message:     "exact match",
			}
		}
	}

	words := searchWords(trimmed)
	var suggestions []Suggestion
	if mode == ModeChars {
		suggestions = charSuggestions(trimmed, records)
	} else {
		suggestions = wordSuggestions(words, records)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	message := "no match found"
	if len(suggestions) > 0 {
		message = fmt.Sprintf("%d suggestions found", len(suggestions))
	}

	return Result{
		Suggestions: suggestions,
		AllRecords:  listing,
		SearchWords: words,
		Message:     message,
	}
}

// equalsNormalized compares term and candidate case-insensitively after
// whitespace collapsing. Empty candidates never match.
func equalsNormalized(term, candidate string) bool {
	if candidate == "" {
		return false
	}
	return normalizeCompact(term) == normalizeCompact(candidate)
}

func wordSuggestions(words []string, records []catalog.Record) []Suggestion {
	suggestions := []Suggestion{}
	if len(words) == 0 {
		return suggestions
	}

	total := float64(len(words))
	for _, rec := range records {
		score := wordOverlapScore(words, rec)
		if score == 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Record:          rec,
			MatchScore:      float64(score),
			MatchPercentage: float64(score) / total * 100,
		})
	}

	sortSuggestions(suggestions)
	return suggestions
}

func charSuggestions(term string, records []catalog.Record) []Suggestion {
	suggestions := []Suggestion{}
	for _, rec := range records {
		sim := recordSimilarity(term, rec)
		if sim <= similarityCutoff {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Record:          rec,
			MatchScore:      sim,
			MatchPercentage: sim * 100,
		})
	}

	sortSuggestions(suggestions)
	return suggestions
}

// sortSuggestions orders by descending score, then alphabetically by
// name with the code as fallback.
func sortSuggestions(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].MatchScore != suggestions[j].MatchScore {
			return suggestions[i].MatchScore > suggestions[j].MatchScore
		}
		return sortKey(suggestions[i].Record) < sortKey(suggestions[j].Record)
	})
}

func sortKey(rec catalog.Record) string {
	if name := rec.DisplayName(); name != "" {
		return strings.ToLower(name)
	}
	return strings.ToLower(rec.CanonicalCode())
}
