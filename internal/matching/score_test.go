package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/optiorder/vca-engine/internal/catalog"
)

func testRecord(kind catalog.Kind, name, code string) catalog.Record {
	r := catalog.Record{ID: uuid.New(), Kind: kind, CreatedAt: time.Now().UTC()}
	if name != "" {
		r.Name = &name
	}
	if code != "" {
		r.Code = &code
	}
	return r
}

func TestSearchWords(t *testing.T) {
	assert.Equal(t, []string{"pt", "green"}, searchWords("PT-Green!"))
	assert.Equal(t, []string{"green"}, searchWords("a green"))
	assert.Empty(t, searchWords("  .,;  "))
}

func TestNormalizeTermReplacesPunctuation(t *testing.T) {
	assert.Equal(t, "main st optical", normalizeTerm("  Main St. Optical  "))
	assert.Equal(t, "anti reflect", normalizeTerm("ANTI/REFLECT"))
}

func TestWordOverlapScore(t *testing.T) {
	rec := testRecord(catalog.KindCoating, "Premium Green Coating", "PT GREEN")

	assert.Equal(t, 1, wordOverlapScore([]string{"gree"}, rec))
	assert.Equal(t, 2, wordOverlapScore([]string{"premium", "coating"}, rec))
	assert.Equal(t, 0, wordOverlapScore([]string{"blue"}, rec))

	// Words may match the code when the name misses.
	assert.Equal(t, 1, wordOverlapScore([]string{"pt"}, rec))
}

func TestCharSimilarityIdenticalIgnoringCase(t *testing.T) {
	assert.Equal(t, 1.0, charSimilarity("ovmdxv", "OVMDXV"))
}

func TestCharSimilarityEmptyCandidate(t *testing.T) {
	assert.Equal(t, 0.0, charSimilarity("xyz", ""))
	assert.Equal(t, 0.0, charSimilarity("", "xyz"))
}

func TestCharSimilarityWhitespaceOnlyDifference(t *testing.T) {
	assert.Equal(t, 1.0, charSimilarity("pt  green", "PT Green"))
}

func TestCharSimilarityPositionalAndPresence(t *testing.T) {
	// "abc" vs "abd": positions a,b match (2.0); presence bonus for a and
	// b (0.6); total 2.6 over length 3.
	assert.InDelta(t, 2.6/3.0, charSimilarity("abc", "abd"), 1e-9)
}

func TestCharSimilarityCapsAtOne(t *testing.T) {
	// "abcd" vs "abcde": 4 positional + 4×0.3 presence = 5.2 over 5.
	assert.Equal(t, 1.0, charSimilarity("abcd", "abcde"))
}

func TestRecordSimilarityNameBoost(t *testing.T) {
	rec := testRecord(catalog.KindLens, "transit", "9914872")

	// Alphabetic terms lean on the name; the boosted name score must win
	// over the raw one.
	boosted := recordSimilarity("trans", rec)
	raw := charSimilarity("trans", "transit")
	assert.Greater(t, boosted, raw)
	assert.LessOrEqual(t, boosted, 1.0)
}

func TestRecordSimilarityNumericTermNoBoost(t *testing.T) {
	rec := testRecord(catalog.KindLens, "9914", "991")

	assert.False(t, isDescriptive("9914"))
	assert.Equal(t, charSimilarity("9914", "9914"), recordSimilarity("9914", rec))
}

func TestRecordSimilarityTakesMaxOfNameAndCode(t *testing.T) {
	rec := testRecord(catalog.KindLens, "zzzzzz", "ovmdxv")
	assert.Equal(t, 1.0, recordSimilarity("OVMDXV", rec))
}
