package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/internal/vca"
	"github.com/optiorder/vca-engine/pkg/gateway"
)

func seedRecord(kind catalog.Kind, name, code string) catalog.Record {
	r := catalog.Record{ID: uuid.New(), Kind: kind, CreatedAt: time.Now().UTC()}
	if name != "" {
		r.Name = &name
	}
	if code != "" {
		r.Code = &code
	}
	return r
}

func testProvider() catalog.Provider {
	return catalog.NewMemory([]catalog.Record{
		seedRecord(catalog.KindCustomer, "Main Street Optical", "SHOP001"),
		seedRecord(catalog.KindLens, "Ovation MD Transitions", "OVMDXV"),
		seedRecord(catalog.KindTint, "Premium Green", "PT GREEN"),
		seedRecord(catalog.KindCoating, "Hard Multi Coat", "HMC"),
	})
}

type failingProvider struct{}

func (failingProvider) Records(context.Context, catalog.Kind) ([]catalog.Record, error) {
	return nil, catalog.ErrUnavailable
}

func TestResolveRecordSubstitutesExactMatches(t *testing.T) {
	g := gateway.New(testProvider())

	resolved, resolutions, err := g.ResolveRecord(context.Background(), vca.OrderRecord{
		"JOB":    "ORD1",
		"CLIENT": "Jane",
		"TINT":   "pt green",
	})
	require.NoError(t, err)

	assert.Equal(t, "PT GREEN", resolved["TINT"])

	require.Len(t, resolutions, 2, "CLIENT and TINT were present")
	byField := map[string]gateway.FieldResolution{}
	for _, r := range resolutions {
		byField[r.Field] = r
	}
	assert.True(t, byField["TINT"].Resolved)
	assert.False(t, byField["CLIENT"].Resolved)
}

func TestResolveRecordKeepsOriginalOnSuggestions(t *testing.T) {
	g := gateway.New(testProvider())

	resolved, resolutions, err := g.ResolveRecord(context.Background(), vca.OrderRecord{
		"TINT": "premium gree",
	})
	require.NoError(t, err)

	// Suggestions are never applied silently.
	assert.Equal(t, "premium gree", resolved["TINT"])
	require.Len(t, resolutions, 1)
	assert.False(t, resolutions[0].Resolved)
	assert.NotEmpty(t, resolutions[0].Suggestions)
}

func TestResolveRecordDoesNotMutateInput(t *testing.T) {
	g := gateway.New(testProvider())
	record := vca.OrderRecord{"TINT": "pt green"}

	_, _, err := g.ResolveRecord(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "pt green", record["TINT"])
}

func TestResolveRecordSkipsBlankFields(t *testing.T) {
	g := gateway.New(testProvider())

	_, resolutions, err := g.ResolveRecord(context.Background(), vca.OrderRecord{
		"JOB":  "ORD1",
		"LNAM": "   ",
	})
	require.NoError(t, err)
	assert.Empty(t, resolutions)
}

func TestResolveRecordCatalogUnavailable(t *testing.T) {
	g := gateway.New(failingProvider{})

	_, _, err := g.ResolveRecord(context.Background(), vca.OrderRecord{"TINT": "green"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnavailable),
		"a dead catalog must stay distinct from no-match")
}

func TestPrepareEncodesResolvedRecord(t *testing.T) {
	g := gateway.New(testProvider())

	submission, err := g.Prepare(context.Background(), vca.OrderRecord{
		"JOB":    "ORD1",
		"CLIENT": "Main Street Optical",
		"LNAM":   "ovmdxv",
		"SPH":    "-1.75;-1.75",
	})
	require.NoError(t, err)

	assert.True(t, submission.Validation.IsValid)
	assert.Contains(t, submission.VCA, "LNAM=OVMDXV")
	assert.Contains(t, submission.VCA, "CLIENT=SHOP001")
	assert.Contains(t, submission.VCA, "SPH=-1.75;-1.75")
}

func TestPrepareEncodesInvalidRecords(t *testing.T) {
	g := gateway.New(testProvider())

	submission, err := g.Prepare(context.Background(), vca.OrderRecord{
		"SPH": "1;2;3",
	})
	require.NoError(t, err)

	// Encoding always proceeds; the verdict tells the caller not to
	// submit.
	assert.False(t, submission.Validation.IsValid)
	assert.Contains(t, submission.VCA, "SPH=1;2;3")
}
