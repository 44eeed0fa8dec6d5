package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiorder/vca-engine/internal/catalog"
)

const sampleSeed = `
customer "SHOP001" {
  name = "Main Street Optical"
}

customer {
  name = "Jane's Eyewear"
  code = "SHOP002"
}

lens "OVMDXV" {
  name = "Ovation MD Transitions XtrActive"
}

tint "G15" {}

coating "PT GREEN" {
  name = "Premium Green Coating"
}
`

func TestParseSeed(t *testing.T) {
	records, err := catalog.ParseSeed([]byte(sampleSeed), "catalog.hcl")
	require.NoError(t, err)
	require.Len(t, records, 5)

	byKind := map[catalog.Kind][]catalog.Record{}
	for _, r := range records {
		byKind[r.Kind] = append(byKind[r.Kind], r)
		assert.NotEqual(t, "", r.ID.String())
		assert.False(t, r.CreatedAt.IsZero())
	}

	require.Len(t, byKind[catalog.KindCustomer], 2)
	assert.Equal(t, "SHOP001", byKind[catalog.KindCustomer][0].CanonicalCode())
	assert.Equal(t, "Main Street Optical", byKind[catalog.KindCustomer][0].DisplayName())
	assert.Equal(t, "SHOP002", byKind[catalog.KindCustomer][1].CanonicalCode())

	require.Len(t, byKind[catalog.KindLens], 1)
	assert.Equal(t, "OVMDXV", byKind[catalog.KindLens][0].CanonicalCode())

	require.Len(t, byKind[catalog.KindTint], 1)
	assert.Equal(t, "G15", byKind[catalog.KindTint][0].CanonicalCode())
	assert.Nil(t, byKind[catalog.KindTint][0].Name)

	require.Len(t, byKind[catalog.KindCoating], 1)
	assert.Equal(t, "Premium Green Coating", byKind[catalog.KindCoating][0].DisplayName())
}

func TestParseSeedUnknownBlockType(t *testing.T) {
	_, err := catalog.ParseSeed([]byte(`frame "F1" { name = "Aviator" }`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown catalog kind")
}

func TestParseSeedUnknownAttribute(t *testing.T) {
	_, err := catalog.ParseSeed([]byte(`lens "L1" { price = "12" }`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown attribute")
}

func TestParseSeedNonStringAttribute(t *testing.T) {
	_, err := catalog.ParseSeed([]byte(`lens "L1" { name = 42 }`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestParseSeedEmptyRecord(t *testing.T) {
	_, err := catalog.ParseSeed([]byte(`lens {}`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a name or code")
}

func TestParseSeedInvalidSyntax(t *testing.T) {
	_, err := catalog.ParseSeed([]byte(`lens "L1" {`), "bad.hcl")
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	kind, err := catalog.ParseKind("lens")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindLens, kind)

	_, err = catalog.ParseKind("frames")
	assert.Error(t, err)
}

func TestMemoryProviderPreservesOrder(t *testing.T) {
	records, err := catalog.ParseSeed([]byte(sampleSeed), "catalog.hcl")
	require.NoError(t, err)

	provider := catalog.NewMemory(records)
	customers, err := provider.Records(context.Background(), catalog.KindCustomer)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "SHOP001", customers[0].CanonicalCode())

	lenses, err := provider.Records(context.Background(), catalog.KindLens)
	require.NoError(t, err)
	assert.Len(t, lenses, 1)
}
