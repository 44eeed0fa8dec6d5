package orders_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiorder/vca-engine/internal/vca"
	"github.com/optiorder/vca-engine/pkg/orders"
)

func TestCreateAndGet(t *testing.T) {
	store := orders.NewStore()

	created := store.Create(vca.OrderRecord{"JOB": "ORD1", "CLIENT": "Jane"})
	assert.Equal(t, orders.StatusDraft, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, ok := store.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "ORD1", got.Record["JOB"])

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestCreateClonesRecord(t *testing.T) {
	store := orders.NewStore()
	record := vca.OrderRecord{"JOB": "ORD1"}

	created := store.Create(record)
	record["JOB"] = "mutated"

	got, _ := store.Get(created.ID)
	assert.Equal(t, "ORD1", got.Record["JOB"])
}

func TestListOldestFirst(t *testing.T) {
	store := orders.NewStore()
	first := store.Create(vca.OrderRecord{"JOB": "A"})
	second := store.Create(vca.OrderRecord{"JOB": "B"})

	list := store.List()
	require.Len(t, list, 2)
	ids := []uuid.UUID{list[0].ID, list[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, list[1].CreatedAt.Before(list[0].CreatedAt))
}

func TestMarkSubmitted(t *testing.T) {
	store := orders.NewStore()
	created := store.Create(vca.OrderRecord{"JOB": "ORD1", "TINT": "pt green"})

	resolved := vca.OrderRecord{"JOB": "ORD1", "TINT": "PT GREEN"}
	updated, ok := store.MarkSubmitted(created.ID, resolved, "JOB=ORD1")
	require.True(t, ok)
	assert.Equal(t, orders.StatusSubmitted, updated.Status)
	assert.Equal(t, "PT GREEN", updated.Record["TINT"])
	assert.Equal(t, "JOB=ORD1", updated.VCA)
}

func TestMarkFailed(t *testing.T) {
	store := orders.NewStore()
	created := store.Create(vca.OrderRecord{"JOB": "ORD1"})

	updated, ok := store.MarkFailed(created.ID, "connection refused")
	require.True(t, ok)
	assert.Equal(t, orders.StatusFailed, updated.Status)
	assert.Equal(t, "connection refused", updated.Error)

	_, ok = store.MarkFailed(uuid.New(), "nope")
	assert.False(t, ok)
}
