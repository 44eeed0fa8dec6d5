package catalog

import "context"

// Memory serves catalog records from memory. It backs seed-file installs
// that run without a reference database, and test fixtures.
type Memory struct {
	records map[Kind][]Record
}

// NewMemory groups records by kind into a read-only provider.
func NewMemory(records []Record) *Memory {
	m := &Memory{records: make(map[Kind][]Record)}
	for _, r := range records {
		m.records[r.Kind] = append(m.records[r.Kind], r)
	}
	return m
}

// Records returns a copy of the stored records for the kind, preserving
// insertion order.
func (m *Memory) Records(_ context.Context, kind Kind) ([]Record, error) {
	stored := m.records[kind]
	out := make([]Record, len(stored))
	copy(out, stored)
	return out, nil
}
