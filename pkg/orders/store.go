// Package orders holds draft and submitted orders in memory. The gateway
// has no persistence requirement; the store exists so callers can round
// an order through resolve, validate and submit.
package orders

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/optiorder/vca-engine/internal/vca"
)

// Status tracks where an order is in the submission pipeline.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusFailed    Status = "failed"
)

// Order wraps an order record with store bookkeeping. VCA holds the
// encoded text of the last submission attempt.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	Record    vca.OrderRecord `json:"record"`
	Status    Status          `json:"status"`
	VCA       string          `json:"vca,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store is a mutex-guarded in-memory order store.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]Order
}

func NewStore() *Store {
	return &Store{orders: make(map[uuid.UUID]Order)}
}

// Create stores a new draft order and returns it.
func (s *Store) Create(record vca.OrderRecord) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	order := Order{
		ID:        uuid.New(),
		Record:    cloneRecord(record),
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders[order.ID] = order
	return order
}

// Get returns the order with the given id.
func (s *Store) Get(id uuid.UUID) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

// List returns every order, oldest first.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// MarkSubmitted records a successful submission with its encoded text.
func (s *Store) MarkSubmitted(id uuid.UUID, record vca.OrderRecord, encoded string) (Order, bool) {
	return s.update(id, func(order *Order) {
		order.Record = cloneRecord(record)
		order.Status = StatusSubmitted
		order.VCA = encoded
		order.Error = ""
	})
}

// MarkFailed records a failed submission attempt.
func (s *Store) MarkFailed(id uuid.UUID, reason string) (Order, bool) {
	return s.update(id, func(order *Order) {
		order.Status = StatusFailed
		order.Error = reason
	})
}

func (s *Store) update(id uuid.UUID, fn func(*Order)) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	fn(&order)
	order.UpdatedAt = time.Now().UTC()
	s.orders[id] = order
	return order, true
}

func cloneRecord(record vca.OrderRecord) vca.OrderRecord {
	out := make(vca.OrderRecord, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
