// Package catalog supplies the reference records (customer directory,
// lens, tint and coating codes) that free-text order fields are resolved
// against.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind selects one reference set.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindLens     Kind = "lens"
	KindTint     Kind = "tint"
	KindCoating  Kind = "coating"
)

// Kinds lists every reference set a provider serves.
var Kinds = []Kind{KindCustomer, KindLens, KindTint, KindCoating}

// ParseKind converts a request path segment or seed block type to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown catalog kind %q", s)
}

// ErrUnavailable reports that the catalog data source could not supply
// records. Callers must keep it distinct from an empty match result.
var ErrUnavailable = errors.New("catalog unavailable")

// Record is one reference entry. Name and Code are nullable: legacy rows
// may carry either one alone.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      *string   `json:"retail_name"`
	Code      *string   `json:"retail_code"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the record name, or "" when absent.
func (r Record) DisplayName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// CanonicalCode returns the record code, or "" when absent.
func (r Record) CanonicalCode() string {
	if r.Code == nil {
		return ""
	}
	return *r.Code
}

// Provider supplies the candidate record set for one kind. The matching
// core reads the catalog per request and never caches it.
type Provider interface {
	Records(ctx context.Context, kind Kind) ([]Record, error)
}
