// Package gateway wires catalog matching, validation and VCA encoding
// into the order submission pipeline.
package gateway

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/internal/matching"
	"github.com/optiorder/vca-engine/internal/vca"
)

// Gateway resolves free-text order fields against the catalog and
// prepares orders for submission.
type Gateway struct {
	provider catalog.Provider
}

func New(provider catalog.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// resolvableFields maps order fields to the catalog kind their free-text
// value resolves against.
var resolvableFields = []struct {
	Field string
	Kind  catalog.Kind
}{
	{"CLIENT", catalog.KindCustomer},
	{"LNAM", catalog.KindLens},
	{"TINT", catalog.KindTint},
	{"ACOAT", catalog.KindCoating},
}

// FieldResolution reports how one free-text field resolved.
type FieldResolution struct {
	Field       string                `json:"field"`
	Kind        catalog.Kind          `json:"kind"`
	Term        string                `json:"term"`
	Resolved    bool                  `json:"resolved"`
	Code        *string               `json:"code"`
	Suggestions []matching.Suggestion `json:"suggestions"`
}

// Submission is a fully prepared order: resolved record, validation
// verdict and encoded VCA text. The text is produced even when the
// record fails validation; submitting it is the caller's call.
type Submission struct {
	Record      vca.OrderRecord      `json:"record"`
	Resolutions []FieldResolution    `json:"resolutions"`
	Validation  vca.ValidationResult `json:"validation"`
	VCA         string               `json:"vca"`
}

// ResolveRecord matches each resolvable field and substitutes canonical
// codes for exact matches only. Ranked suggestions come back for the
// caller to confirm; they are never applied silently.
func (g *Gateway) ResolveRecord(ctx context.Context, record vca.OrderRecord) (vca.OrderRecord, []FieldResolution, error) {
	resolved := make(vca.OrderRecord, len(record))
	for k, v := range record {
		resolved[k] = v
	}

	resolutions := []FieldResolution{}
	for _, rf := range resolvableFields {
		term := strings.TrimSpace(record[rf.Field])
		if term == "" {
			continue
		}

		records, err := g.provider.Records(ctx, rf.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %s: %w", rf.Field, err)
		}

		result := matching.Match(term, records, matching.ModeForKind(rf.Kind))
		if result.ExactMatch && result.Code != nil && *result.Code != "" {
			resolved[rf.Field] = *result.Code
		} else if len(result.Suggestions) > 0 {
			log.WithFields(log.Fields{
				"field":       rf.Field,
				"term":        term,
				"suggestions": len(result.Suggestions),
			}).Info("Field needs confirmation")
		}

		resolutions = append(resolutions, FieldResolution{
			Field:       rf.Field,
			Kind:        rf.Kind,
			Term:        term,
			Resolved:    result.ExactMatch,
			Code:        result.Code,
			Suggestions: result.Suggestions,
		})
	}

	return resolved, resolutions, nil
}

// Prepare runs the full pipeline: resolve, validate, encode.
func (g *Gateway) Prepare(ctx context.Context, record vca.OrderRecord) (*Submission, error) {
	resolved, resolutions, err := g.ResolveRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	return &Submission{
		Record:      resolved,
		Resolutions: resolutions,
		Validation:  vca.Validate(resolved),
		VCA:         vca.Encode(resolved),
	}, nil
}
