package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Seed files declare catalog records as HCL blocks, one block per record:
//
//	customer "SHOP001" {
//	  name = "Main Street Optical"
//	}
//
//	lens "OVMDXV" {
//	  name = "Ovation MD Transitions XtrActive"
//	}
//
// The block type is the catalog kind, the optional label is the canonical
// code, and name/code attributes override it.

// LoadSeedFile parses an HCL seed file into catalog records.
func LoadSeedFile(path string) ([]Record, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(src, path)
}

// ParseSeed parses seed file contents. Record IDs and timestamps are
// generated at parse time; file-backed catalogs have no stable identity.
func ParseSeed(src []byte, filename string) ([]Record, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse errors: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type")
	}

	var records []Record
	for _, block := range body.Blocks {
		kind, err := ParseKind(block.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", block.DefRange().String(), err)
		}

		record := Record{
			ID:        uuid.New(),
			Kind:      kind,
			CreatedAt: time.Now().UTC(),
		}
		if len(block.Labels) > 0 {
			code := block.Labels[0]
			record.Code = &code
		}

		for name, attr := range block.Body.Attributes {
			val, vdiags := attr.Expr.Value(nil)
			if vdiags.HasErrors() {
				return nil, fmt.Errorf("%s: %s", attr.SrcRange.String(), vdiags.Error())
			}
			if val.Type() != cty.String {
				return nil, fmt.Errorf("%s: %s must be a string", attr.SrcRange.String(), name)
			}
			s := val.AsString()

			switch name {
			case "name":
				record.Name = &s
			case "code":
				record.Code = &s
			default:
				return nil, fmt.Errorf("%s: unknown attribute %q", attr.SrcRange.String(), name)
			}
		}

		if record.Name == nil && record.Code == nil {
			return nil, fmt.Errorf("%s: %s record needs a name or code", block.DefRange().String(), kind)
		}

		records = append(records, record)
	}

	return records, nil
}
