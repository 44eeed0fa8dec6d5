package vca

import (
	"fmt"
	"strings"
)

// OrderRecord is a sparse order: field name to value. Absent keys and
// blank values are equivalent. The codec never mutates the record.
type OrderRecord map[string]string

// ValidationResult accumulates every validation failure in one pass.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// defaultEyes is emitted for the DO selector when the order does not
// specify which eyes the job covers.
const defaultEyes = "B"

// Encode renders the record as newline-separated KEY=VALUE lines in the
// fixed field order. Every recognized field is emitted, empty or not, so
// downstream consumers see a constant line count and column positions.
// Values pass through verbatim apart from trimming; encoding never fails.
func Encode(record OrderRecord) string {
	lines := make([]string, 0, len(FieldOrder))
	for _, field := range FieldOrder {
		value := strings.TrimSpace(record[field])
		if field == "DO" && value == "" {
			value = defaultEyes
		}
		lines = append(lines, field+"="+value)
	}
	return strings.Join(lines, "\n")
}

// Validate checks mandatory-field presence and paired-field arity. It
// does not check numeric ranges or cross-field consistency; a record
// that fails validation still encodes.
func Validate(record OrderRecord) ValidationResult {
	errs := []string{}

	if strings.TrimSpace(record["JOB"]) == "" {
		errs = append(errs, "Order ID (JOB) is required")
	}
	if strings.TrimSpace(record["CLIENT"]) == "" {
		errs = append(errs, "Customer name (CLIENT) is required")
	}

	for _, field := range FieldOrder {
		if !pairedFields[field] {
			continue
		}
		value := strings.TrimSpace(record[field])
		if value == "" || !strings.Contains(value, ";") {
			continue
		}
		if len(strings.Split(value, ";")) != 2 {
			errs = append(errs, fmt.Sprintf("%s should have exactly 2 values separated by semicolon (R;L format)", field))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
