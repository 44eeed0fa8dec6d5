// Package vca encodes optical order records into the VCA fixed-field
// line format and validates field-presence and pairing rules.
package vca

// FieldOrder is the fixed declaration order of recognized order fields:
// identity fields first, then prescription, frame/measurement,
// lens/coating/color, and finally advanced technical parameters. The
// order-entry service relies on a fixed line count and ordering, so
// every field is always emitted even when empty.
var FieldOrder = []string{
	"DO", "JOB", "CLIENT", "CLIENTF", "SHOPNUMBER", "ShopNumber",
	"SPH", "CYL", "AX", "ADD", "PRVM", "PRVA", "PRVIN", "PRVUP",
	"IPD", "NPD", "HBOX", "VBOX", "DBL", "FED", "SEGHT", "BVD",
	"LNAM", "TINT", "ACOAT", "COLR", "PANTO", "CustomerRetailName",
	"CRIB", "ELLH", "MINTHKCD", "MINCTR", "BCERIN", "BCERUP",
	"ZTILT", "MBASE",
}

// pairedFields may carry right;left eye measurements joined by a
// semicolon. DBL is a single shared value (bridge width) and is
// deliberately absent.
var pairedFields = map[string]bool{
	"SPH": true, "CYL": true, "AX": true, "ADD": true,
	"PRVM": true, "PRVA": true, "PRVIN": true, "PRVUP": true,
	"IPD": true, "NPD": true, "HBOX": true, "VBOX": true,
	"FED": true, "SEGHT": true, "BVD": true, "PANTO": true,
	"CRIB": true, "ELLH": true, "MINTHKCD": true, "MINCTR": true,
	"BCERIN": true, "BCERUP": true, "ZTILT": true, "MBASE": true,
}

// IsPaired reports whether the field carries right;left eye values.
func IsPaired(field string) bool {
	return pairedFields[field]
}
