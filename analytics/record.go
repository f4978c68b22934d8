// Package analytics is the reporting aggregation engine: pure functions over
// raw record sets that derive the totals, filters and breakdowns shown on the
// dashboard and in reports. Every function is total over malformed input —
// missing or non-numeric fields coerce to zero rather than erroring.
package analytics

import (
	"github.com/spf13/cast"

	"github.com/weblynx/backoffice_backend/models"
)

// Num reads a numeric field from a schemaless record. Strings holding numbers
// coerce; anything missing or non-numeric is 0.
func Num(r models.Record, field string) float64 {
	v, ok := r[field]
	if !ok || v == nil {
		return 0
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return n
}

// Str reads a string field from a schemaless record, "" when absent
func Str(r models.Record, field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

// Bool reads a boolean field from a schemaless record, false when absent
func Bool(r models.Record, field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// Amount reads the conventional "amount" field
func Amount(r models.Record) float64 {
	return Num(r, "amount")
}
