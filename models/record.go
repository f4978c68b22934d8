package models

// Record is a single schemaless document from a named collection. Field
// values arrive exactly as the store returns them, so numeric fields may be
// strings and any field may be missing; callers coerce through the analytics
// helpers instead of asserting types.
type Record map[string]interface{}

// ID returns the record's opaque string id, or "" when absent.
func (r Record) ID() string {
	if id, ok := r["id"].(string); ok {
		return id
	}
	return ""
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
