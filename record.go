package hookflow

// Record is a validated, immutable view of one payload object. Records are
// built only by Validate; they hold the declared field values keyed by field
// name plus a separate bag of wire keys the shape does not declare.
//
// A Record never changes after Validate returns it. There are no setters,
// the backing maps are unexported, and accessors that expose maps or slices
// return copies, so callers cannot reach the internal state at all.
type Record struct {
	shape   *Shape
	fields  map[string]any
	unknown map[string]any
}

// Shape returns the name of the shape the record was validated against.
func (r *Record) Shape() string {
	return r.shape.Name
}

// Has reports whether the named declared field carried a value in the
// payload. Optional fields that fell back to their default report false.
func (r *Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Get returns the value of a declared field. The second return is false
// when the field was absent from the payload. Map and slice values are
// copied, like every other accessor.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	if !ok {
		return nil, false
	}
	if list, isList := v.([]*Record); isList {
		out := make([]*Record, len(list))
		copy(out, list)
		return out, true
	}
	return copyValue(v), true
}

// get is the uncopied lookup backing the typed accessors.
func (r *Record) get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// String returns the named field as a string, or "" when absent or not a
// string (only KindAny fields can hold a non-string here).
func (r *Record) String(name string) string {
	s, _ := r.fields[name].(string)
	return s
}

// Int returns the named numeric field truncated to int64, or 0 when absent.
func (r *Record) Int(name string) int64 {
	switch n := r.fields[name].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

// Float returns the named numeric field, or 0 when absent.
func (r *Record) Float(name string) float64 {
	switch n := r.fields[name].(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// Bool returns the named boolean field, or false when absent.
func (r *Record) Bool(name string) bool {
	b, _ := r.fields[name].(bool)
	return b
}

// Child returns the nested record held by a KindObject field, or nil when
// the field is absent.
func (r *Record) Child(name string) *Record {
	c, _ := r.fields[name].(*Record)
	return c
}

// Children returns the records held by a KindList field. Absent optional
// list fields validate to an empty slice, so the result is never nil for a
// declared list field. The returned slice is a copy.
func (r *Record) Children(name string) []*Record {
	list, ok := r.fields[name].([]*Record)
	if !ok {
		return nil
	}
	out := make([]*Record, len(list))
	copy(out, list)
	return out
}

// Map returns the opaque map held by a KindMap field. The returned map is a
// copy; mutating it does not touch the record.
func (r *Record) Map(name string) map[string]any {
	m, ok := r.fields[name].(map[string]any)
	if !ok {
		return nil
	}
	return copyMap(m)
}

// Unknown returns the wire keys present in the payload but not declared by
// the shape. Unknown keys never fail validation; they are retained so hosts
// can detect upstream schema drift. The returned map is a copy.
func (r *Record) Unknown() map[string]any {
	return copyMap(r.unknown)
}

// Expand treats the named string field as a URL template and fills it with
// the given params. Returns "" when the field is absent. See Expand for the
// placeholder and absence semantics.
//
//	user.Expand("following_url", hookflow.P("other_user", "octocat"))
func (r *Record) Expand(name string, params ...Param) string {
	tmpl, ok := r.fields[name].(string)
	if !ok {
		return ""
	}
	return Expand(tmpl, params...)
}

// copyMap deep-copies map and list values so neither the caller's payload
// nor an accessor's return value can alias the record's internal state.
func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
