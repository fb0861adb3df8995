package hookflow

import "fmt"

// Kind identifies the wire type a field must carry. Validation is strict:
// a field declared as one kind rejects values of any other kind, with no
// coercion between families (a numeric string is not a number).
type Kind int

const (
	// KindString accepts JSON strings.
	KindString Kind = iota

	// KindNumber accepts JSON numbers. JSON carries a single numeric type,
	// so integers and floats are one family; decoded values are stored as-is.
	KindNumber

	// KindBool accepts JSON booleans.
	KindBool

	// KindObject accepts a JSON object validated against the field's Of shape.
	KindObject

	// KindList accepts a JSON array whose every element validates against the
	// field's Of shape.
	KindList

	// KindMap accepts a JSON object passed through as an opaque map without
	// validation. Use for payload sections with no stable structure.
	KindMap

	// KindAny accepts any value unvalidated. Used by the fallback event shape,
	// which must never fail.
	KindAny
)

// String returns the kind name as it appears in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares a single field of a Shape.
type Field struct {
	// Name is the field name on the validated record. Unique within a shape.
	Name string

	// Wire is the key looked up in the raw payload. Empty means Name.
	Wire string

	// Required marks the field mandatory: a payload missing it fails
	// validation. Optional fields fall back to Default.
	Required bool

	// Kind is the wire type the field accepts.
	Kind Kind

	// Of references the element shape for KindObject and KindList fields.
	Of *Shape

	// Default is the value used when an optional field is absent. Missing
	// optional KindList fields always get a fresh empty slice regardless.
	Default any
}

// wire returns the payload key for the field.
func (f Field) wire() string {
	if f.Wire != "" {
		return f.Wire
	}
	return f.Name
}

// Shape is the declarative descriptor for one record type: an ordered field
// list consumed by Validate. Shapes are data, built once and never mutated;
// adding a new payload type means declaring a new Shape, not writing code.
type Shape struct {
	// Name identifies the shape in error messages and catalogs.
	Name string

	// Fields is the ordered field list. Order is preserved in error reporting.
	Fields []Field
}

// check verifies the shape's structural invariants. Called when a shape is
// registered with a Catalog; a bad shape is a programming error.
func (s *Shape) check() error {
	if s.Name == "" {
		return fmt.Errorf("shape has no name")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("shape %q: field with empty name", s.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("shape %q: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Kind {
		case KindObject, KindList:
			if f.Of == nil {
				return fmt.Errorf("shape %q: field %q is %s but has no element shape", s.Name, f.Name, f.Kind)
			}
		}
	}
	return nil
}
