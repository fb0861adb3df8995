package hookflow

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required field absent from the payload. Path
// is the field name, prefixed with parent fields for nested failures
// ("pull_request.user.login").
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path)
}

// KindError reports a field present with the wrong kind of value. No
// coercion is attempted: a numeric string supplied for a number field is a
// KindError, not a number.
type KindError struct {
	// Path is the field location, including parent fields and list indices
	// ("commits[2].author").
	Path string

	// Want is the declared kind.
	Want Kind

	// Got names the kind actually found on the wire.
	Got string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("field %q: want %s, got %s", e.Path, e.Want, e.Got)
}

// ShapeError aggregates every field-level failure found while validating a
// payload against one shape.
type ShapeError struct {
	// Shape names the shape that rejected the payload.
	Shape string

	// Fields holds the individual *MissingFieldError and *KindError values,
	// in shape field order.
	Fields []error
}

func (e *ShapeError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, err := range e.Fields {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("shape %q: %s", e.Shape, strings.Join(msgs, "; "))
}

// Unwrap exposes the field errors to errors.Is and errors.As.
func (e *ShapeError) Unwrap() []error {
	return e.Fields
}

// Validate checks a decoded payload against a shape and builds the immutable
// record. The contract, for each declared field in order:
//
//   - The value is looked up by the field's wire key, falling back to the
//     field name when the two differ. JSON null counts as absent.
//   - Absent and required: a MissingFieldError is recorded.
//   - Absent and optional: the field falls back to its default. A missing
//     list field always gets its own fresh empty slice.
//   - Present: the value must match the declared kind exactly. Object and
//     list fields validate recursively; a child failure surfaces with the
//     parent field (and list index) prepended to its path. Map and Any
//     fields pass through unvalidated.
//
// Wire keys the shape does not declare never fail validation; they are
// retained on the record's Unknown bag. The engine is permissive about
// fields it does not model and strict only about fields it does.
//
// On failure the returned error is a *ShapeError carrying every field
// failure found. Validate performs no I/O and no logging.
func Validate(shape *Shape, payload map[string]any) (*Record, error) {
	fields := make(map[string]any, len(shape.Fields))
	consumed := make(map[string]struct{}, len(shape.Fields))
	var errs []error

	for _, f := range shape.Fields {
		wire := f.wire()
		value, ok := payload[wire]
		if ok {
			consumed[wire] = struct{}{}
		} else if wire != f.Name {
			if value, ok = payload[f.Name]; ok {
				consumed[f.Name] = struct{}{}
			}
		}
		if value == nil {
			ok = false
		}

		if !ok {
			if f.Required {
				errs = append(errs, &MissingFieldError{Path: f.Name})
				continue
			}
			if f.Kind == KindList {
				fields[f.Name] = []*Record{}
			} else if f.Default != nil {
				fields[f.Name] = f.Default
			}
			continue
		}

		v, ferrs := validateField(f, value)
		if len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		fields[f.Name] = v
	}

	unknown := make(map[string]any)
	for k, v := range payload {
		if _, ok := consumed[k]; ok {
			continue
		}
		unknown[k] = copyValue(v)
	}

	if len(errs) > 0 {
		return nil, &ShapeError{Shape: shape.Name, Fields: errs}
	}
	return &Record{shape: shape, fields: fields, unknown: unknown}, nil
}

// validateField checks one present value against its field declaration and
// returns the value to store.
func validateField(f Field, value any) (any, []error) {
	switch f.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
		}
		return value, nil

	case KindNumber:
		switch value.(type) {
		case float64, float32, int, int64, int32:
			return value, nil
		}
		return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}

	case KindBool:
		if _, ok := value.(bool); !ok {
			return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
		}
		return value, nil

	case KindObject:
		sub, ok := value.(map[string]any)
		if !ok {
			return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
		}
		child, err := Validate(f.Of, sub)
		if err != nil {
			return nil, prefixErrors(err, f.Name)
		}
		return child, nil

	case KindList:
		list, ok := value.([]any)
		if !ok {
			return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
		}
		out := make([]*Record, 0, len(list))
		for i, elem := range list {
			at := fmt.Sprintf("%s[%d]", f.Name, i)
			sub, ok := elem.(map[string]any)
			if !ok {
				return nil, []error{&KindError{Path: at, Want: KindObject, Got: kindName(elem)}}
			}
			child, err := Validate(f.Of, sub)
			if err != nil {
				return nil, prefixErrors(err, at)
			}
			out = append(out, child)
		}
		return out, nil

	case KindMap:
		m, ok := value.(map[string]any)
		if !ok {
			return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
		}
		return copyMap(m), nil

	case KindAny:
		return copyValue(value), nil

	default:
		return nil, []error{&KindError{Path: f.Name, Want: f.Kind, Got: kindName(value)}}
	}
}

// prefixErrors rewrites a child ShapeError's field paths to include the
// parent location.
func prefixErrors(err error, parent string) []error {
	se, ok := err.(*ShapeError)
	if !ok {
		return []error{err}
	}
	out := make([]error, 0, len(se.Fields))
	for _, fe := range se.Fields {
		switch e := fe.(type) {
		case *MissingFieldError:
			out = append(out, &MissingFieldError{Path: parent + "." + e.Path})
		case *KindError:
			out = append(out, &KindError{Path: parent + "." + e.Path, Want: e.Want, Got: e.Got})
		default:
			out = append(out, fe)
		}
	}
	return out
}

// kindName names a wire value's kind for error messages.
func kindName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, float32, int, int64, int32:
		return "number"
	case bool:
		return "bool"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
