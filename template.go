package hookflow

import (
	"fmt"
	"strings"
)

// Param is one named value for template expansion. Order matters: Expand
// processes params in the order given, which must match the declaration
// order of the URL's placeholders.
type Param struct {
	Name  string
	Value any
}

// P builds a Param. A nil value marks the parameter absent.
func P(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// Expand fills a hypermedia URL template such as
//
//	https://api.github.com/users/octocat/following{/other_user}
//	https://api.github.com/repos/o/r/issues/comments{/number}{?since}
//
// Two placeholder forms are understood: {name} substitutes the value inline,
// and {/name} substitutes "/" + value.
//
// Params are scanned in order. A parameter whose value is nil or the empty
// string truncates the template at its {/name} token (dropping the token and
// everything after it) and stops all further processing. Only nil and ""
// count as absent: numeric 0 and boolean false are legitimate values and are
// substituted normally. Values that are not strings are stringified with
// their natural representation.
//
// Expand is pure and safe for concurrent use.
func Expand(template string, params ...Param) string {
	for _, p := range params {
		if p.Value == nil || p.Value == "" {
			if i := strings.Index(template, "{/"+p.Name+"}"); i >= 0 {
				template = template[:i]
			}
			break
		}

		value := stringify(p.Value)
		inline := "{" + p.Name + "}"
		segment := "{/" + p.Name + "}"
		switch {
		case strings.Contains(template, inline):
			template = strings.ReplaceAll(template, inline, value)
		case strings.Contains(template, segment):
			template = strings.ReplaceAll(template, segment, "/"+value)
		}
	}
	return template
}

// stringify renders a template value. Floats that carry integral values come
// out of JSON decoding as float64; render them without a fractional part so
// an id of 42 does not become "42.000000".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case float32:
		if t == float32(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
