package hookflow

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by DispatchBytes when the input is not valid
// JSON or not a JSON object.
var ErrInvalidJSON = errors.New("hookflow: invalid JSON payload")

// Peek provides cheap field access over undecoded webhook bytes. Use it to
// route or filter deliveries before paying for a full decode.
type Peek struct {
	raw []byte
}

// PeekBytes wraps raw webhook bytes for field queries. Returns
// ErrInvalidJSON when the bytes are not valid JSON.
func PeekBytes(raw []byte) (Peek, error) {
	if !gjson.ValidBytes(raw) {
		return Peek{}, ErrInvalidJSON
	}
	return Peek{raw: raw}, nil
}

// Action returns the payload's action field, or "" when absent.
func (p Peek) Action() string {
	return p.str("action")
}

// Repository returns repository.full_name, or "" when absent.
func (p Peek) Repository() string {
	return p.str("repository.full_name")
}

// Has reports whether the gjson path exists in the payload.
func (p Peek) Has(path string) bool {
	return gjson.GetBytes(p.raw, path).Exists()
}

// Get returns the string value at the gjson path, or false when the path is
// absent or not a string.
func (p Peek) Get(path string) (string, bool) {
	r := gjson.GetBytes(p.raw, path)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (p Peek) str(path string) string {
	s, _ := p.Get(path)
	return s
}

// DispatchBytes dispatches a raw webhook delivery without requiring the
// caller to decode it first. The payload is peeked for the action and
// repository fields; when no registration could possibly match, the full
// decode is skipped entirely. Otherwise the bytes are decoded and dispatched
// exactly as Dispatch would.
//
// The only error condition is undecodable input; handler failures are
// isolated as in Dispatch.
func (r *Registry) DispatchBytes(ctx context.Context, event string, raw []byte) error {
	peek, err := PeekBytes(raw)
	if err != nil {
		return err
	}
	if !r.couldMatch(event, peek) {
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ErrInvalidJSON
	}
	r.Dispatch(ctx, event, payload)
	return nil
}

// couldMatch reports whether any registration might fire for the delivery,
// judged only by the cheap peek fields. Debug registrations always run, and
// custom filter predicates need the parsed event, so both force a decode.
func (r *Registry) couldMatch(event string, p Peek) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.entries {
		if reg.event != event {
			continue
		}
		if reg.debug || reg.filter != nil {
			return true
		}
		if reg.actions != nil {
			if _, ok := reg.actions[p.Action()]; !ok {
				continue
			}
		}
		if reg.repos != nil {
			if _, ok := reg.repos[p.Repository()]; !ok {
				continue
			}
		}
		return true
	}
	return false
}
