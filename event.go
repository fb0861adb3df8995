package hookflow

import "fmt"

// Event is the parsed envelope handed to handlers: the validated record for
// the event's shape plus the wire event name it arrived under.
//
// Every event shape except security_advisory shares five well-known optional
// fields (action, sender, repository, organization, enterprise); the
// accessors below read them and return zero values when absent. Like Record,
// an Event never changes after Parse returns it.
type Event struct {
	name     string
	record   *Record
	fallback bool
}

// Name returns the wire event name ("pull_request", "push", ...).
func (e *Event) Name() string { return e.name }

// Record returns the validated record backing the event.
func (e *Event) Record() *Record { return e.record }

// Fallback reports whether exact parsing failed and the event carries the
// generic fallback shape instead of its declared one.
func (e *Event) Fallback() bool { return e.fallback }

// Action returns the payload's action field, or "" when the event has none.
func (e *Event) Action() string {
	v, _ := e.record.get("action")
	s, _ := v.(string)
	return s
}

// Sender returns the user that triggered the event, or nil.
func (e *Event) Sender() *Record { return e.record.Child("sender") }

// Repository returns the repository the event concerns, or nil.
func (e *Event) Repository() *Record { return e.record.Child("repository") }

// Organization returns the owning organization, or nil.
func (e *Event) Organization() *Record { return e.record.Child("organization") }

// Enterprise returns the owning enterprise, or nil.
func (e *Event) Enterprise() *Record { return e.record.Child("enterprise") }

// Installation returns the app installation the event was delivered for,
// or nil.
func (e *Event) Installation() *Record { return e.record.Child("installation") }

// repoFullName extracts repository.full_name for repository filtering. On
// the fallback shape the repository field is untyped, so dig into the raw
// map as well.
func (e *Event) repoFullName() string {
	if repo := e.Repository(); repo != nil {
		return repo.String("full_name")
	}
	if v, ok := e.record.get("repository"); ok {
		if m, ok := v.(map[string]any); ok {
			name, _ := m["full_name"].(string)
			return name
		}
	}
	return ""
}

// fallbackShape accepts anything: the five common fields are declared as
// untyped so no payload can fail against it, and every other key lands in
// the unknown bag.
var fallbackShape = &Shape{
	Name: "event",
	Fields: []Field{
		{Name: "action", Kind: KindAny},
		{Name: "sender", Kind: KindAny},
		{Name: "repository", Kind: KindAny},
		{Name: "organization", Kind: KindAny},
		{Name: "enterprise", Kind: KindAny},
		{Name: "installation", Kind: KindAny},
	},
}

// Parse builds the event envelope for a wire event name and decoded payload.
// It never fails for a decoded payload: precision is traded for
// availability, and every failure path degrades to the fallback shape.
//
//   - Unknown event name: logged, payload validated against the fallback
//     shape.
//   - Validation failure: logged with the structured field errors, payload
//     revalidated against the fallback shape.
//
// The fallback shape accepts any payload by construction; if it ever
// rejects one, the shape itself is broken and Parse panics.
func (c *Catalog) Parse(event string, payload map[string]any) *Event {
	e, _ := c.parse(event, payload)
	return e
}

// parse is Parse plus the degradation cause: nil on an exact parse,
// ErrUnknownEvent for a table miss, or the *ShapeError that forced the
// fallback.
func (c *Catalog) parse(event string, payload map[string]any) (*Event, error) {
	shape, err := c.Lookup(event)
	if err != nil {
		c.logger.Info("unknown event name, using fallback shape", "event", event)
		return c.parseFallback(event, payload), err
	}

	record, err := Validate(shape, payload)
	if err != nil {
		c.logger.Error("payload failed validation, using fallback shape",
			"event", event,
			"shape", shape.Name,
			"error", err,
		)
		return c.parseFallback(event, payload), err
	}

	return &Event{name: event, record: record}, nil
}

func (c *Catalog) parseFallback(event string, payload map[string]any) *Event {
	record, err := Validate(fallbackShape, payload)
	if err != nil {
		// The fallback shape declares every field untyped and optional, so
		// this is unreachable unless the shape definition itself regresses.
		panic(fmt.Sprintf("hookflow: fallback shape rejected payload for %q: %v", event, err))
	}
	return &Event{name: event, record: record, fallback: true}
}

// Parse parses an event against the default catalog.
func Parse(event string, payload map[string]any) *Event {
	return DefaultCatalog().Parse(event, payload)
}
