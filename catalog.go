package hookflow

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnknownEvent is returned by Catalog.Lookup when an event name has no
// registered shape. Parse absorbs it into the fallback path; it is exported
// for hosts that want to probe the table directly.
var ErrUnknownEvent = errors.New("hookflow: unknown event name")

// ErrUnknownShape is returned when a shape name cannot be resolved.
var ErrUnknownShape = errors.New("hookflow: unknown shape name")

// Catalog maps wire event names to event shapes and holds the record shapes
// those event shapes reference. A Catalog is a plain value with an explicit
// lifecycle, so hosts and tests can build isolated catalogs instead of
// sharing process-wide state.
//
// All methods are safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	shapes map[string]*Shape
	events map[string]*Shape
	logger *slog.Logger
}

// NewCatalog returns an empty catalog. Most callers want DefaultCatalog,
// which is pre-populated with the GitHub shapes and event table.
func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		shapes: make(map[string]*Shape),
		events: make(map[string]*Shape),
		logger: logger,
	}
}

// RegisterShape adds a record shape to the catalog so event shapes and
// external shape documents can reference it by name. Registering a name
// again replaces the previous shape.
func (c *Catalog) RegisterShape(s *Shape) error {
	if err := s.check(); err != nil {
		return err
	}
	c.mu.Lock()
	c.shapes[s.Name] = s
	c.mu.Unlock()
	return nil
}

// RegisterEvent maps a wire event name to its envelope shape.
func (c *Catalog) RegisterEvent(event string, s *Shape) error {
	if event == "" {
		return fmt.Errorf("hookflow: empty event name")
	}
	if err := s.check(); err != nil {
		return err
	}
	c.mu.Lock()
	c.events[event] = s
	c.mu.Unlock()
	return nil
}

// Override replaces the shape for an already-known event name. It is the
// supported substitute for subclass swapping: callers that need extra fields
// on an event declare a richer shape and install it per event name.
func (c *Catalog) Override(event string, s *Shape) error {
	c.mu.RLock()
	_, known := c.events[event]
	c.mu.RUnlock()
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return c.RegisterEvent(event, s)
}

// Shape resolves a record shape by name.
func (c *Catalog) Shape(name string) (*Shape, error) {
	c.mu.RLock()
	s, ok := c.shapes[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s, nil
}

// Lookup resolves the envelope shape for a wire event name. Matching is
// exact and case-sensitive.
func (c *Catalog) Lookup(event string) (*Shape, error) {
	c.mu.RLock()
	s, ok := c.events[event]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return s, nil
}

// Events returns the registered wire event names.
func (c *Catalog) Events() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.events))
	for name := range c.events {
		names = append(names, name)
	}
	return names
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the shared catalog pre-populated with the built-in
// GitHub record shapes and the full webhook event table.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog(nil)
		registerGithub(defaultCatalog)
	})
	return defaultCatalog
}
