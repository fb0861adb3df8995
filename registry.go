package hookflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Handler processes one parsed event. Handlers run synchronously on the
// dispatching goroutine; a returned error (or panic) is reported and
// isolated, never propagated to the dispatch caller or to later handlers.
type Handler func(ctx context.Context, event *Event) error

// registration is one entry in the dispatch table.
type registration struct {
	event   string
	name    string
	actions map[string]struct{} // nil means any action
	repos   map[string]struct{} // nil means any repository
	filter  func(*Event) bool   // nil means no extra predicate
	debug   bool
	handler Handler
}

// matches reports whether the registration's filters accept the event.
// Debug entries bypass filters entirely when the debug override is active.
func (reg *registration) matches(e *Event) bool {
	if reg.actions != nil {
		if _, ok := reg.actions[e.Action()]; !ok {
			return false
		}
	}
	if reg.repos != nil {
		if _, ok := reg.repos[e.repoFullName()]; !ok {
			return false
		}
	}
	if reg.filter != nil && !reg.filter(e) {
		return false
	}
	return true
}

// HookOption configures a single registration.
type HookOption func(*registration)

// WithActions restricts the registration to the given payload actions.
// Without it the handler fires for every action.
func WithActions(actions ...string) HookOption {
	return func(reg *registration) {
		reg.actions = make(map[string]struct{}, len(actions))
		for _, a := range actions {
			reg.actions[a] = struct{}{}
		}
	}
}

// WithRepositories restricts the registration to events whose
// repository.full_name is in the given set.
func WithRepositories(repos ...string) HookOption {
	return func(reg *registration) {
		reg.repos = make(map[string]struct{}, len(repos))
		for _, r := range repos {
			reg.repos[r] = struct{}{}
		}
	}
}

// WithFilter adds an arbitrary predicate to the registration. The handler
// fires only when the predicate accepts the event.
func WithFilter(fn func(*Event) bool) HookOption {
	return func(reg *registration) {
		reg.filter = fn
	}
}

// WithDebug marks the registration as a debug hook. When any debug hook
// exists for an event type, dispatching that event runs only the debug
// hooks and suppresses everything else, filters included. Use it to isolate
// a single handler while developing against live deliveries.
func WithDebug() HookOption {
	return func(reg *registration) {
		reg.debug = true
	}
}

// WithName sets the handler identity used in logs and error callbacks.
// Defaults to "hook-N" in registration order.
func WithName(name string) HookOption {
	return func(reg *registration) {
		reg.name = name
	}
}

// Registry routes parsed events to registered handlers.
//
// The dispatch table is explicit state with a simple lifecycle: empty at
// construction, populated by On, emptied again by Reset. Registrations are
// append-only between resets and never merged — registering the same
// handler twice fires it twice. Multiple independent registries can coexist;
// tests should build their own rather than share Default.
//
// All methods are safe for concurrent use: the table is guarded so a
// dispatch observes a consistent snapshot for its entire selection step.
// Handlers themselves run sequentially in registration order, and Dispatch
// blocks until every applicable handler has returned. A hanging handler
// therefore blocks dispatch indefinitely; handlers are expected to be fast
// and synchronous, and no cancellation mechanism is provided.
type Registry struct {
	mu      sync.RWMutex
	entries []*registration
	hooks   hooks
	catalog *Catalog
	logger  *slog.Logger
}

// New creates a Registry with the given options.
//
// Example:
//
//	r := hookflow.New(
//	    hookflow.WithLogger(logger),
//	    hookflow.WithOnHandlerError(func(ctx context.Context, event, handler string, err error, d time.Duration) {
//	        metrics.Incr("webhook.handler.error", "handler:"+handler)
//	    }),
//	)
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = DefaultCatalog()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// On registers a handler for a wire event name.
//
// Example:
//
//	r.On("pull_request", reviewBot.Handle,
//	    hookflow.WithActions("opened", "reopened"),
//	    hookflow.WithRepositories("acme/api"),
//	)
func (r *Registry) On(event string, h Handler, opts ...HookOption) {
	reg := &registration{event: event, handler: h}
	for _, opt := range opts {
		opt(reg)
	}
	r.mu.Lock()
	if reg.name == "" {
		reg.name = fmt.Sprintf("hook-%d", len(r.entries)+1)
	}
	r.entries = append(r.entries, reg)
	r.mu.Unlock()
}

// Reset empties the dispatch table so registration can start over. Reset is
// idempotent and always legal, including on an already-empty registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Dispatch parses the payload for the given wire event name and invokes the
// applicable handlers sequentially, in registration order, blocking until
// each returns before starting the next.
//
// Selection: if any debug registration exists for the event type, exactly
// the debug registrations run. Otherwise every registration for the event
// type whose action, repository, and custom filters accept the event runs.
//
// A handler error or panic is reported via hooks and the registry logger
// and never stops the remaining handlers; Dispatch always returns control
// after the last handler.
func (r *Registry) Dispatch(ctx context.Context, event string, payload map[string]any) {
	e, cause := r.catalog.parse(event, payload)
	r.report(ctx, event, cause)
	r.run(ctx, e)
}

// report fires the unknown-event and fallback callbacks when parsing
// degraded to the fallback shape. The parse path already logged the cause.
func (r *Registry) report(ctx context.Context, event string, cause error) {
	switch {
	case cause == nil:
	case errors.Is(cause, ErrUnknownEvent):
		for _, fn := range r.hooks.onUnknownEvent {
			fn(ctx, event)
		}
	default:
		for _, fn := range r.hooks.onFallback {
			fn(ctx, event, cause)
		}
	}
}

// run selects and invokes the applicable handlers.
func (r *Registry) run(ctx context.Context, e *Event) {
	r.mu.RLock()
	snapshot := make([]*registration, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	var debug, normal []*registration
	suppressed := 0
	for _, reg := range snapshot {
		if reg.event != e.Name() {
			continue
		}
		if reg.debug {
			debug = append(debug, reg)
			continue
		}
		suppressed++
		if reg.matches(e) {
			normal = append(normal, reg)
		}
	}

	applicable := normal
	if len(debug) > 0 {
		applicable = debug
		r.logger.Info("debug hooks registered, suppressing normal handlers",
			"event", e.Name(),
			"debug_handlers", len(debug),
			"suppressed", suppressed,
		)
		for _, fn := range r.hooks.onDebugOverride {
			fn(ctx, e.Name(), suppressed)
		}
	}

	deliveryID := uuid.NewString()
	logger := r.logger.With("event", e.Name(), "delivery_id", deliveryID)

	for _, reg := range applicable {
		r.invoke(ctx, logger, reg, e)
	}
}

// invoke runs one handler with panic isolation.
func (r *Registry) invoke(ctx context.Context, logger *slog.Logger, reg *registration, e *Event) {
	start := time.Now()
	err := func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("handler panic: %v", rec)
			}
		}()
		return reg.handler(ctx, e)
	}()
	duration := time.Since(start)

	if err != nil {
		logger.Error("handler failed", "handler", reg.name, "error", err, "duration", duration)
		for _, fn := range r.hooks.onHandlerError {
			fn(ctx, e.Name(), reg.name, err, duration)
		}
		return
	}
	for _, fn := range r.hooks.onHandlerDone {
		fn(ctx, e.Name(), reg.name, duration)
	}
}

// defaultRegistry backs the package-level registration API for hosts that
// want a single process-wide table, mirroring the Registry methods.
var defaultRegistry = New()

// Default returns the package-level registry.
func Default() *Registry { return defaultRegistry }

// On registers a handler on the package-level registry.
func On(event string, h Handler, opts ...HookOption) {
	defaultRegistry.On(event, h, opts...)
}

// Dispatch dispatches on the package-level registry.
func Dispatch(ctx context.Context, event string, payload map[string]any) {
	defaultRegistry.Dispatch(ctx, event, payload)
}

// Reset empties the package-level registry.
func Reset() {
	defaultRegistry.Reset()
}
