package hookflow

import (
	"context"
	"log/slog"
	"time"
)

// OnUnknownEventFunc is called when a dispatched event name has no entry in
// the catalog and the fallback shape was used.
type OnUnknownEventFunc func(ctx context.Context, event string)

// OnFallbackFunc is called when a payload failed validation against its
// declared shape and was re-parsed with the fallback shape. err is the
// *ShapeError describing the field failures.
type OnFallbackFunc func(ctx context.Context, event string, err error)

// OnHandlerErrorFunc is called when a handler returns an error or panics.
// Dispatch continues with the next handler regardless.
type OnHandlerErrorFunc func(ctx context.Context, event, handler string, err error, duration time.Duration)

// OnHandlerDoneFunc is called after a handler returns without error.
type OnHandlerDoneFunc func(ctx context.Context, event, handler string, duration time.Duration)

// OnDebugOverrideFunc is called when debug-flagged registrations suppress
// the normal handler set for an event. suppressed is the number of
// non-debug registrations for the event type, whether or not their filters
// would have matched.
type OnDebugOverrideFunc func(ctx context.Context, event string, suppressed int)

// hooks holds all configured observability callbacks.
type hooks struct {
	onUnknownEvent  []OnUnknownEventFunc
	onFallback      []OnFallbackFunc
	onHandlerError  []OnHandlerErrorFunc
	onHandlerDone   []OnHandlerDoneFunc
	onDebugOverride []OnDebugOverrideFunc
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger used for the registry's built-in
// log lines. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithCatalog sets the catalog used to parse events. Defaults to
// DefaultCatalog().
func WithCatalog(c *Catalog) Option {
	return func(r *Registry) {
		r.catalog = c
	}
}

// WithOnUnknownEvent adds a callback for dispatches of unregistered event
// names. Multiple callbacks are called in order.
//
// Example:
//
//	hookflow.WithOnUnknownEvent(func(ctx context.Context, event string) {
//	    metrics.Incr("webhook.unknown", "event:"+event)
//	})
func WithOnUnknownEvent(fn OnUnknownEventFunc) Option {
	return func(r *Registry) {
		r.hooks.onUnknownEvent = append(r.hooks.onUnknownEvent, fn)
	}
}

// WithOnFallback adds a callback for payloads that failed shape validation.
// Multiple callbacks are called in order.
//
// Example:
//
//	hookflow.WithOnFallback(func(ctx context.Context, event string, err error) {
//	    logger.Warn("schema drift", "event", event, "error", err)
//	})
func WithOnFallback(fn OnFallbackFunc) Option {
	return func(r *Registry) {
		r.hooks.onFallback = append(r.hooks.onFallback, fn)
	}
}

// WithOnHandlerError adds a callback for handler errors and recovered
// panics. Multiple callbacks are called in order.
//
// Example:
//
//	hookflow.WithOnHandlerError(func(ctx context.Context, event, handler string, err error, d time.Duration) {
//	    metrics.Incr("webhook.handler.error", "handler:"+handler)
//	})
func WithOnHandlerError(fn OnHandlerErrorFunc) Option {
	return func(r *Registry) {
		r.hooks.onHandlerError = append(r.hooks.onHandlerError, fn)
	}
}

// WithOnHandlerDone adds a callback for handlers that complete without
// error. Multiple callbacks are called in order.
//
// Example:
//
//	hookflow.WithOnHandlerDone(func(ctx context.Context, event, handler string, d time.Duration) {
//	    metrics.Timing("webhook.handler", d, "handler:"+handler)
//	})
func WithOnHandlerDone(fn OnHandlerDoneFunc) Option {
	return func(r *Registry) {
		r.hooks.onHandlerDone = append(r.hooks.onHandlerDone, fn)
	}
}

// WithOnDebugOverride adds a callback fired when debug registrations
// suppress the normal handler set for an event.
func WithOnDebugOverride(fn OnDebugOverrideFunc) Option {
	return func(r *Registry) {
		r.hooks.onDebugOverride = append(r.hooks.onDebugOverride, fn)
	}
}
