// Package hookflow turns loosely-structured GitHub webhook payloads into
// typed, immutable records and routes them to registered handlers.
//
// The package has three independent cores: a shape-driven validation engine
// that builds immutable records from decoded JSON, a hypermedia URL template
// expander, and a registry that matches parsed events against handler
// registrations. Around them sits a built-in catalog covering the full
// GitHub webhook event table.
//
// # Quick Start
//
// Register handlers and feed deliveries:
//
//	r := hookflow.New()
//
//	r.On("pull_request", func(ctx context.Context, e *hookflow.Event) error {
//	    pr := e.Record().Child("pull_request")
//	    fmt.Println(e.Action(), pr.Int("number"), pr.String("title"))
//	    return nil
//	}, hookflow.WithActions("opened", "reopened"))
//
//	r.Dispatch(ctx, eventName, decodedPayload)
//
// Or skip the decode for deliveries nothing will handle:
//
//	err := r.DispatchBytes(ctx, eventName, rawBody)
//
// # Shapes and Validation
//
// Every payload type is described by a Shape: an ordered field list naming
// each field's wire key, kind, and whether it is required. Validate checks a
// decoded payload against a shape and produces a Record. Validation is
// strict about what it models and permissive about what it does not:
//
//   - A declared field with the wrong kind of value fails with a KindError;
//     there is no coercion, so upstream schema drift surfaces immediately.
//   - A missing required field fails with a MissingFieldError.
//   - Wire keys the shape does not declare never fail; they are kept in the
//     record's Unknown bag for drift detection.
//
// Records are immutable: no setters, and accessors that expose maps or
// slices return copies.
//
// # Parsing and the Fallback Shape
//
// Catalog.Parse maps a wire event name to its envelope shape and validates
// the payload. Parse never fails: an unknown event name or a validation
// failure is logged and the payload is re-parsed with a generic fallback
// shape that accepts anything. Handlers always receive a usable Event;
// precision is traded for availability.
//
// # Template URLs
//
// GitHub embeds URL templates like
//
//	https://api.github.com/users/octocat/following{/other_user}
//
// in its payloads. Expand fills them:
//
//	user.Expand("following_url", hookflow.P("other_user", "octocat"))
//
// A nil or empty-string parameter truncates the template at its {/name}
// token and stops processing. Only nil and "" count as absent; numeric 0
// and boolean false are substituted like any other value.
//
// # Dispatch Rules
//
// Handlers are selected per delivery:
//
//  1. If any debug registration exists for the event type, exactly the
//     debug registrations run and everything else is suppressed.
//  2. Otherwise every registration for the event type whose action,
//     repository, and custom filters accept the event runs.
//
// Handlers run sequentially, in registration order, on the dispatching
// goroutine. A handler error or panic is logged and reported through hooks
// but never stops the remaining handlers and never reaches the dispatch
// caller. Duplicate registrations are not merged; both fire.
//
// # Custom Shapes
//
// Hosts can extend or override the catalog without writing Go by loading a
// shape document (JSON or YAML), validated against a meta-schema before
// anything is installed:
//
//	err := catalog.Define(doc)
//
// See Define for the document format.
//
// # Thread Safety
//
// Validate, Expand, and Parse are pure and safe for concurrent use. The
// registry serializes registration, reset, and the selection step of every
// dispatch, so concurrent dispatchers always observe a consistent table.
// Handlers are expected to be fast synchronous callbacks; a hanging handler
// blocks its dispatcher indefinitely, as no cancellation mechanism is
// defined.
package hookflow
