package hookflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestPeekBytes(t *testing.T) {
	raw := []byte(`{
		"action": "opened",
		"number": 42,
		"repository": {"full_name": "acme/api"},
		"pull_request": {"draft": false}
	}`)

	p, err := PeekBytes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Action(); got != "opened" {
		t.Errorf("Action() = %q, want %q", got, "opened")
	}
	if got := p.Repository(); got != "acme/api" {
		t.Errorf("Repository() = %q, want %q", got, "acme/api")
	}
	if !p.Has("pull_request.draft") {
		t.Error("Has(pull_request.draft) = false")
	}
	if p.Has("pull_request.merged") {
		t.Error("Has(pull_request.merged) = true for absent path")
	}
	if v, ok := p.Get("repository.full_name"); !ok || v != "acme/api" {
		t.Errorf("Get(repository.full_name) = %q, %v", v, ok)
	}
	// number is not a string; Get reports it absent.
	if _, ok := p.Get("number"); ok {
		t.Error("Get(number) = true for non-string value")
	}

	if _, err := PeekBytes([]byte(`{"action": `)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("truncated JSON: err = %v, want ErrInvalidJSON", err)
	}
}

func TestDispatchBytes(t *testing.T) {
	newRegistry := func() (*Registry, *[]string) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		catalog := NewCatalog(logger)
		registerGithub(catalog)
		r := New(WithLogger(logger), WithCatalog(catalog))
		calls := new([]string)
		return r, calls
	}

	raw := []byte(`{
		"action": "created",
		"repository": {
			"id": 7, "name": "api", "full_name": "acme/api",
			"owner": {"login": "acme", "id": 1}
		},
		"sender": {"login": "doodla", "id": 2}
	}`)

	t.Run("invalid JSON", func(t *testing.T) {
		r, _ := newRegistry()
		if err := r.DispatchBytes(context.Background(), "star", []byte("not json")); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("err = %v, want ErrInvalidJSON", err)
		}
	})

	t.Run("non-object JSON", func(t *testing.T) {
		r, calls := newRegistry()
		r.On("star", record(calls, "hit"))
		err := r.DispatchBytes(context.Background(), "star", []byte(`[1, 2, 3]`))
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("err = %v, want ErrInvalidJSON", err)
		}
		if len(*calls) != 0 {
			t.Errorf("handler fired on non-object payload")
		}
	})

	t.Run("dispatches on match", func(t *testing.T) {
		r, calls := newRegistry()
		r.On("star", record(calls, "hit"), WithActions("created"), WithRepositories("acme/api"))
		if err := r.DispatchBytes(context.Background(), "star", raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*calls) != 1 {
			t.Errorf("calls = %v, want one", *calls)
		}
	})

	t.Run("skips decode when nothing could match", func(t *testing.T) {
		r, calls := newRegistry()
		r.On("star", record(calls, "wrong-action"), WithActions("deleted"))
		r.On("star", record(calls, "wrong-repo"), WithRepositories("acme/web"))
		r.On("watch", record(calls, "wrong-event"))
		if err := r.DispatchBytes(context.Background(), "star", raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*calls) != 0 {
			t.Errorf("calls = %v, want none", *calls)
		}
	})

	t.Run("custom filter forces a decode", func(t *testing.T) {
		r, calls := newRegistry()
		r.On("star", record(calls, "filtered"),
			WithFilter(func(e *Event) bool { return e.Action() == "created" }))
		if err := r.DispatchBytes(context.Background(), "star", raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*calls) != 1 {
			t.Error("filtered handler never ran")
		}
	})

	t.Run("debug hook forces a decode", func(t *testing.T) {
		r, calls := newRegistry()
		r.On("star", record(calls, "debug"), WithDebug(), WithActions("never"))
		if err := r.DispatchBytes(context.Background(), "star", raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*calls) != 1 {
			t.Errorf("calls = %v, want the debug hook", *calls)
		}
	})
}
