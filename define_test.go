package hookflow

import (
	"strings"
	"testing"
)

const workflowJobDoc = `{
	"shapes": [
		{
			"name": "workflow_job_detail",
			"fields": [
				{"name": "id", "kind": "number", "required": true},
				{"name": "status", "kind": "string"},
				{"name": "runner", "kind": "object", "of": "user"},
				{"name": "steps", "kind": "any"}
			]
		},
		{
			"name": "workflow_job",
			"common": true,
			"fields": [
				{"name": "workflow_job", "kind": "object", "of": "workflow_job_detail", "required": true}
			]
		}
	],
	"events": {"workflow_job": "workflow_job"}
}`

func TestDefine(t *testing.T) {
	t.Run("installs shapes and events", func(t *testing.T) {
		c := quietCatalog(t)
		if err := c.Define([]byte(workflowJobDoc)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		e := c.Parse("workflow_job", map[string]any{
			"action": "completed",
			"workflow_job": map[string]any{
				"id":     float64(9001),
				"status": "completed",
				"runner": map[string]any{"login": "runner-1", "id": float64(3)},
				"steps":  []any{"checkout", "build"},
			},
			"sender": map[string]any{"login": "doodla", "id": float64(2)},
		})
		if e.Fallback() {
			t.Fatal("expected exact parse against the defined shape")
		}
		job := e.Record().Child("workflow_job")
		if job == nil {
			t.Fatal("workflow_job child missing")
		}
		if got := job.Int("id"); got != 9001 {
			t.Errorf("id = %d", got)
		}
		if job.Child("runner").String("login") != "runner-1" {
			t.Errorf("runner = %v", job.Child("runner"))
		}
		// common: true carries the standard envelope.
		if e.Sender().String("login") != "doodla" {
			t.Errorf("sender = %v", e.Sender())
		}
	})

	t.Run("remaps a built-in event", func(t *testing.T) {
		c := quietCatalog(t)
		doc := `{
			"shapes": [{
				"name": "bare_star",
				"fields": [{"name": "starred_at", "kind": "string", "required": true}]
			}],
			"events": {"star": "bare_star"}
		}`
		if err := c.Define([]byte(doc)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := c.Parse("star", map[string]any{"starred_at": "now"})
		if e.Fallback() || e.Record().Shape() != "bare_star" {
			t.Errorf("star did not remap: fallback=%v shape=%v", e.Fallback(), e.Record().Shape())
		}
	})

	t.Run("rejects a malformed document before installing", func(t *testing.T) {
		c := quietCatalog(t)
		doc := `{
			"shapes": [{
				"name": "broken",
				"fields": [{"name": "x", "kind": "integer"}]
			}],
			"events": {"broken_event": "broken"}
		}`
		err := c.Define([]byte(doc))
		if err == nil {
			t.Fatal("expected meta-schema rejection")
		}
		if !strings.Contains(err.Error(), "rejected") {
			t.Errorf("err = %v", err)
		}
		if _, lookupErr := c.Lookup("broken_event"); lookupErr == nil {
			t.Error("rejected document must not install events")
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		c := quietCatalog(t)
		if err := c.Define([]byte(`{"shapes": `)); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unresolved shape reference installs nothing", func(t *testing.T) {
		c := quietCatalog(t)
		doc := `{
			"shapes": [
				{
					"name": "fine",
					"fields": [{"name": "x", "kind": "string"}]
				},
				{
					"name": "dangling",
					"fields": [{"name": "thing", "kind": "object", "of": "no_such_shape"}]
				}
			],
			"events": {"fine_event": "fine"}
		}`
		err := c.Define([]byte(doc))
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "no_such_shape") {
			t.Errorf("err = %v", err)
		}
		if _, shapeErr := c.Shape("fine"); shapeErr == nil {
			t.Error("failed document must not install earlier shapes")
		}
		if _, lookupErr := c.Lookup("fine_event"); lookupErr == nil {
			t.Error("failed document must not install events")
		}
	})

	t.Run("unresolved event mapping installs nothing", func(t *testing.T) {
		c := quietCatalog(t)
		doc := `{
			"shapes": [{
				"name": "fine",
				"fields": [{"name": "x", "kind": "string"}]
			}],
			"events": {
				"fine_event": "fine",
				"broken_event": "no_such_shape"
			}
		}`
		if err := c.Define([]byte(doc)); err == nil {
			t.Fatal("expected error")
		}
		if _, shapeErr := c.Shape("fine"); shapeErr == nil {
			t.Error("failed document must not install shapes")
		}
		if _, lookupErr := c.Lookup("fine_event"); lookupErr == nil {
			t.Error("failed document must not install any event mapping")
		}
	})
}

func TestDefineYAML(t *testing.T) {
	c := quietCatalog(t)
	doc := `
shapes:
  - name: deploy_marker
    common: true
    fields:
      - name: environment
        kind: string
        required: true
      - name: payload
        kind: map
events:
  deployment_marker: deploy_marker
`
	if err := c.DefineYAML([]byte(doc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := c.Parse("deployment_marker", map[string]any{
		"environment": "production",
		"payload":     map[string]any{"region": "us-east-1"},
	})
	if e.Fallback() {
		t.Fatal("expected exact parse")
	}
	if got := e.Record().String("environment"); got != "production" {
		t.Errorf("environment = %q", got)
	}
	if got := e.Record().Map("payload"); got["region"] != "us-east-1" {
		t.Errorf("payload = %v", got)
	}

	if err := c.DefineYAML([]byte("shapes: [\n")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
