package hookflow

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Shape documents let hosts declare payload shapes without writing Go:
// a JSON or YAML document is validated against a meta-schema, translated to
// Shape values, and installed into a catalog. Events already in the catalog
// may be remapped, which is how a host substitutes a richer envelope for a
// built-in event.
//
//	{
//	  "shapes": [
//	    {
//	      "name": "workflow_job",
//	      "common": true,
//	      "fields": [
//	        {"name": "id", "kind": "number", "required": true},
//	        {"name": "runner", "kind": "object", "of": "user"},
//	        {"name": "steps", "kind": "any"}
//	      ]
//	    }
//	  ],
//	  "events": {"workflow_job": "workflow_job"}
//	}

// shapeDocSchema is the meta-schema every shape document must satisfy.
var shapeDocSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"shapes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name", "fields"},
				"properties": map[string]any{
					"name":   map[string]any{"type": "string", "minLength": 1},
					"common": map[string]any{"type": "boolean"},
					"fields": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"name", "kind"},
							"properties": map[string]any{
								"name":     map[string]any{"type": "string", "minLength": 1},
								"wire":     map[string]any{"type": "string"},
								"kind":     map[string]any{"enum": []any{"string", "number", "bool", "object", "list", "map", "any"}},
								"of":       map[string]any{"type": "string"},
								"required": map[string]any{"type": "boolean"},
							},
						},
					},
				},
			},
		},
		"events": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	},
}

var (
	compiledDocSchema     *jsonschema.Schema
	compiledDocSchemaErr  error
	compiledDocSchemaOnce sync.Once
)

// docSchema compiles the meta-schema once, registered under a synthetic URL.
func docSchema() (*jsonschema.Schema, error) {
	compiledDocSchemaOnce.Do(func() {
		raw, err := json.Marshal(shapeDocSchema)
		if err != nil {
			compiledDocSchemaErr = fmt.Errorf("marshal meta-schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compiledDocSchemaErr = fmt.Errorf("unmarshal meta-schema: %w", err)
			return
		}

		const url = "hookflow://schema/shape-document"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			compiledDocSchemaErr = fmt.Errorf("add meta-schema resource: %w", err)
			return
		}
		compiledDocSchema, compiledDocSchemaErr = c.Compile(url)
	})
	return compiledDocSchema, compiledDocSchemaErr
}

type shapeDoc struct {
	Shapes []struct {
		Name   string     `json:"name"`
		Common bool       `json:"common"`
		Fields []fieldDoc `json:"fields"`
	} `json:"shapes"`
	Events map[string]string `json:"events"`
}

type fieldDoc struct {
	Name     string `json:"name"`
	Wire     string `json:"wire"`
	Kind     string `json:"kind"`
	Of       string `json:"of"`
	Required bool   `json:"required"`
}

var docKinds = map[string]Kind{
	"string": KindString,
	"number": KindNumber,
	"bool":   KindBool,
	"object": KindObject,
	"list":   KindList,
	"map":    KindMap,
	"any":    KindAny,
}

// Define installs the shapes and event mappings from a JSON shape document.
// Installation is all-or-nothing: the document is checked against the
// meta-schema and every shape reference is resolved before the catalog is
// touched, so a failed Define leaves the catalog exactly as it was. Shapes
// may reference built-in shapes or shapes defined earlier in the same
// document. A shape with "common": true gets the standard envelope fields
// prepended.
func (c *Catalog) Define(doc []byte) error {
	var tree any
	if err := json.Unmarshal(doc, &tree); err != nil {
		return fmt.Errorf("hookflow: shape document is not valid JSON: %w", err)
	}

	schema, err := docSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(tree); err != nil {
		return fmt.Errorf("hookflow: shape document rejected: %w", err)
	}

	var parsed shapeDoc
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("hookflow: decode shape document: %w", err)
	}

	// Stage everything first so a document that fails part-way installs
	// nothing. References resolve against earlier staged shapes, then the
	// catalog's existing ones.
	staged := make(map[string]*Shape, len(parsed.Shapes))
	resolve := func(name string) (*Shape, error) {
		if s, ok := staged[name]; ok {
			return s, nil
		}
		return c.Shape(name)
	}

	shapes := make([]*Shape, 0, len(parsed.Shapes))
	for _, sd := range parsed.Shapes {
		fields := make([]Field, 0, len(sd.Fields))
		for _, fd := range sd.Fields {
			kind := docKinds[fd.Kind]
			f := Field{Name: fd.Name, Wire: fd.Wire, Kind: kind, Required: fd.Required}
			if kind == KindObject || kind == KindList {
				of, err := resolve(fd.Of)
				if err != nil {
					return fmt.Errorf("hookflow: shape %q field %q: %w", sd.Name, fd.Name, err)
				}
				f.Of = of
			}
			fields = append(fields, f)
		}
		if sd.Common {
			fields = append(eventFields(), fields...)
		}
		s := &Shape{Name: sd.Name, Fields: fields}
		if err := s.check(); err != nil {
			return fmt.Errorf("hookflow: %w", err)
		}
		staged[sd.Name] = s
		shapes = append(shapes, s)
	}

	events := make(map[string]*Shape, len(parsed.Events))
	for event, shapeName := range parsed.Events {
		if event == "" {
			return fmt.Errorf("hookflow: empty event name")
		}
		s, err := resolve(shapeName)
		if err != nil {
			return fmt.Errorf("hookflow: event %q: %w", event, err)
		}
		events[event] = s
	}

	// Every reference resolved; commit. Registration cannot fail now, the
	// shapes were already checked above.
	for _, s := range shapes {
		if err := c.RegisterShape(s); err != nil {
			return err
		}
	}
	for event, s := range events {
		if err := c.RegisterEvent(event, s); err != nil {
			return err
		}
	}
	return nil
}

// DefineYAML installs a YAML shape document. The document is normalized to
// JSON and handled by Define, so both formats share the meta-schema and the
// installation rules.
func (c *Catalog) DefineYAML(doc []byte) error {
	var tree any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return fmt.Errorf("hookflow: shape document is not valid YAML: %w", err)
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("hookflow: normalize shape document: %w", err)
	}
	return c.Define(raw)
}
