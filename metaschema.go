package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const metaSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "fields"],
  "properties": {
    "name": {"type": "string", "pattern": "^[A-Za-z][A-Za-z0-9_]*$"},
    "tableName": {"type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$"},
    "description": {"type": "string"},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/field"}
    },
    "indexes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "fields"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "fields": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "unique": {"type": "boolean"}
        }
      }
    },
    "api": {
      "type": "object",
      "properties": {
        "list": {"$ref": "#/$defs/endpoint"},
        "get": {"$ref": "#/$defs/endpoint"},
        "create": {"$ref": "#/$defs/endpoint"},
        "update": {"$ref": "#/$defs/endpoint"},
        "delete": {"$ref": "#/$defs/endpoint"}
      }
    },
    "timestamps": {
      "oneOf": [
        {"type": "boolean"},
        {
          "type": "object",
          "properties": {
            "createdAt": {"$ref": "#/$defs/toggle"},
            "updatedAt": {"$ref": "#/$defs/toggle"}
          }
        }
      ]
    },
    "softDelete": {"$ref": "#/$defs/toggle"},
    "generate": {
      "type": "object",
      "properties": {
        "schema": {"type": "boolean"},
        "validator": {"type": "boolean"},
        "repository": {"type": "boolean"},
        "service": {"type": "boolean"},
        "route": {"type": "boolean"}
      }
    }
  },
  "$defs": {
    "toggle": {
      "oneOf": [
        {"type": "boolean"},
        {"type": "string", "pattern": "^[A-Za-z][A-Za-z0-9_]*$"}
      ]
    },
    "endpoint": {
      "type": "object",
      "properties": {
        "enabled": {"type": "boolean"},
        "auth": {"type": "boolean"},
        "roles": {"type": "array", "items": {"type": "string", "minLength": 1}}
      }
    },
    "field": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": {"type": "string", "pattern": "^[A-Za-z][A-Za-z0-9_]*$"},
        "type": {"enum": ["string", "text", "integer", "boolean", "timestamp", "decimal", "json", "uuid", "email"]},
        "required": {"type": "boolean"},
        "unique": {"type": "boolean"},
        "primaryKey": {"type": "boolean"},
        "autoIncrement": {"type": "boolean"},
        "length": {"type": "integer", "minimum": 1},
        "precision": {"type": "integer", "minimum": 1},
        "scale": {"type": "integer", "minimum": 0},
        "description": {"type": "string"},
        "validation": {
          "type": "object",
          "properties": {
            "min": {"type": "number"},
            "max": {"type": "number"},
            "regex": {"type": "string"},
            "pattern": {"type": "string"},
            "enum": {"type": "array", "minItems": 1},
            "email": {"type": "boolean"},
            "url": {"type": "boolean"}
          }
        },
        "reference": {
          "type": "object",
          "required": ["table", "field"],
          "properties": {
            "table": {"type": "string", "minLength": 1},
            "field": {"type": "string", "minLength": 1},
            "onDelete": {"enum": ["cascade", "set null", "restrict", "no action"]}
          }
        }
      }
    }
  }
}`

// metaSchema is compiled once for the lifetime of the process.
var metaSchema = jsonschema.MustCompileString("model.schema.json", metaSchemaJSON)

// DefinitionError is a single problem found in a model document.
type DefinitionError struct {
	Location string
	Message  string
}

func (e DefinitionError) String() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// DefinitionErrors is returned when a model document is rejected.
type DefinitionErrors []DefinitionError

func (e DefinitionErrors) Error() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "invalid model definition (%d problem(s))", len(e))
	for _, d := range e {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}

// Result is the outcome of ValidateModel. Model is only set when Valid.
type Result struct {
	Valid  bool
	Errors DefinitionErrors
	Model  *Model
}

// ValidateModel checks a raw document against the model meta-schema and,
// if it passes, decodes it. Every violation is reported, not just the
// first. raw is not modified.
func ValidateModel(raw interface{}) Result {
	doc, err := normalizeDocument(raw)
	if err != nil {
		return Result{Errors: DefinitionErrors{{Location: "root", Message: err.Error()}}}
	}

	if err := metaSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return Result{Errors: DefinitionErrors{{Location: "root", Message: err.Error()}}}
		}

		var out DefinitionErrors
		collectLeaves(ve, &out)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Location < out[j].Location })

		return Result{Errors: out}
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return Result{Errors: DefinitionErrors{{Location: "root", Message: "expected an object"}}}
	}

	m, err := decodeModel(obj)
	if err != nil {
		return Result{Errors: DefinitionErrors{{Location: "root", Message: err.Error()}}}
	}

	if errs := checkModel(m); len(errs) > 0 {
		return Result{Errors: errs}
	}

	return Result{Valid: true, Model: m}
}

// normalizeDocument round-trips raw through encoding/json so the validator
// sees plain JSON values and the caller's value is never shared.
func normalizeDocument(raw interface{}) (interface{}, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "document is not representable as JSON")
	}

	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrap(err, "document is not representable as JSON")
	}

	return doc, nil
}

func collectLeaves(ve *jsonschema.ValidationError, out *DefinitionErrors) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "root"
		}
		*out = append(*out, DefinitionError{Location: loc, Message: ve.Message})
		return
	}

	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

// checkModel enforces the rules the meta-schema cannot express.
func checkModel(m *Model) DefinitionErrors {
	var (
		out   DefinitionErrors
		seen  = make(map[string]int)
		autos int
	)

	for i, f := range m.Fields {
		loc := fmt.Sprintf("/fields/%d", i)

		if j, ok := seen[f.Name]; ok {
			out = append(out, DefinitionError{Location: loc + "/name", Message: fmt.Sprintf("duplicate field name %q (first declared at /fields/%d)", f.Name, j)})
		} else {
			seen[f.Name] = i
		}

		if f.PrimaryKey && f.AutoIncrement {
			autos++
			if autos > 1 {
				out = append(out, DefinitionError{Location: loc, Message: "only one field may combine primaryKey and autoIncrement"})
			}
		}

		if f.AutoIncrement && f.Type != FieldTypeInteger {
			out = append(out, DefinitionError{Location: loc + "/autoIncrement", Message: "autoIncrement requires an integer field"})
		}
	}

	known := make(map[string]bool)
	for _, f := range m.AllFields() {
		known[f.Name] = true
	}

	for i, idx := range m.Indexes {
		for j, name := range idx.Fields {
			if !known[name] {
				out = append(out, DefinitionError{Location: fmt.Sprintf("/indexes/%d/fields/%d", i, j), Message: fmt.Sprintf("unknown field %q", name)})
			}
		}
	}

	g := m.Generate
	for _, dep := range []struct {
		artifact, requires string
		enabled, available bool
	}{
		{"validator", "schema", g.Validator, g.Schema},
		{"repository", "schema", g.Repository, g.Schema},
		{"service", "repository", g.Service, g.Repository},
		{"route", "service", g.Route, g.Service},
		{"route", "validator", g.Route && (m.API.Create.Enabled || m.API.Update.Enabled), g.Validator},
	} {
		if dep.enabled && !dep.available {
			out = append(out, DefinitionError{Location: "/generate/" + dep.artifact, Message: fmt.Sprintf("%s generation requires %s generation", dep.artifact, dep.requires)})
		}
	}

	return out
}
