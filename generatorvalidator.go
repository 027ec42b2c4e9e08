package main

import (
	"path/filepath"
)

type ValidatorGenerator struct {
	layout Layout
}

func NewValidatorGenerator(layout Layout) *ValidatorGenerator {
	return &ValidatorGenerator{layout: layout}
}

func (g *ValidatorGenerator) Name() string {
	return "validator"
}

type validatorField struct {
	GoName    string
	InputType string
	Tag       string
	Column    string
	// Direct is set when the input and schema fields share a type.
	Direct bool
	// Raw is set for json fields, which are not pointers.
	Raw bool
}

type validatorContext struct {
	TypeName string
	Schema   string
	Create   []validatorField
	Update   []validatorField
}

func newValidatorContext(layout Layout, model *Model) (*validatorContext, []string) {
	var imports importSet
	imports.add(layout.SchemaImport())

	c := &validatorContext{
		TypeName: goName(model.Name),
		Schema:   layout.SchemaPackage(),
	}

	for _, f := range model.AllFields() {
		if model.IsSystemManaged(f) {
			continue
		}

		switch f.Type {
		case FieldTypeTimestamp:
			imports.add("time")
		case FieldTypeJSON:
			imports.add("encoding/json")
		}

		base := validatorField{
			GoName:    goName(f.Name),
			InputType: inputType(f),
			Column:    snakeCase(f.Name),
			Direct:    inputType(f) == entityType(f),
			Raw:       f.Type == FieldTypeJSON,
		}

		rule := ToValidationRule(f)

		create := base
		create.Tag = structTag([2]string{"json", f.Name}, [2]string{"validate", rule.String()})
		c.Create = append(c.Create, create)

		update := base
		update.Tag = structTag([2]string{"json", f.Name}, [2]string{"validate", WrapOptional(rule).String()})
		c.Update = append(c.Update, update)
	}

	return c, imports.list()
}

func (g *ValidatorGenerator) Model(model *Model) ([]writer, error) {
	c, imports := newValidatorContext(g.layout, model)

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     g.layout.path(filepath.Join(g.layout.ValidatorsDir, snakeCase(model.Name)+"_validator.go")),
				write:    templateWriter("validator", validatorTemplate, c),
			},
			packageName: g.layout.ValidatorsPackage(),
			imports:     imports,
		},
	}, nil
}

var validatorTemplate = `
// Create{{.TypeName}}Input is the request body accepted when creating a {{.TypeName}}.
type Create{{.TypeName}}Input struct {
{{- range $f := .Create}}
	{{$f.GoName}} {{$f.InputType}} {{$f.Tag}}
{{- end}}
}

// Model converts the input into a new {{.TypeName}} row.
func (in *Create{{.TypeName}}Input) Model() *{{.Schema}}.{{.TypeName}} {
	m := &{{.Schema}}.{{.TypeName}}{}
{{- range $f := .Create}}
{{- if $f.Direct}}
	m.{{$f.GoName}} = in.{{$f.GoName}}
{{- else}}
	if in.{{$f.GoName}} != nil {
		m.{{$f.GoName}} = *in.{{$f.GoName}}
	}
{{- end}}
{{- end}}
	return m
}

// Update{{.TypeName}}Input is the request body accepted when updating a {{.TypeName}}. Every field is optional.
type Update{{.TypeName}}Input struct {
{{- range $f := .Update}}
	{{$f.GoName}} {{$f.InputType}} {{$f.Tag}}
{{- end}}
}

// Updates returns the column changes carried by the input, keyed by column name.
func (in *Update{{.TypeName}}Input) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
{{- range $f := .Update}}
	if in.{{$f.GoName}} != nil {
		updates[{{Quote $f.Column}}] = {{if $f.Raw}}in.{{$f.GoName}}{{else}}*in.{{$f.GoName}}{{end}}
	}
{{- end}}
	return updates
}
`
