package main

import (
	"path/filepath"
	"strings"
)

type SchemaGenerator struct {
	layout Layout
}

func NewSchemaGenerator(layout Layout) *SchemaGenerator {
	return &SchemaGenerator{layout: layout}
}

func (g *SchemaGenerator) Name() string {
	return "schema"
}

type schemaField struct {
	GoName  string
	GoType  string
	Tag     string
	Comment string
}

type schemaRelation struct {
	GoName string
	Target string
	Tag    string
}

type schemaContext struct {
	TypeName    string
	TableName   string
	Description string
	References  []string
	Fields      []schemaField
	Relations   []schemaRelation
	UUIDKey     string
}

var onDeleteActions = map[string]string{
	"cascade":   "CASCADE",
	"set null":  "SET NULL",
	"restrict":  "RESTRICT",
	"no action": "NO ACTION",
}

func newSchemaContext(model *Model) (*schemaContext, []string) {
	var imports importSet

	c := &schemaContext{
		TypeName:    goName(model.Name),
		TableName:   model.Table(),
		Description: strings.TrimSuffix(commentText(Default(model.Name, model.Description)), "."),
	}

	for _, table := range model.References() {
		c.References = append(c.References, goName(singularFor(table)))
	}

	indexTags := indexSettings(model)

	for _, f := range model.AllFields() {
		gorm := ToStorageColumn(f)
		if extra := indexTags[f.Name]; len(extra) > 0 {
			gorm += ";" + strings.Join(extra, ";")
		}

		sf := schemaField{
			GoName:  goName(f.Name),
			GoType:  entityType(f),
			Tag:     structTag([2]string{"json", f.Name}, [2]string{"gorm", gorm}),
			Comment: commentText(f.Description),
		}

		switch f.Type {
		case FieldTypeTimestamp:
			imports.add("time")
		case FieldTypeJSON:
			imports.add("encoding/json")
		}

		if f.PrimaryKey && f.Type == FieldTypeUUID && f.Default == nil {
			c.UUIDKey = sf.GoName
			imports.add("github.com/google/uuid", "gorm.io/gorm")
		}

		c.Fields = append(c.Fields, sf)
	}

	seen := make(map[string]bool)
	for _, f := range model.Fields {
		if f.Reference == nil {
			continue
		}

		target := goName(singularFor(f.Reference.Table))
		name := goName(f.Name) + "Relation"
		if seen[name] {
			continue
		}
		seen[name] = true

		settings := []string{"foreignKey:" + goName(f.Name), "references:" + goName(f.Reference.Field)}
		if action, ok := onDeleteActions[strings.ToLower(f.Reference.OnDelete)]; ok {
			settings = append(settings, "constraint:OnDelete:"+action)
		}

		c.Relations = append(c.Relations, schemaRelation{
			GoName: name,
			Target: target,
			Tag:    structTag([2]string{"json", lowerCamel(f.Name) + "Relation,omitempty"}, [2]string{"gorm", strings.Join(settings, ";")}),
		})
	}

	return c, imports.list()
}

// indexSettings turns declared indexes into per-field gorm index
// settings.
func indexSettings(model *Model) map[string][]string {
	out := make(map[string][]string)
	for _, idx := range model.Indexes {
		kind := "index"
		if idx.Unique {
			kind = "uniqueIndex"
		}
		for _, name := range idx.Fields {
			out[name] = append(out[name], kind+":"+idx.Name)
		}
	}
	return out
}

func (g *SchemaGenerator) Model(model *Model) ([]writer, error) {
	c, imports := newSchemaContext(model)

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     g.layout.path(filepath.Join(g.layout.SchemaDir, snakeCase(model.Name)+".go")),
				write:    templateWriter("schema", schemaTemplate, c),
			},
			packageName: g.layout.SchemaPackage(),
			imports:     imports,
		},
	}, nil
}

var schemaTemplate = `
// {{.TypeName}} is the storage schema of {{.Description}}.
{{- if .References}}
//
// References: {{Join .References ", "}}.
{{- end}}
type {{.TypeName}} struct {
{{- range $f := .Fields}}
	{{$f.GoName}} {{$f.GoType}} {{$f.Tag}}{{if $f.Comment}} // {{$f.Comment}}{{end}}
{{- end}}
{{- if .Relations}}
{{range $r := .Relations}}
	{{$r.GoName}} *{{$r.Target}} {{$r.Tag}}
{{- end}}
{{- end}}
}

// TableName binds {{.TypeName}} to the "{{.TableName}}" table.
func ({{.TypeName}}) TableName() string {
	return {{Quote .TableName}}
}
{{- if .UUIDKey}}

// BeforeCreate assigns a random {{.UUIDKey}} when none was supplied.
func (m *{{.TypeName}}) BeforeCreate(tx *gorm.DB) error {
	if m.{{.UUIDKey}} == "" {
		m.{{.UUIDKey}} = uuid.NewString()
	}
	return nil
}
{{- end}}
`
