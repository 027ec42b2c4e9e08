package main

import (
	"path/filepath"
)

type IndexGenerator struct {
	layout Layout
}

func NewIndexGenerator(layout Layout) *IndexGenerator {
	return &IndexGenerator{layout: layout}
}

func (g *IndexGenerator) Name() string {
	return "index"
}

type indexContext struct {
	TypeName   string
	Runtime    string
	Files      []string
	Repository bool
	Service    bool
	Route      bool
}

func (g *IndexGenerator) Model(model *Model) ([]writer, error) {
	stem := snakeCase(model.Name)

	c := &indexContext{
		TypeName:   goName(model.Name),
		Runtime:    g.layout.RuntimePackage(),
		Repository: model.Generate.Repository,
		Service:    model.Generate.Service,
		Route:      model.Generate.Route,
	}
	if c.Repository {
		c.Files = append(c.Files, stem+"_repository.go")
	}
	if c.Service {
		c.Files = append(c.Files, stem+"_service.go")
	}
	if c.Route {
		c.Files = append(c.Files, stem+"_route.go")
	}

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     filepath.Join(g.layout.ModuleDir(model), "index.go"),
				write:    templateWriter("index", indexTemplate, c),
			},
			packageName: packageName(model.Name),
			imports:     []string{g.layout.RuntimeImport()},
		},
	}, nil
}

var indexTemplate = `
{{- $T := .TypeName}}
{{- if .Files}}
// Generated files: {{Join .Files ", "}}.
{{- end}}

// Module bundles the generated {{$T}} components.
type Module struct {
{{- if .Repository}}
	Repository *{{$T}}Repository
{{- end}}
{{- if .Service}}
	Service *{{$T}}Service
{{- end}}
}

// New wires the {{$T}} components against deps.
func New(deps *{{.Runtime}}.Deps) *Module {
	m := &Module{}
{{- if or .Repository .Service}}
	repo := New{{$T}}Repository(deps.DB)
{{- end}}
{{- if .Repository}}
	m.Repository = repo
{{- end}}
{{- if .Service}}
	m.Service = New{{$T}}Service(repo)
{{- end}}
	return m
}
`
