package main

import (
	"path/filepath"
)

type ServiceGenerator struct {
	layout Layout
}

func NewServiceGenerator(layout Layout) *ServiceGenerator {
	return &ServiceGenerator{layout: layout}
}

func (g *ServiceGenerator) Name() string {
	return "service"
}

type serviceContext struct {
	TypeName string
	Schema   string
	ID       idSpec
}

func (g *ServiceGenerator) Model(model *Model) ([]writer, error) {
	id, err := modelID(model)
	if err != nil {
		return nil, err
	}

	c := &serviceContext{
		TypeName: goName(model.Name),
		Schema:   g.layout.SchemaPackage(),
		ID:       id,
	}

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     filepath.Join(g.layout.ModuleDir(model), snakeCase(model.Name)+"_service.go"),
				write:    templateWriter("service", serviceTemplate, c),
			},
			packageName: packageName(model.Name),
			imports:     []string{"context", g.layout.SchemaImport()},
		},
	}, nil
}

var serviceTemplate = `
{{- $T := .TypeName}}
{{- $M := print .Schema "." .TypeName}}
// {{$T}}Service holds the business rules for {{$T}}. It currently delegates
// every call to {{$T}}Repository.
type {{$T}}Service struct {
	repo *{{$T}}Repository
}

// New{{$T}}Service returns a service backed by repo.
func New{{$T}}Service(repo *{{$T}}Repository) *{{$T}}Service {
	return &{{$T}}Service{repo: repo}
}

func (s *{{$T}}Service) GetAll(ctx context.Context) ([]{{$M}}, error) {
	return s.repo.FindAll(ctx)
}

func (s *{{$T}}Service) GetByID(ctx context.Context, id {{.ID.GoType}}) (*{{$M}}, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *{{$T}}Service) Create(ctx context.Context, m *{{$M}}) (*{{$M}}, error) {
	return s.repo.Create(ctx, m)
}

func (s *{{$T}}Service) Update(ctx context.Context, id {{.ID.GoType}}, updates map[string]interface{}) (*{{$M}}, error) {
	return s.repo.Update(ctx, id, updates)
}

func (s *{{$T}}Service) Delete(ctx context.Context, id {{.ID.GoType}}) (bool, error) {
	return s.repo.Delete(ctx, id)
}
`
