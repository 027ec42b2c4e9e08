package main

import (
	"path/filepath"

	"github.com/pkg/errors"
)

type RepositoryGenerator struct {
	layout Layout
}

func NewRepositoryGenerator(layout Layout) *RepositoryGenerator {
	return &RepositoryGenerator{layout: layout}
}

func (g *RepositoryGenerator) Name() string {
	return "repository"
}

// idSpec describes how a model's primary key travels through generated
// code.
type idSpec struct {
	GoType string
	Column string
	// Param is the request parameter parser of the runtime package.
	Param string
}

func modelID(model *Model) (idSpec, error) {
	f, ok := model.IDField()
	if !ok {
		return idSpec{}, errors.Errorf("model %q has no primary key and no field named id", model.Name)
	}

	spec := idSpec{Column: snakeCase(f.Name)}

	switch f.Type {
	case FieldTypeInteger:
		spec.GoType, spec.Param = "int64", "URLParamInt64"
	case FieldTypeUUID:
		spec.GoType, spec.Param = "string", "URLParamUUID"
	case FieldTypeString, FieldTypeText, FieldTypeEmail:
		spec.GoType, spec.Param = "string", "URLParam"
	default:
		return idSpec{}, errors.Errorf("model %q: field %q of type %s cannot be used as an identifier", model.Name, f.Name, f.Type)
	}

	return spec, nil
}

type repositoryContext struct {
	TypeName         string
	Schema           string
	TableName        string
	ID               idSpec
	UpdatedAtColumn  string
	SoftDeleteColumn string
}

func newRepositoryContext(layout Layout, model *Model) (*repositoryContext, []string, error) {
	id, err := modelID(model)
	if err != nil {
		return nil, nil, err
	}

	c := &repositoryContext{
		TypeName:  goName(model.Name),
		Schema:    layout.SchemaPackage(),
		TableName: model.Table(),
		ID:        id,
	}
	if name := model.UpdatedAtField(); name != "" {
		c.UpdatedAtColumn = snakeCase(name)
	}
	if name := model.SoftDeleteField(); name != "" {
		c.SoftDeleteColumn = snakeCase(name)
	}

	var imports importSet
	imports.add("context", "errors", "fmt")
	if c.UpdatedAtColumn != "" || c.SoftDeleteColumn != "" {
		imports.add("time")
	}
	imports.add("gorm.io/gorm", layout.SchemaImport())

	return c, imports.list(), nil
}

func (g *RepositoryGenerator) Model(model *Model) ([]writer, error) {
	c, imports, err := newRepositoryContext(g.layout, model)
	if err != nil {
		return nil, err
	}

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     filepath.Join(g.layout.ModuleDir(model), snakeCase(model.Name)+"_repository.go"),
				write:    templateWriter("repository", repositoryTemplate, c),
			},
			packageName: packageName(model.Name),
			imports:     imports,
		},
	}, nil
}

var repositoryTemplate = `
{{- $T := .TypeName}}
{{- $M := print .Schema "." .TypeName}}
{{- $Where := Quote (print .ID.Column " = ?")}}
// {{$T}}Repository reads and writes rows of the "{{.TableName}}" table.
type {{$T}}Repository struct {
	db *gorm.DB
}

// New{{$T}}Repository returns a repository bound to db.
func New{{$T}}Repository(db *gorm.DB) *{{$T}}Repository {
	return &{{$T}}Repository{db: db}
}
{{- if .SoftDeleteColumn}}

// query starts a statement bound to ctx that skips rows with
// {{.SoftDeleteColumn}} set.
func (r *{{$T}}Repository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where({{Quote (print .SoftDeleteColumn " IS NULL")}})
}
{{- else}}

// query starts a statement bound to ctx.
func (r *{{$T}}Repository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
{{- end}}

// FindAll returns every row, in storage order.
func (r *{{$T}}Repository) FindAll(ctx context.Context) ([]{{$M}}, error) {
	var rows []{{$M}}
	if err := r.query(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("{{$T}}Repository.FindAll: %w", err)
	}
	return rows, nil
}

// FindByID returns the row with the given id, or nil when there is none.
func (r *{{$T}}Repository) FindByID(ctx context.Context, id {{.ID.GoType}}) (*{{$M}}, error) {
	var m {{$M}}
	if err := r.query(ctx).Where({{$Where}}, id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("{{$T}}Repository.FindByID: %w", err)
	}
	return &m, nil
}

// Create inserts m and returns it as persisted, server generated columns included.
func (r *{{$T}}Repository) Create(ctx context.Context, m *{{$M}}) (*{{$M}}, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("{{$T}}Repository.Create: %w", err)
	}
	return m, nil
}

// Update applies updates to the row with the given id and returns the
// updated row, or nil when there is no such row.
func (r *{{$T}}Repository) Update(ctx context.Context, id {{.ID.GoType}}, updates map[string]interface{}) (*{{$M}}, error) {
	changes := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		changes[k] = v
	}
{{- if .UpdatedAtColumn}}
	changes[{{Quote .UpdatedAtColumn}}] = time.Now()
{{- end}}
	if len(changes) == 0 {
		return r.FindByID(ctx, id)
	}

	res := r.query(ctx).Model(&{{$M}}{}).Where({{$Where}}, id).Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("{{$T}}Repository.Update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

{{- if .SoftDeleteColumn}}

// Delete marks the row with the given id as deleted by stamping
// {{.SoftDeleteColumn}}. It reports whether a row was affected.
func (r *{{$T}}Repository) Delete(ctx context.Context, id {{.ID.GoType}}) (bool, error) {
	res := r.query(ctx).Model(&{{$M}}{}).Where({{$Where}}, id).Update({{Quote .SoftDeleteColumn}}, time.Now())
{{- else}}

// Delete removes the row with the given id. It reports whether a row was
// affected.
func (r *{{$T}}Repository) Delete(ctx context.Context, id {{.ID.GoType}}) (bool, error) {
	res := r.query(ctx).Where({{$Where}}, id).Delete(&{{$M}}{})
{{- end}}
	if res.Error != nil {
		return false, fmt.Errorf("{{$T}}Repository.Delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
`
