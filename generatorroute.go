package main

import (
	"path/filepath"
	"strconv"
	"strings"
)

type RouteGenerator struct {
	layout Layout
}

func NewRouteGenerator(layout Layout) *RouteGenerator {
	return &RouteGenerator{layout: layout}
}

func (g *RouteGenerator) Name() string {
	return "route"
}

// routeOp is one enabled endpoint; With is the middleware list it is
// registered with.
type routeOp struct {
	With string
}

type routeContext struct {
	TypeName   string
	Label      string
	Runtime    string
	Validators string
	ID         idSpec

	List   *routeOp
	Get    *routeOp
	Create *routeOp
	Update *routeOp
	Delete *routeOp
}

func (c *routeContext) UsesService() bool {
	return c.List != nil || c.Get != nil || c.Create != nil || c.Update != nil || c.Delete != nil
}

func newRouteOp(e Endpoint) *routeOp {
	if !e.Enabled {
		return nil
	}

	var with []string
	if e.Auth || len(e.Roles) > 0 {
		with = append(with, "deps.Auth.Required()")
	}
	if len(e.Roles) > 0 {
		roles := make([]string, len(e.Roles))
		for i, r := range e.Roles {
			roles[i] = strconv.Quote(r)
		}
		with = append(with, "deps.Auth.Roles("+strings.Join(roles, ", ")+")")
	}

	return &routeOp{With: strings.Join(with, ", ")}
}

func newRouteContext(layout Layout, model *Model) (*routeContext, []string, error) {
	id, err := modelID(model)
	if err != nil {
		return nil, nil, err
	}

	runtime := layout.RuntimePackage()

	c := &routeContext{
		TypeName:   goName(model.Name),
		Label:      strings.TrimSuffix(commentText(Default(model.Name, model.Description)), "."),
		Runtime:    runtime,
		Validators: layout.ValidatorsPackage(),
		ID:         id,
		List:       newRouteOp(model.API.List),
		Get:        newRouteOp(model.API.Get),
		Create:     newRouteOp(model.API.Create),
		Update:     newRouteOp(model.API.Update),
		Delete:     newRouteOp(model.API.Delete),
	}

	var imports importSet
	if c.UsesService() {
		imports.add("net/http")
	}
	imports.add("github.com/go-chi/chi/v5", layout.RuntimeImport())
	if c.Create != nil || c.Update != nil {
		imports.add(layout.ValidatorsImport())
	}

	return c, imports.list(), nil
}

func (g *RouteGenerator) Model(model *Model) ([]writer, error) {
	c, imports, err := newRouteContext(g.layout, model)
	if err != nil {
		return nil, err
	}

	return []writer{
		&basicWriterForGo{
			basicWriter: basicWriter{
				name:     "individual",
				language: "go",
				file:     filepath.Join(g.layout.ModuleDir(model), snakeCase(model.Name)+"_route.go"),
				write:    templateWriter("route", routeTemplate, c),
			},
			packageName: packageName(model.Name),
			imports:     imports,
		},
	}, nil
}

var routeTemplate = `
{{- $T := .TypeName}}
{{- $RT := .Runtime}}
{{- $V := .Validators}}
{{- $ID := .ID}}
// Routes returns the HTTP handlers for {{.Label}}.
func Routes(deps *{{$RT}}.Deps) chi.Router {
	router := chi.NewRouter()
{{- if .UsesService}}
	svc := New(deps).Service
{{- end}}
{{- with .List}}

	router{{if .With}}.With({{.With}}){{end}}.Get("/", func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		{{$RT}}.Success(w, items)
	})
{{- end}}
{{- with .Get}}

	router{{if .With}}.With({{.With}}){{end}}.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := {{$RT}}.{{$ID.Param}}(r, "id")
		if err != nil {
			{{$RT}}.BadRequest(w, err.Error())
			return
		}
		item, err := svc.GetByID(r.Context(), id)
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		if item == nil {
			{{$RT}}.NotFound(w, "{{$T}} not found")
			return
		}
		{{$RT}}.Success(w, item)
	})
{{- end}}
{{- with .Create}}

	router{{if .With}}.With({{.With}}){{end}}.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var in {{$V}}.Create{{$T}}Input
		if !{{$RT}}.Bind(w, r, &in) {
			return
		}
		item, err := svc.Create(r.Context(), in.Model())
		if {{$RT}}.IsDuplicate(err) {
			{{$RT}}.Conflict(w, "{{$T}} already exists")
			return
		}
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		{{$RT}}.Created(w, item)
	})
{{- end}}
{{- with .Update}}

	router{{if .With}}.With({{.With}}){{end}}.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := {{$RT}}.{{$ID.Param}}(r, "id")
		if err != nil {
			{{$RT}}.BadRequest(w, err.Error())
			return
		}
		var in {{$V}}.Update{{$T}}Input
		if !{{$RT}}.Bind(w, r, &in) {
			return
		}
		existing, err := svc.GetByID(r.Context(), id)
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		if existing == nil {
			{{$RT}}.NotFound(w, "{{$T}} not found")
			return
		}
		item, err := svc.Update(r.Context(), id, in.Updates())
		if {{$RT}}.IsDuplicate(err) {
			{{$RT}}.Conflict(w, "{{$T}} already exists")
			return
		}
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		if item == nil {
			{{$RT}}.NotFound(w, "{{$T}} not found")
			return
		}
		{{$RT}}.Success(w, item)
	})
{{- end}}
{{- with .Delete}}

	router{{if .With}}.With({{.With}}){{end}}.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := {{$RT}}.{{$ID.Param}}(r, "id")
		if err != nil {
			{{$RT}}.BadRequest(w, err.Error())
			return
		}
		existing, err := svc.GetByID(r.Context(), id)
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		if existing == nil {
			{{$RT}}.NotFound(w, "{{$T}} not found")
			return
		}
		ok, err := svc.Delete(r.Context(), id)
		if err != nil {
			{{$RT}}.InternalError(w, err)
			return
		}
		if !ok {
			{{$RT}}.NotFound(w, "{{$T}} not found")
			return
		}
		{{$RT}}.SuccessMessage(w, nil, "{{$T}} deleted")
	})
{{- end}}

	return router
}
`
