package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// StepError names the generation step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// LookupError is returned when the requested model is not loaded.
type LookupError struct {
	Name  string
	Known []string
}

func (e *LookupError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("model %q not found; no models are available", e.Name)
	}
	return fmt.Sprintf("model %q not found; available models: %s", e.Name, strings.Join(e.Known, ", "))
}

// Generator runs the full generation pipeline for single models.
type Generator struct {
	layout Layout
	models *ModelSet
	opts   writeOptions
}

func NewGenerator(layout Layout, models *ModelSet, opts writeOptions) *Generator {
	return &Generator{layout: layout, models: models, opts: opts}
}

// artifactGenerators returns the generators enabled for model, in
// generation order.
func (g *Generator) artifactGenerators(model *Model) []generatorForModel {
	var out []generatorForModel

	if model.Generate.Schema {
		out = append(out, NewSchemaGenerator(g.layout))
	}
	if model.Generate.Validator {
		out = append(out, NewValidatorGenerator(g.layout))
	}
	if model.Generate.Repository {
		out = append(out, NewRepositoryGenerator(g.layout))
	}
	if model.Generate.Service {
		out = append(out, NewServiceGenerator(g.layout))
	}
	if model.Generate.Route {
		out = append(out, NewRouteGenerator(g.layout))
	}

	return append(out, NewIndexGenerator(g.layout))
}

// Run generates every enabled artifact of the named model, then refreshes
// the schema index and the router registration. The first failure stops
// the run; files written before it are kept.
func (g *Generator) Run(l *logrus.Entry, name string) ([]string, error) {
	model, ok := g.models.Get(name)
	if !ok {
		if doc, ok := g.models.InvalidByName(name); ok {
			return nil, &StepError{Step: "validate " + doc.File, Err: doc.Errors}
		}
		return nil, &LookupError{Name: name, Known: g.models.Names()}
	}

	l = l.WithField("model", model.Name)

	var written []string

	for _, gen := range g.artifactGenerators(model) {
		l := l.WithField("generator", gen.Name())

		ws, err := gen.Model(model)
		if err != nil {
			return written, &StepError{Step: gen.Name(), Err: err}
		}

		files, err := executeWriters(l, ws, g.opts)
		written = append(written, files...)
		if err != nil {
			return written, &StepError{Step: gen.Name(), Err: err}
		}

		for _, f := range files {
			l.WithField("output", f).Info("generated")
		}
	}

	if g.opts.Dry {
		l.Info("dry run; skipping registration")
		return written, nil
	}

	schemaDir := g.layout.path(g.layout.SchemaDir)

	names, err := ScanSchemas(schemaDir)
	if err != nil {
		return written, &StepError{Step: "schema index", Err: err}
	}
	if err := UpdateSchemaIndex(g.layout.SchemaIndexFile(), names); err != nil {
		return written, &StepError{Step: "schema index", Err: err}
	}
	written = append(written, g.layout.SchemaIndexFile())
	l.WithField("schemas", len(names)).Info("updated schema index")

	routes, err := ScanRoutes(g.layout.path(g.layout.ModulesDir), g.layout.importPath(g.layout.ModulesDir))
	if err != nil {
		return written, &StepError{Step: "router", Err: err}
	}

	routerFile := g.layout.path(g.layout.RouterFile)
	if err := UpdateRouterFile(routerFile, routes); err != nil {
		return written, &StepError{Step: "router", Err: err}
	}
	written = append(written, routerFile)
	l.WithFields(logrus.Fields{"routes": len(routes), "output": filepath.Base(routerFile)}).Info("updated router registration")

	return written, nil
}
