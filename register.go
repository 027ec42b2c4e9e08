package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const (
	autoRegisterStart = "// ========== AUTO-REGISTER START =========="
	autoRegisterEnd   = "// ========== AUTO-REGISTER END =========="
)

// singularModules keep their name as route path.
var singularModules = map[string]bool{
	"auth": true,
}

// RouteInfo describes one module that exposes a router.
type RouteInfo struct {
	ModuleName       string
	RoutePath        string
	ImportIdentifier string
	ImportPath       string
}

// ImportAlias is the alias needed to import the module under
// ImportIdentifier, or "" when the directory name already matches.
func (r RouteInfo) ImportAlias() string {
	if path.Base(r.ImportPath) == r.ImportIdentifier {
		return ""
	}
	return r.ImportIdentifier
}

// ScanSchemas lists the stems of the schema files in dir, skipping the
// schema index and tests. A missing directory has no schemas.
func ScanSchemas(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "ScanSchemas: could not read %s", dir)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == "index.go" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".go"))
	}

	return names, nil
}

// ScanRoutes lists every subdirectory of dir holding a <dir>_route.go
// file. importBase is the import path of dir.
func ScanRoutes(dir, importBase string) ([]RouteInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "ScanRoutes: could not read %s", dir)
	}

	var routes []RouteInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		name := e.Name()
		if _, err := os.Stat(filepath.Join(dir, name, name+"_route.go")); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "ScanRoutes: could not inspect %s", name)
		}

		routePath := "/" + pluralFor(name)
		if singularModules[name] {
			routePath = "/" + name
		}

		routes = append(routes, RouteInfo{
			ModuleName:       name,
			RoutePath:        routePath,
			ImportIdentifier: packageName(name),
			ImportPath:       path.Join(importBase, name),
		})
	}

	return routes, nil
}

var schemaIndexTemplate = template.Must(template.New("schemaindex").Parse(generatedNotice + `

package {{.PackageName}}

// Models returns one zero value of every generated schema, for migrations.
func Models() []interface{} {
	return []interface{}{
{{- range $n := .Names}}
		&{{$n}}{},
{{- end}}
	}
}
`))

// UpdateSchemaIndex overwrites the schema index at file with one entry per
// schema stem, in the given order.
func UpdateSchemaIndex(file string, names []string) error {
	types := make([]string, len(names))
	for i, n := range names {
		types[i] = goName(n)
	}

	var buf bytes.Buffer
	if err := schemaIndexTemplate.Execute(&buf, struct {
		PackageName string
		Names       []string
	}{packageName(filepath.Base(filepath.Dir(file))), types}); err != nil {
		return errors.Wrap(err, "UpdateSchemaIndex: could not render")
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return errors.Wrap(err, "UpdateSchemaIndex: could not prepare directory")
	}

	return errors.Wrap(os.WriteFile(file, buf.Bytes(), 0644), "UpdateSchemaIndex: could not write")
}

var routeRegistrationTemplate = template.Must(template.New("routes").Parse(`
{{- if .}}
import (
{{- range $r := .}}
	{{with $r.ImportAlias}}{{.}} {{end}}"{{$r.ImportPath}}"
{{- end}}
)
{{end}}
// registerRoutes mounts every generated module router.
func registerRoutes(r chi.Router, deps *modelutil.Deps) {
{{- range $r := .}}
	r.Mount("{{$r.RoutePath}}", {{$r.ImportIdentifier}}.Routes(deps))
{{- end}}
}
`))

func renderRouteRegistration(routes []RouteInfo) (string, error) {
	var buf bytes.Buffer
	if err := routeRegistrationTemplate.Execute(&buf, routes); err != nil {
		return "", errors.Wrap(err, "could not render route registration")
	}
	return buf.String(), nil
}

// UpdateRouterFile rewrites the auto-register region of the router file at
// file. Everything outside the markers is kept as is.
func UpdateRouterFile(file string, routes []RouteInfo) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "UpdateRouterFile: could not read router file")
	}

	block, err := renderRouteRegistration(routes)
	if err != nil {
		return errors.Wrap(err, "UpdateRouterFile")
	}

	out, err := patchRegion(string(b), block)
	if err != nil {
		return errors.Wrapf(err, "UpdateRouterFile: %s", file)
	}

	return errors.Wrap(os.WriteFile(file, []byte(out), 0644), "UpdateRouterFile: could not write router file")
}

// patchRegion replaces the text between the first start marker and the
// end marker following it with block. Without markers, block is inserted
// with fresh markers after the import declarations, or appended when the
// file does not parse. A lone marker is an error.
func patchRegion(content, block string) (string, error) {
	start := strings.Index(content, autoRegisterStart)
	hasEnd := strings.Contains(content, autoRegisterEnd)

	if start >= 0 {
		from := start + len(autoRegisterStart)
		end := strings.Index(content[from:], autoRegisterEnd)
		if end < 0 {
			return "", errors.New("found the auto-register start marker without a matching end marker")
		}

		return content[:from] + block + content[from+end:], nil
	}

	if hasEnd {
		return "", errors.New("found the auto-register end marker without a start marker")
	}

	region := autoRegisterStart + block + autoRegisterEnd

	offset, ok := importsEnd(content)
	if !ok {
		return content + "\n\n" + region + "\n", nil
	}

	return content[:offset] + "\n\n" + region + content[offset:], nil
}

// importsEnd is the byte offset just past the last import declaration of
// a Go source file, or past the package clause when there are none.
func importsEnd(content string) (int, bool) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", content, parser.ImportsOnly)
	if err != nil {
		return 0, false
	}

	pos := f.Name.End()
	for _, d := range f.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			pos = gd.End()
		}
	}

	return fset.Position(pos).Offset, true
}
