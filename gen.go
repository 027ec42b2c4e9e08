package main

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

type writer interface {
	Name() string
	Language() string
	File() string
	Write(wr io.Writer) error
}

type writerForGo interface {
	writer
	PackageName() string
	Imports() []string
}

type basicWriter struct {
	name     string
	language string
	file     string
	write    func(wr io.Writer) error
}

func (w *basicWriter) Name() string             { return w.name }
func (w *basicWriter) Language() string         { return w.language }
func (w *basicWriter) File() string             { return w.file }
func (w *basicWriter) Write(wr io.Writer) error { return w.write(wr) }

type basicWriterForGo struct {
	basicWriter
	packageName string
	imports     []string
}

func (w *basicWriterForGo) PackageName() string { return w.packageName }
func (w *basicWriterForGo) Imports() []string   { return w.imports }

type generator interface {
	Name() string
}

type generatorForModel interface {
	generator
	Model(model *Model) ([]writer, error)
}

const generatedNotice = "// Code generated by apiscaffold. DO NOT EDIT."

var headerTemplate = template.Must(template.New("header").Parse(generatedNotice + `

package {{.PackageName}}
{{- if .Imports}}

import (
{{- range $s := .Imports}}
	"{{$s}}"
{{- end}}
)
{{- end}}
`))

var tplFunc = template.FuncMap{
	"Quote":   strconv.Quote,
	"Join":    strings.Join,
	"Default": Default,
}

// Default returns input, or defaultValue when input is empty.
func Default(defaultValue, input string) string {
	if input == "" {
		return defaultValue
	}

	return input
}

func templateWriter(name, tpl string, data interface{}) func(wr io.Writer) error {
	t := template.Must(template.New(name).Funcs(tplFunc).Parse(tpl))

	return func(wr io.Writer) error {
		return t.Execute(wr, data)
	}
}

// renderWriter produces the unformatted contents of w: the Go header, if
// any, followed by the body.
func renderWriter(w writer) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	if w, ok := w.(writerForGo); ok {
		if err := headerTemplate.Execute(buf, struct {
			PackageName string
			Imports     []string
		}{w.PackageName(), w.Imports()}); err != nil {
			return nil, errors.Wrap(err, "could not write go header")
		}
	}

	if err := w.Write(buf); err != nil {
		return nil, errors.Wrapf(err, "could not generate %s", w.Name())
	}

	return buf.Bytes(), nil
}

// renderModel is the source text g produces for model, every writer's
// output concatenated in order. Nothing is written to disk.
func renderModel(g generatorForModel, model *Model) (string, error) {
	ws, err := g.Model(model)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	for _, w := range ws {
		b, err := renderWriter(w)
		if err != nil {
			return "", err
		}
		out.Write(b)
	}

	return out.String(), nil
}

// importSet collects import paths in first-seen order.
type importSet struct {
	paths []string
	seen  map[string]bool
}

func (s *importSet) add(paths ...string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	for _, p := range paths {
		if p == "" || s.seen[p] {
			continue
		}
		s.seen[p] = true
		s.paths = append(s.paths, p)
	}
}

func (s *importSet) list() []string {
	return append([]string(nil), s.paths...)
}
