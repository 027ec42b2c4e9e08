package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const modelIndexFile = "index.json"

var modelExtensions = []string{".model.json", ".model.yaml", ".model.yml"}

// InvalidDocument is a model document that was found but rejected.
type InvalidDocument struct {
	File   string
	Name   string
	Errors DefinitionErrors
}

// ModelSet is the immutable result of LoadModels.
type ModelSet struct {
	models  map[string]*Model
	names   []string
	Invalid []InvalidDocument
}

// Get looks a model up by name, ignoring case.
func (s *ModelSet) Get(name string) (*Model, bool) {
	m, ok := s.models[strings.ToLower(name)]
	return m, ok
}

// Names lists the loaded models in load order.
func (s *ModelSet) Names() []string {
	return append([]string(nil), s.names...)
}

// InvalidByName returns the rejected document that declared name, if any.
func (s *ModelSet) InvalidByName(name string) (InvalidDocument, bool) {
	for _, d := range s.Invalid {
		if d.Name != "" && strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return InvalidDocument{}, false
}

func isModelDocument(name string) bool {
	for _, ext := range modelExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// LoadModels reads every model document in dir. When dir contains an
// index.json allow-list, only models named there with a true value are
// kept. Documents that fail validation are recorded in Invalid instead of
// failing the whole load.
func LoadModels(l *logrus.Entry, dir string) (*ModelSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadModels: could not read %s", dir)
	}

	allow, err := readAllowList(filepath.Join(dir, modelIndexFile))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isModelDocument(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	set := &ModelSet{models: make(map[string]*Model)}

	for _, name := range files {
		file := filepath.Join(dir, name)
		l := l.WithField("file", file)

		raw, err := readDocument(file)
		if err != nil {
			l.WithError(err).Warn("could not read model document")
			set.Invalid = append(set.Invalid, InvalidDocument{File: file, Errors: DefinitionErrors{{Location: "root", Message: err.Error()}}})
			continue
		}

		declared, _ := raw["name"].(string)

		res := ValidateModel(ApplyDefaults(raw))
		if !res.Valid {
			l.WithField("errors", len(res.Errors)).Warn("skipping invalid model document")
			set.Invalid = append(set.Invalid, InvalidDocument{File: file, Name: declared, Errors: res.Errors})
			continue
		}

		m := res.Model
		m.Source = file

		if allow != nil && !allow[m.Name] && !allow[m.Key()] {
			l.WithField("model", m.Name).Debug("model not enabled in index")
			continue
		}

		if prev, ok := set.models[m.Key()]; ok {
			return nil, errors.Errorf("LoadModels: model %q is declared by both %s and %s", m.Name, prev.Source, file)
		}

		set.models[m.Key()] = m
		set.names = append(set.names, m.Name)

		l.WithField("model", m.Name).Debug("loaded model")
	}

	return set, nil
}

func readAllowList(file string) (map[string]bool, error) {
	b, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "readAllowList: could not read %s", file)
	}

	var allow map[string]bool
	if err := json.Unmarshal(b, &allow); err != nil {
		return nil, errors.Wrapf(err, "readAllowList: could not parse %s", file)
	}

	return allow, nil
}

// readDocument decodes a JSON or YAML model document into plain JSON
// values.
func readDocument(file string) (map[string]interface{}, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if strings.HasSuffix(file, ".json") {
		err = json.Unmarshal(b, &v)
	} else {
		err = yaml.Unmarshal(b, &v)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not parse document")
	}

	doc, err := normalizeDocument(v)
	if err != nil {
		return nil, err
	}

	m, ok := doc.(map[string]interface{})
	if !ok {
		return nil, errors.New("model document must be an object")
	}

	return m, nil
}
