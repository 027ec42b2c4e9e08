package main

import (
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testModulePath = "example.com/shop"

func testLayout(root string) Layout {
	return Layout{
		Root:          root,
		ModulePath:    testModulePath,
		ModelsDir:     "models",
		SchemaDir:     "app/schema",
		ValidatorsDir: "app/validators",
		ModulesDir:    "app/modules",
		RouterFile:    "app/router.go",
		RuntimeDir:    runtimeDir,
	}
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func widgetDocument() map[string]interface{} {
	return map[string]interface{}{
		"name": "widget",
		"fields": []interface{}{
			map[string]interface{}{"name": "label", "type": "string", "required": true},
			map[string]interface{}{"name": "price", "type": "decimal", "required": true},
		},
		"timestamps": map[string]interface{}{"createdAt": true, "updatedAt": true},
	}
}

func mustModel(t *testing.T, doc map[string]interface{}) *Model {
	t.Helper()

	res := ValidateModel(ApplyDefaults(doc))
	require.True(t, res.Valid, "%v", res.Errors)

	return res.Model
}

func mustRender(t *testing.T, g generatorForModel, model *Model) string {
	t.Helper()

	out, err := renderModel(g, model)
	require.NoError(t, err)
	requireGoSource(t, out)

	return out
}

func requireGoSource(t *testing.T, src string) {
	t.Helper()

	_, err := parser.ParseFile(token.NewFileSet(), "", src, parser.AllErrors)
	require.NoError(t, err, src)
}

func writeFile(t *testing.T, file, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
}
