package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestListCommand(t *testing.T) {
	root := newProject(t, map[string]string{
		"widget.model.json":   widgetJSON,
		"customer.model.yaml": customerYAML,
		"broken.model.json":   `{"name": "broken", "fields": []}`,
	})

	out, err := runCommand(t, "list", "--root", root, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "Customer\nwidget\n", out)
}

func TestValidateCommand(t *testing.T) {
	root := newProject(t, map[string]string{"widget.model.json": widgetJSON})

	out, err := runCommand(t, "validate", "--root", root, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1 model(s) ok\n", out)

	writeFile(t, filepath.Join(root, "models", "broken.model.json"), `{"name": "broken", "fields": []}`)

	out, err = runCommand(t, "validate", "--root", root, "--log-level", "error")
	require.EqualError(t, err, "1 invalid model document(s)")
	assert.Contains(t, out, filepath.Join(root, "models", "broken.model.json")+":\n")
	assert.Contains(t, out, "  /fields: ")
}

func TestGenerateCommand(t *testing.T) {
	root := newProject(t, map[string]string{"widget.model.json": widgetJSON})

	out, err := runCommand(t, "generate", "widget", "--root", root, "--disable-formatting", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "app", "modules", "widget", "widget_route.go")+"\n")
	assert.Contains(t, out, filepath.Join(root, "app", "router.go")+"\n")

	b, err := os.ReadFile(filepath.Join(root, "app", "router.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "r.Mount(\"/widgets\", widget.Routes(deps))")
}

func TestGenerateCommandDry(t *testing.T) {
	root := newProject(t, map[string]string{"widget.model.json": widgetJSON})

	out, err := runCommand(t, "generate", "widget", "--root", root, "--dry", "--disable-formatting", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "app", "schema", "widget.go")+"\n")

	_, err = os.Stat(filepath.Join(root, "app", "schema", "widget.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCommandErrors(t *testing.T) {
	root := newProject(t, map[string]string{"widget.model.json": widgetJSON})

	for _, testCase := range []struct {
		name string
		args []string
		err  string
	}{
		{"unknown model", []string{"generate", "gadget", "--root", root}, `model "gadget" not found; available models: widget`},
		{"missing argument", []string{"generate", "--root", root}, "accepts 1 arg(s), received 0"},
		{"bad log level", []string{"list", "--root", root, "--log-level", "loud"}, ""},
		{"no go.mod", []string{"list", "--root", t.TempDir()}, ""},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := runCommand(t, testCase.args...)
			require.Error(t, err)
			if testCase.err != "" {
				assert.EqualError(t, err, testCase.err)
			}
		})
	}
}
