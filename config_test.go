package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	v.Set("root", t.TempDir())

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "models", cfg.ModelsDir)
	assert.Equal(t, "app/schema", cfg.SchemaDir)
	assert.Equal(t, "app/validators", cfg.ValidatorsDir)
	assert.Equal(t, "app/modules", cfg.ModulesDir)
	assert.Equal(t, "app/router.go", cfg.RouterFile)
	assert.False(t, cfg.Dry)
	assert.False(t, cfg.DisableFormatting)
}

func TestLoadConfigLayers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "apiscaffold.yaml"), "schema_dir: internal/schema\nmodules_dir: internal/modules\ndry: true\n")
	t.Setenv("APISCAFFOLD_MODULES_DIR", "pkg/modules")

	v := viper.New()
	v.Set("root", root)

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "internal/schema", cfg.SchemaDir)
	assert.Equal(t, "pkg/modules", cfg.ModulesDir)
	assert.True(t, cfg.Dry)
	assert.Equal(t, "models", cfg.ModelsDir)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, file, "router_file: cmd/api/router.go\n")

	v := viper.New()
	v.Set("config", file)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "cmd/api/router.go", cfg.RouterFile)

	v = viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err = loadConfig(v)
	require.Error(t, err)
}

func TestNewLayout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/shop\n\ngo 1.23\n")

	layout, err := NewLayout(&Config{
		Root:          root,
		ModelsDir:     "models",
		SchemaDir:     "app/schema",
		ValidatorsDir: "app/validators",
		ModulesDir:    "app/modules",
		RouterFile:    "app/router.go",
	})
	require.NoError(t, err)

	assert.Equal(t, "example.com/shop", layout.ModulePath)
	assert.Equal(t, "schema", layout.SchemaPackage())
	assert.Equal(t, "validators", layout.ValidatorsPackage())
	assert.Equal(t, "example.com/shop/app/schema", layout.SchemaImport())
	assert.Equal(t, "example.com/shop/app/validators", layout.ValidatorsImport())
	assert.Equal(t, "example.com/shop/modelutil", layout.RuntimeImport())
	assert.Equal(t, "modelutil", layout.RuntimePackage())
	assert.Equal(t, filepath.Join(root, "app", "schema", "index.go"), layout.SchemaIndexFile())
	assert.Equal(t, filepath.Join(root, "app", "modules", "order_item"), layout.ModuleDir(&Model{Name: "OrderItem"}))
	assert.Equal(t, "/abs/models", layout.path("/abs/models"))
}

func TestNewLayoutErrors(t *testing.T) {
	_, err := NewLayout(&Config{Root: t.TempDir()})
	require.Error(t, err)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "go 1.23\n")

	_, err = NewLayout(&Config{Root: root})
	require.Error(t, err)
}
