package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/mod/modfile"
)

// Config holds the generator settings. Values come from flags, then
// APISCAFFOLD_* environment variables, then apiscaffold.yaml.
type Config struct {
	LogLevel          string `mapstructure:"log_level"`
	Root              string `mapstructure:"root"`
	ModelsDir         string `mapstructure:"models_dir"`
	SchemaDir         string `mapstructure:"schema_dir"`
	ValidatorsDir     string `mapstructure:"validators_dir"`
	ModulesDir        string `mapstructure:"modules_dir"`
	RouterFile        string `mapstructure:"router_file"`
	Dry               bool   `mapstructure:"dry"`
	DisableFormatting bool   `mapstructure:"disable_formatting"`
}

var configDefaults = map[string]interface{}{
	"log_level":          "info",
	"root":               ".",
	"models_dir":         "models",
	"schema_dir":         "app/schema",
	"validators_dir":     "app/validators",
	"modules_dir":        "app/modules",
	"router_file":        "app/router.go",
	"dry":                false,
	"disable_formatting": false,
}

func loadConfig(v *viper.Viper) (*Config, error) {
	for k, d := range configDefaults {
		v.SetDefault(k, d)
	}

	v.SetEnvPrefix("apiscaffold")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file := v.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("apiscaffold")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("root"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "loadConfig: could not read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "loadConfig: could not decode config")
	}

	return &cfg, nil
}

// runtimeDir holds the package generated code and the router region are
// written against.
const runtimeDir = "modelutil"

// Layout places generated files inside the target project. Every
// directory except Root is relative to Root.
type Layout struct {
	Root          string
	ModulePath    string
	ModelsDir     string
	SchemaDir     string
	ValidatorsDir string
	ModulesDir    string
	RouterFile    string
	RuntimeDir    string
}

// NewLayout resolves cfg against the project's go.mod.
func NewLayout(cfg *Config) (Layout, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return Layout{}, errors.Wrap(err, "NewLayout: could not resolve root")
	}

	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return Layout{}, errors.Wrap(err, "NewLayout: could not read go.mod")
	}

	modulePath := modfile.ModulePath(b)
	if modulePath == "" {
		return Layout{}, errors.Errorf("NewLayout: no module path in %s", filepath.Join(root, "go.mod"))
	}

	return Layout{
		Root:          root,
		ModulePath:    modulePath,
		ModelsDir:     cfg.ModelsDir,
		SchemaDir:     cfg.SchemaDir,
		ValidatorsDir: cfg.ValidatorsDir,
		ModulesDir:    cfg.ModulesDir,
		RouterFile:    cfg.RouterFile,
		RuntimeDir:    runtimeDir,
	}, nil
}

func (l Layout) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(l.Root, rel)
}

func (l Layout) importPath(rel string) string {
	return path.Join(l.ModulePath, filepath.ToSlash(rel))
}

func (l Layout) SchemaPackage() string     { return packageName(filepath.Base(l.SchemaDir)) }
func (l Layout) ValidatorsPackage() string { return packageName(filepath.Base(l.ValidatorsDir)) }

func (l Layout) SchemaImport() string     { return l.importPath(l.SchemaDir) }
func (l Layout) ValidatorsImport() string { return l.importPath(l.ValidatorsDir) }

// RuntimeImport is the import path of the package generated code is built
// on.
func (l Layout) RuntimeImport() string { return l.importPath(l.RuntimeDir) }

// ModuleDir is the directory holding the generated module of model.
func (l Layout) ModuleDir(model *Model) string {
	return l.path(filepath.Join(l.ModulesDir, snakeCase(model.Name)))
}

func (l Layout) SchemaIndexFile() string { return l.path(filepath.Join(l.SchemaDir, "index.go")) }

func (l Layout) RuntimePackage() string { return packageName(filepath.Base(l.RuntimeDir)) }
