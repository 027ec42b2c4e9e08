package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "apiscaffold",
		Short:         "Generate schema, validator, repository, service and route code from model documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default is apiscaffold.yaml in the project root).")
	flags.String("log-level", "info", "Log level (options are panic, fatal, error, warn, info, debug, trace).")
	flags.String("root", ".", "Root of the target project; must contain go.mod.")
	flags.String("models-dir", "models", "Directory holding *.model.json and *.model.yaml documents.")
	flags.String("schema-dir", "app/schema", "Directory to output schema code to.")
	flags.String("validators-dir", "app/validators", "Directory to output validator code to.")
	flags.String("modules-dir", "app/modules", "Directory to output module packages to.")
	flags.String("router-file", "app/router.go", "Router file holding the auto-register region.")
	flags.Bool("dry", false, "Dry run (don't write files).")
	flags.Bool("disable-formatting", false, "Disable formatting (if applicable).")

	bindFlags(v, flags)

	root.AddCommand(
		newGenerateCommand(v),
		newListCommand(v),
		newValidateCommand(v),
	)

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, flag := range map[string]string{
		"config":             "config",
		"log_level":          "log-level",
		"root":               "root",
		"models_dir":         "models-dir",
		"schema_dir":         "schema-dir",
		"validators_dir":     "validators-dir",
		"modules_dir":        "modules-dir",
		"router_file":        "router-file",
		"dry":                "dry",
		"disable_formatting": "disable-formatting",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// setup loads the configuration, configures logging and loads every model
// document.
func setup(v *viper.Viper) (*Config, Layout, *ModelSet, *logrus.Entry, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, Layout{}, nil, nil, err
	}

	ll, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, Layout{}, nil, nil, errors.Wrap(err, "invalid log level")
	}
	logrus.SetLevel(ll)
	logrus.SetOutput(os.Stderr)

	l := logrus.NewEntry(logrus.StandardLogger())

	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, Layout{}, nil, nil, err
	}

	models, err := LoadModels(l, layout.path(layout.ModelsDir))
	if err != nil {
		return nil, Layout{}, nil, nil, err
	}

	return cfg, layout, models, l, nil
}

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <model>",
		Short: "Generate every enabled artifact of one model and refresh the registrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, layout, models, l, err := setup(v)
			if err != nil {
				return err
			}

			g := NewGenerator(layout, models, writeOptions{
				Dry:               cfg.Dry,
				DisableFormatting: cfg.DisableFormatting,
			})

			files, err := g.Run(l, args[0])
			if err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			return nil
		},
	}
}

func newListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the models that can be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, models, _, err := setup(v)
			if err != nil {
				return err
			}

			for _, name := range models.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newValidateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every model document and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, models, _, err := setup(v)
			if err != nil {
				return err
			}

			if n := reportInvalid(cmd.OutOrStdout(), models); n > 0 {
				return errors.Errorf("%d invalid model document(s)", n)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d model(s) ok\n", len(models.Names()))

			return nil
		},
	}
}

func reportInvalid(w io.Writer, models *ModelSet) int {
	for _, doc := range models.Invalid {
		fmt.Fprintf(w, "%s:\n", doc.File)
		for _, e := range doc.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	return len(models.Invalid)
}
