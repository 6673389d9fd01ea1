package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/geiger/internal/config"
	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/format"
	"github.com/matzehuels/geiger/pkg/render/style"
)

// printFlags holds the flags a [format.PrintConfig] is resolved from.
type printFlags struct {
	args   format.Args
	color  string
	config string
}

// registerWalk adds the flags that select which packages are shown and how
// they are labeled. They are shared by tree and graph.
func (f *printFlags) registerWalk(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.args.Invert, "invert", "i", false, "invert the tree direction and show dependents of the root")
	fs.StringVarP(&f.args.Format, "format", "f", defaultPattern, "package label: {p} package, {l} license, {r} repository, {{ and }} for braces")
	fs.BoolVar(&f.args.IncludeTests, "include-tests", false, "count unsafe code in tests and follow dev-dependencies")
	fs.StringVar(&f.config, "config", "", "config file (default: geiger.toml, geiger.yaml or geiger.yml found from the working directory up)")
}

// registerTree adds the flags that only affect text output.
func (f *printFlags) registerTree(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.args.All, "all", "a", false, "don't truncate dependencies that have already been displayed")
	fs.BoolVar(&f.args.PrefixDepth, "prefix-depth", false, "print the depth of each package instead of tree branches")
	fs.BoolVar(&f.args.NoIndent, "no-indent", false, "print packages as a flat list")
	fs.Var(&f.args.OutputFormat, "output-format", "output format: "+strings.Join(format.OutputFormats(), ", ")+" (default "+format.DefaultOutputFormat.String()+")")
	fs.StringVar(&f.color, "color", style.ColorAuto.String(), "colorize output: "+strings.Join(style.ColorModes, ", "))
}

// registerCompletions adds shell completions for enumerated flag values.
func registerCompletions(cmd *cobra.Command) {
	choices := map[string][]string{
		"output-format": format.OutputFormats(),
		"color":         style.ColorModes,
	}
	for name, values := range choices {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
}

// resolve applies the config file to flags not given on the command line,
// then builds the print configuration.
func (f *printFlags) resolve(ctx context.Context, fs *pflag.FlagSet) (format.PrintConfig, error) {
	if err := applyConfigFile(ctx, fs, f.config); err != nil {
		return format.PrintConfig{}, err
	}
	cfg, err := format.NewPrintConfig(f.args)
	if err != nil {
		return format.PrintConfig{}, err
	}

	loggerFromContext(ctx).Debug("print config",
		"direction", cfg.Direction,
		"pattern", cfg.Pattern,
		"include_tests", cfg.IncludeTests,
		"prefix", cfg.Prefix,
		"output", cfg.OutputFormat,
		"all", cfg.All)
	return cfg, nil
}

// colorMode parses the --color flag.
func (f *printFlags) colorMode() (style.ColorMode, error) {
	mode, err := style.ParseColorMode(f.color)
	if err != nil {
		return style.ColorAuto, errors.Wrap(errors.ErrCodeInvalidInput, err, "--color")
	}
	return mode, nil
}

// applyConfigFile loads path, or the nearest config file when path is
// empty, and applies it to fs.
func applyConfigFile(ctx context.Context, fs *pflag.FlagSet, path string) error {
	logger := loggerFromContext(ctx)
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		if path, err = config.Find(wd); err != nil {
			return err
		}
		if path == "" {
			logger.Debug("no config file found", "dir", wd)
			return nil
		}
	}

	file, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("using config file", "path", path, "keys", len(file.Values()))
	return file.Apply(fs)
}
