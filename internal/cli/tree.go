package cli

import (
	"context"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/geiger/pkg/io"
	"github.com/matzehuels/geiger/pkg/render/style"
	"github.com/matzehuels/geiger/pkg/render/tree"
)

// treeCommand creates the tree command for printing a scan report.
func (c *CLI) treeCommand() *cobra.Command {
	var flags printFlags

	cmd := &cobra.Command{
		Use:   "tree [report.json]",
		Short: "Print a scan report as a dependency tree",
		Long: `Print a scan report as a dependency tree.

Every package reachable from the scanned crate is printed with its unsafe
counts and a status symbol. Packages that were already printed are marked
with (*) and not expanded again unless --all is given.

Output formats:
  Utf8            tree with box-drawing branches and emoji (default)
  Ascii           tree restricted to 7-bit characters
  GitHubMarkdown  Utf8 tree in a fenced code block, without colors
  Ratio           table with the safe share of each package's code
  Json            machine-readable report`,
		Example: `  geiger tree report.json
  geiger tree report.json --invert --format "{p} ({l})"
  geiger tree report.json --output-format Json > unsafe.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), cmd, args[0], &flags)
		},
	}

	flags.registerTree(cmd.Flags())
	flags.registerWalk(cmd.Flags())
	registerCompletions(cmd)

	return cmd
}

// runTree loads the report and prints it to the command's output.
func (c *CLI) runTree(ctx context.Context, cmd *cobra.Command, input string, flags *printFlags) error {
	logger := loggerFromContext(ctx)

	cfg, err := flags.resolve(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	mode, err := flags.colorMode()
	if err != nil {
		return err
	}

	load := startStep(logger, "Loaded report")
	report, err := pkgio.ImportReport(input)
	if err != nil {
		return err
	}
	load.done("path", input, "packages", report.Graph.NodeCount())

	if ctx.Err() != nil {
		return ctx.Err()
	}

	summary := report.Summarize(cfg.Direction, cfg.IncludeTests)
	if n := len(summary.WithoutMetrics); n > 0 {
		logger.Warn("Packages without metrics", "count", n, "first", summary.WithoutMetrics[0])
	}
	logger.Debug("Unsafe usage", "used", summary.Used.Unsafe(), "unused", summary.Unused.Unsafe())

	out := cmd.OutOrStdout()
	opts := tree.Options{Styles: style.NewRenderer(out, mode)}
	logger.Debug("Rendering", "format", cfg.OutputFormat, "color", opts.Styles.Enabled())
	return tree.Render(out, report, cfg, opts)
}
