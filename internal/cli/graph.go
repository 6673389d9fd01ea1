package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/geiger/pkg/io"
	"github.com/matzehuels/geiger/pkg/render/nodelink"
)

// graphOpts holds the flags of the graph command that do not affect the
// print configuration.
type graphOpts struct {
	output   string // output file; "-" writes to stdout
	dot      bool   // write DOT source instead of SVG
	detailed bool   // add counts and status to node labels
}

// graphCommand creates the graph command for rendering node-link diagrams.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		flags printFlags
		opts  graphOpts
	)

	cmd := &cobra.Command{
		Use:   "graph [report.json]",
		Short: "Render a scan report as a node-link diagram",
		Long: `Render a scan report as a node-link diagram.

Packages are drawn as boxes filled by status: green when unsafe code is
forbidden, white when none was found, red when unsafe code is used.
Packages without metrics are grey and dashed.`,
		Example: `  geiger graph report.json
  geiger graph report.json --dot -o - | dot -Tpng > unsafe.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd, args[0], &flags, opts)
		},
	}

	flags.registerWalk(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.svg or <input>.dot, - for stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT source instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show unsafe counts and status in node labels")

	return cmd
}

// runGraph loads the report, renders the diagram, and writes output.
func (c *CLI) runGraph(ctx context.Context, cmd *cobra.Command, input string, flags *printFlags, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := flags.resolve(ctx, cmd.Flags())
	if err != nil {
		return err
	}

	report, err := pkgio.ImportReport(input)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(report, cfg, nodelink.Options{Detailed: opts.detailed})
	data := []byte(dot)
	if !opts.dot {
		render := startStep(logger, "Rendered SVG")
		spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering diagram...")
		spinner.Start()
		data, err = nodelink.RenderSVG(ctx, dot)
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		render.done("bytes", len(data))
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := cmd.OutOrStdout()
	if opts.output == "-" {
		_, err := out.Write(data)
		return err
	}

	path := opts.output
	if path == "" {
		ext := ".svg"
		if opts.dot {
			ext = ".dot"
		}
		path = strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	printSuccess(out, "Diagram complete")
	printFile(out, path)
	printStats(out, report.Graph.NodeCount(), report.Graph.EdgeCount())
	if opts.dot {
		printNewline(out)
		printNextStep(out, "Render", "dot -Tsvg "+path)
	}
	return nil
}
