// Package render groups the output renderers for unsafe-code scan reports.
//
// # Overview
//
// The renderers consume a [scan.Report] together with a resolved
// [format.PrintConfig] and never modify either. They are:
//
//   - Text trees, ratio tables and JSON (in [tree] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//   - Terminal colors (in [style] subpackage)
//
// # Text Trees
//
// The [tree] subpackage prints one line per package with its unsafe counts,
// a status symbol and the label from the configured output pattern.
//
//	styles := style.NewRenderer(os.Stdout, style.ColorAuto)
//	err := tree.Render(os.Stdout, report, cfg, tree.Options{Styles: styles})
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders traditional directed graph diagrams
// using Graphviz. Nodes are filled by status.
//
//	dot := nodelink.ToDOT(report, cfg, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [scan.Report]: github.com/matzehuels/geiger/pkg/scan.Report
// [format.PrintConfig]: github.com/matzehuels/geiger/pkg/format.PrintConfig
// [tree]: github.com/matzehuels/geiger/pkg/render/tree
// [nodelink]: github.com/matzehuels/geiger/pkg/render/nodelink
// [style]: github.com/matzehuels/geiger/pkg/render/style
package render
