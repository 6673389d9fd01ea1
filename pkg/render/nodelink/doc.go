// Package nodelink renders scan reports as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// packages appear as boxes connected by arrows and are filled by their
// unsafe-code status. It complements the text tree for reports that are
// easier to read as a picture.
//
// # Usage
//
// Convert a report to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(report, cfg, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include used unsafe counts and status
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// Dependencies are laid out top to bottom (rankdir=TB); inverted reports
// are laid out bottom to top so arrows still point at the dependency.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
