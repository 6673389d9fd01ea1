// Package tree prints unsafe-code scan reports as text.
//
// # Overview
//
// [Render] walks the dependency graph from the report root and prints one
// line per package: five count columns (functions, expressions, impls,
// traits, methods), the status symbol and the package label produced by the
// configured output pattern.
//
//	cfg, err := format.NewPrintConfig(args)
//	err = tree.Render(os.Stdout, report, cfg, tree.Options{Styles: style.NewRenderer(os.Stdout, style.ColorAuto)})
//
// Each count column reads x/y, where x is the unsafe code used by the build
// and y the total unsafe code found in the crate.
//
// # Output Formats
//
//   - Utf8: box-drawing branches and emoji symbols
//   - Ascii: 7-bit branches and symbols
//   - GitHubMarkdown: the Utf8 tree in a fenced code block, uncolored
//   - Ratio: a table with the safe share of each package's used code
//   - Json: see [github.com/matzehuels/geiger/pkg/io.WriteJSON]
//
// # Truncation
//
// A package that was already printed is shown again with [RepeatMarker] and
// without its dependencies, unless PrintConfig.All is set. Dev-dependency
// cycles are always cut.
package tree
