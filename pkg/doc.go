// Package pkg provides the core libraries for Geiger unsafe-code reports.
//
// # Overview
//
// Geiger prints the results of an unsafe-code scan of a Rust crate and its
// dependencies. The pkg directory is organized into these areas:
//
//  1. [scan] - Scan results: counters, package status, reports
//  2. [dag] - Dependency graph structure and traversal
//  3. [format] - Print configuration: output formats, label patterns, colors
//  4. [io] - Report import and JSON output
//  5. [render] - Text trees, ratio tables and node-link diagrams
//  6. [errors] - Structured errors with codes and exit statuses
//
// # Architecture
//
// The typical data flow through Geiger:
//
//	Scan report (JSON)
//	         ↓
//	    [io] package (decode and validate into a [scan.Report])
//	         ↓
//	    [format] package (resolve flags into a read-only PrintConfig)
//	         ↓
//	    [render] packages (walk the graph and print)
//	         ↓
//	    Utf8/Ascii/Markdown tree, Ratio table, JSON or SVG
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/geiger/pkg/format"
//	    "github.com/matzehuels/geiger/pkg/io"
//	    "github.com/matzehuels/geiger/pkg/render/tree"
//	)
//
//	report, err := io.ImportReport("report.json")
//	if err != nil {
//	    return err
//	}
//	cfg, err := format.NewPrintConfig(format.Args{Format: "{p} ({l})", Invert: true})
//	if err != nil {
//	    return err
//	}
//	return tree.Render(os.Stdout, report, cfg, tree.Options{})
//
// # Label Patterns
//
// Package labels are built from a template with the placeholders {p}
// (name and version), {l} (license) and {r} (repository). Literal braces
// are written {{ and }}. See [format.CompilePattern].
//
// [scan]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/scan
// [scan.Report]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/scan#Report
// [dag]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/dag
// [format]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/format
// [format.CompilePattern]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/format#CompilePattern
// [io]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/geiger/pkg/errors
package pkg
