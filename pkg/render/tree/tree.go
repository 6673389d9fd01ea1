package tree

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/geiger/pkg/dag"
	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/format"
	pkgio "github.com/matzehuels/geiger/pkg/io"
	"github.com/matzehuels/geiger/pkg/render/style"
	"github.com/matzehuels/geiger/pkg/scan"
)

// Options configures report rendering.
type Options struct {
	// Styles colors package lines. Nil renders plain text.
	Styles *style.Renderer
}

// RepeatMarker is appended to a package that was already printed and whose
// dependencies are therefore not repeated.
const RepeatMarker = " (*)"

// NotAvailable fills the count columns of packages without metrics.
const NotAvailable = "N/A"

var columnHeaders = []string{"Functions", "Expressions", "Impls", "Traits", "Methods"}

type glyphs struct {
	tee, elbow, pipe, blank string
}

var (
	utf8Glyphs  = glyphs{tee: "├── ", elbow: "└── ", pipe: "│   ", blank: "    "}
	asciiGlyphs = glyphs{tee: "|-- ", elbow: "`-- ", pipe: "|   ", blank: "    "}
)

// Render writes r to w in cfg.OutputFormat.
//
// Ascii, Utf8 and GitHubMarkdown print the dependency tree; Ratio prints a
// table of safe-code ratios; Json delegates to [pkgio.WriteJSON].
//
// A reachable package without metrics is an ErrCodePackageNotFound error
// unless cfg.AllowPartialResults is set. Nothing is written on error.
func Render(w io.Writer, r *scan.Report, cfg format.PrintConfig, opts Options) error {
	styles := opts.Styles
	if styles == nil {
		styles = style.NewRenderer(w, style.ColorNever)
	}

	switch cfg.OutputFormat.OrDefault() {
	case format.JSON:
		return pkgio.WriteJSON(w, r, cfg)
	case format.Ratio:
		return renderRatio(w, r, cfg, styles)
	default:
		return renderTree(w, r, cfg, styles)
	}
}

// entry is one line of the printed tree.
type entry struct {
	id     string
	pkg    *scan.Package // nil when the scanner produced no metrics
	depth  int
	branch string
	repeat bool
}

type walker struct {
	report  *scan.Report
	cfg     format.PrintConfig
	glyphs  glyphs
	follow  func(dag.Edge) bool
	printed map[string]bool
	path    map[string]bool
	entries []entry
}

func newWalker(r *scan.Report, cfg format.PrintConfig) *walker {
	g := utf8Glyphs
	if cfg.OutputFormat == format.ASCII {
		g = asciiGlyphs
	}
	return &walker{
		report:  r,
		cfg:     cfg,
		glyphs:  g,
		follow:  scan.Follow(cfg.IncludeTests),
		printed: make(map[string]bool),
		path:    make(map[string]bool),
	}
}

// visit appends id and, unless it was printed before, its subtree.
// Packages on the current path are always truncated.
func (w *walker) visit(id string, depth int, indent, branch string) error {
	p, ok := w.report.Package(id)
	if !ok && !w.cfg.AllowPartialResults {
		return errors.New(errors.ErrCodePackageNotFound, "no metrics for package %q", id)
	}

	e := entry{id: id, pkg: p, depth: depth, branch: indent + branch}
	if w.path[id] || (w.printed[id] && !w.cfg.All) {
		e.repeat = true
		w.entries = append(w.entries, e)
		return nil
	}
	w.entries = append(w.entries, e)
	w.printed[id] = true
	w.path[id] = true
	defer delete(w.path, id)

	childIndent := indent
	switch branch {
	case w.glyphs.tee:
		childIndent += w.glyphs.pipe
	case w.glyphs.elbow:
		childIndent += w.glyphs.blank
	}

	children := w.children(id)
	for i, c := range children {
		b := w.glyphs.tee
		if i == len(children)-1 {
			b = w.glyphs.elbow
		}
		if err := w.visit(c, depth+1, childIndent, b); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) children(id string) []string {
	var ids []string
	for _, e := range w.report.Graph.Neighbors(id, w.cfg.Direction) {
		if w.follow(e) {
			ids = append(ids, e.Other(w.cfg.Direction))
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func (w *walker) prefix(e entry) string {
	switch w.cfg.Prefix {
	case format.PrefixDepth:
		return strconv.Itoa(e.depth)
	case format.PrefixIndent:
		return e.branch
	default:
		return ""
	}
}

func (w *walker) label(e entry) string {
	var m format.Metadata = &scan.Package{ID: e.id}
	if e.pkg != nil {
		m = e.pkg
	}
	s := w.cfg.Pattern.Render(m)
	if e.repeat {
		s += RepeatMarker
	}
	return s
}

func renderTree(out io.Writer, r *scan.Report, cfg format.PrintConfig, styles *style.Renderer) error {
	f := cfg.OutputFormat.OrDefault()
	ascii := f == format.ASCII

	w := newWalker(r, cfg)
	if err := w.visit(r.Root, 0, "", ""); err != nil {
		return err
	}
	summary := r.Summarize(cfg.Direction, cfg.IncludeTests)

	rows := make([][]string, 0, len(w.entries)+2)
	rows = append(rows, columnHeaders)
	for _, e := range w.entries {
		rows = append(rows, packageColumns(e.pkg, cfg.IncludeTests))
	}
	rows = append(rows, counterColumns(summary.Used, summary.Unused))
	widths := columnWidths(rows)

	var b strings.Builder
	if f == format.GitHubMarkdown {
		b.WriteString("```\n")
	}
	writeLegend(&b, ascii)

	b.WriteString(padColumns(rows[0], widths))
	b.WriteString("Dependency\n\n")
	for i, e := range w.entries {
		b.WriteString(padColumns(rows[i+1], widths))
		if e.pkg == nil {
			b.WriteString("  " + w.prefix(e) + w.label(e) + "\n")
			continue
		}
		status := e.pkg.Status(cfg.IncludeTests)
		line := status.Symbol(ascii) + " " + w.prefix(e) + w.label(e)
		b.WriteString(styles.Render(format.Colorize(status, f, line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(padColumns(rows[len(rows)-1], widths), " "))
	b.WriteString("\n")

	if n := len(summary.WithoutMetrics); n > 0 {
		fmt.Fprintf(&b, "\n%d package(s) without metrics: %s\n", n, strings.Join(summary.WithoutMetrics, ", "))
	}
	if f == format.GitHubMarkdown {
		b.WriteString("```\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func writeLegend(b *strings.Builder, ascii bool) {
	b.WriteString("Metric output format: x/y\n")
	b.WriteString("    x = unsafe code used by the build\n")
	b.WriteString("    y = total unsafe code found in the crate\n\n")
	b.WriteString("Symbols:\n")
	for _, s := range scan.Statuses() {
		fmt.Fprintf(b, "    %-3s = %s\n", s.Symbol(ascii), s.Description())
	}
	b.WriteString("\n")
}

// packageColumns formats the count columns for p, or N/A when p has no
// metrics.
func packageColumns(p *scan.Package, tests scan.IncludeTests) []string {
	if p == nil {
		cols := make([]string, len(columnHeaders))
		for i := range cols {
			cols[i] = NotAvailable
		}
		return cols
	}
	return counterColumns(p.UsedCounts(tests), p.Unused)
}

// counterColumns renders each kind as used-unsafe/total-unsafe.
func counterColumns(used, unused scan.CounterBlock) []string {
	u, n := used.Counts(), unused.Counts()
	cols := make([]string, len(u))
	for i := range u {
		cols[i] = scan.UnsafeRatio(u[i], n[i])
	}
	return cols
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(columnHeaders))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	return widths
}

func padColumns(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
	}
	return b.String()
}
