package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/geiger/pkg/dag"
	"github.com/matzehuels/geiger/pkg/format"
	"github.com/matzehuels/geiger/pkg/scan"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the used unsafe counts and status to node labels.
	// When false, only the output pattern is shown.
	Detailed bool
}

var fillColors = map[scan.Status]string{
	scan.NoneDetectedForbidsUnsafe: "palegreen",
	scan.NoneDetectedAllowsUnsafe:  "white",
	scan.UnsafeDetected:            "salmon",
}

// ToDOT converts the part of a scan report reachable from its root to
// Graphviz DOT format. The walk honors cfg's direction and test policy, and
// node labels use cfg.Pattern. The resulting DOT string can be rendered
// using [RenderSVG].
//
// Nodes are filled by status. Packages without metrics are drawn dashed
// and grey; dev edges are dashed and build edges dotted.
func ToDOT(r *scan.Report, cfg format.PrintConfig, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if cfg.Direction == dag.Incoming {
		buf.WriteString("  rankdir=BT;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	follow := scan.Follow(cfg.IncludeTests)
	ids := r.Graph.Reachable(r.Root, cfg.Direction, follow)
	for _, id := range ids {
		p, _ := r.Package(id)
		attrs := fmtAttrs(id, p, cfg, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range ids {
		for _, e := range r.Graph.Neighbors(id, cfg.Direction) {
			if !follow(e) {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.From, e.To, edgeAttrs(e.Kind))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(id string, p *scan.Package, cfg format.PrintConfig, detailed bool) []string {
	if p == nil {
		label := cfg.Pattern.Render(&scan.Package{ID: id})
		return []string{fmt.Sprintf("label=%q", label), "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black"}
	}

	status := p.Status(cfg.IncludeTests)
	label := cfg.Pattern.Render(p)
	if detailed {
		used := p.UsedCounts(cfg.IncludeTests)
		label += fmt.Sprintf("\nunsafe: %d/%d\n%s", used.Unsafe(), used.Total(), status)
	}
	return []string{fmt.Sprintf("label=%q", label), "fillcolor=" + fillColors[status]}
}

func edgeAttrs(k dag.EdgeKind) string {
	switch k {
	case dag.EdgeDev:
		return " [style=dashed]"
	case dag.EdgeBuild:
		return " [style=dotted]"
	default:
		return ""
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
