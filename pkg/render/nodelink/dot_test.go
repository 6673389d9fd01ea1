package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/geiger/pkg/dag"
	"github.com/matzehuels/geiger/pkg/format"
	"github.com/matzehuels/geiger/pkg/scan"
)

func testReport(t *testing.T) *scan.Report {
	t.Helper()
	g := dag.New()
	for _, id := range []string{"app", "libc", "proptest", "cc"} {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []dag.Edge{
		{From: "app", To: "libc"},
		{From: "app", To: "proptest", Kind: dag.EdgeDev},
		{From: "libc", To: "cc", Kind: dag.EdgeBuild},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return &scan.Report{
		Root:  "app",
		Graph: g,
		Packages: map[string]*scan.Package{
			"app":      {ID: "app", ForbidsUnsafe: true},
			"libc":     {ID: "libc", Used: scan.CounterBlock{Functions: scan.Count{Safe: 1, Unsafe: 3}}},
			"proptest": {ID: "proptest"},
		},
	}
}

func testConfig() format.PrintConfig {
	return format.PrintConfig{
		AllowPartialResults: true,
		Direction:           dag.Outgoing,
		Pattern:             format.MustCompilePattern("{p}"),
		IncludeTests:        scan.IncludeTestsNo,
		OutputFormat:        format.UTF8,
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testReport(t), testConfig(), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"app" [label="app", fillcolor=palegreen];`,
		`"libc" [label="libc", fillcolor=salmon];`,
		`"cc" [label="cc", style="rounded,filled,dashed", fillcolor=lightgrey`,
		`"app" -> "libc";`,
		`"libc" -> "cc" [style=dotted];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "proptest") {
		t.Error("dev dependency included with tests excluded")
	}
}

func TestToDOTIncludeTests(t *testing.T) {
	cfg := testConfig()
	cfg.IncludeTests = scan.IncludeTestsYes
	dot := ToDOT(testReport(t), cfg, Options{})

	if !strings.Contains(dot, `"app" -> "proptest" [style=dashed];`) {
		t.Errorf("dev edge missing\n%s", dot)
	}
}

func TestToDOTInverted(t *testing.T) {
	r := testReport(t)
	r.Root = "cc"
	cfg := testConfig()
	cfg.Direction = dag.Incoming
	dot := ToDOT(r, cfg, Options{})

	if !strings.Contains(dot, "rankdir=BT;") {
		t.Errorf("inverted DOT should be laid out bottom to top\n%s", dot)
	}
	if !strings.Contains(dot, `"app" -> "libc";`) {
		t.Errorf("edges should keep their orientation\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testReport(t), testConfig(), Options{Detailed: true})
	if !strings.Contains(dot, `label="libc\nunsafe: 3/4\nunsafe-detected"`) {
		t.Errorf("detailed label missing\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testReport(t), testConfig(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.40 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.40 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
