package scan

import "github.com/matzehuels/geiger/pkg/dag"

// Report is a complete scan: the dependency graph rooted at the scanned
// package plus the per-package results.
//
// Graph nodes without an entry in Packages are packages the scanner could
// not produce metrics for.
type Report struct {
	Root     string
	Graph    *dag.DAG
	Packages map[string]*Package
}

// Package returns the scan result for id.
func (r *Report) Package(id string) (*Package, bool) {
	p, ok := r.Packages[id]
	return p, ok
}

// Follow returns the edge filter for tests: dev dependencies are only
// walked when test code is included.
func Follow(tests IncludeTests) func(dag.Edge) bool {
	return func(e dag.Edge) bool {
		return e.Kind != dag.EdgeDev || tests == IncludeTestsYes
	}
}

// Summary aggregates the packages reachable from the root.
type Summary struct {
	Used           CounterBlock
	Unused         CounterBlock
	ByStatus       map[Status]int
	WithoutMetrics []string
}

// Summarize aggregates the packages reachable from the root when walking
// in dir.
func (r *Report) Summarize(dir dag.Direction, tests IncludeTests) Summary {
	s := Summary{ByStatus: make(map[Status]int)}
	for _, id := range r.Graph.Reachable(r.Root, dir, Follow(tests)) {
		p, ok := r.Packages[id]
		if !ok {
			s.WithoutMetrics = append(s.WithoutMetrics, id)
			continue
		}
		s.Used = s.Used.Add(p.UsedCounts(tests))
		s.Unused = s.Unused.Add(p.Unused)
		s.ByStatus[p.Status(tests)]++
	}
	return s
}
