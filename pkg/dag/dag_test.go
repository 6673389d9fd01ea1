package dag

import (
	"errors"
	"slices"
	"testing"
)

func build(t *testing.T, ids []string, edges []Edge) *DAG {
	t.Helper()
	g := New()
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a): %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want %v", err, ErrDuplicateNodeID)
	}
	if _, ok := g.Node("a"); !ok {
		t.Error("Node(a) not found after AddNode")
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := build(t, []string{"a"}, nil)
	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v, want %v", err, ErrUnknownSourceNode)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v, want %v", err, ErrUnknownTargetNode)
	}
}

func TestNeighbors(t *testing.T) {
	g := build(t, []string{"app", "lib", "util"}, []Edge{
		{From: "app", To: "lib"},
		{From: "app", To: "util", Kind: EdgeDev},
		{From: "lib", To: "util"},
	})

	tests := []struct {
		id   string
		dir  Direction
		want []string
	}{
		{"app", Outgoing, []string{"lib", "util"}},
		{"util", Outgoing, nil},
		{"util", Incoming, []string{"app", "lib"}},
		{"app", Incoming, nil},
	}
	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.dir.String(), func(t *testing.T) {
			var got []string
			for _, e := range g.Neighbors(tt.id, tt.dir) {
				got = append(got, e.Other(tt.dir))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Neighbors(%s, %v) = %v, want %v", tt.id, tt.dir, got, tt.want)
			}
		})
	}
}

func TestParallelEdgesKept(t *testing.T) {
	g := build(t, []string{"a", "b"}, []Edge{
		{From: "a", To: "b"},
		{From: "a", To: "b", Kind: EdgeBuild},
	})
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
	if got := len(g.Neighbors("b", Incoming)); got != 2 {
		t.Errorf("len(Neighbors(b, Incoming)) = %d, want 2", got)
	}
	if got := g.Reachable("a", Outgoing, nil); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Reachable(a) = %v, want [a b]", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  error
	}{
		{"acyclic", []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}, nil},
		{"normal cycle", []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}, ErrGraphHasCycle},
		{"build cycle", []Edge{{From: "a", To: "b", Kind: EdgeBuild}, {From: "b", To: "a"}}, ErrGraphHasCycle},
		{"dev cycle allowed", []Edge{{From: "a", To: "b"}, {From: "b", To: "a", Kind: EdgeDev}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, []string{"a", "b", "c"}, tt.edges)
			if err := g.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseEdgeKind(t *testing.T) {
	tests := []struct {
		in      string
		want    EdgeKind
		wantErr bool
	}{
		{"", EdgeNormal, false},
		{"normal", EdgeNormal, false},
		{"build", EdgeBuild, false},
		{"Dev", EdgeDev, false},
		{"optional", EdgeNormal, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdgeKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdgeKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEdgeKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReachable(t *testing.T) {
	g := build(t, []string{"app", "lib", "util", "testkit", "orphan"}, []Edge{
		{From: "app", To: "lib"},
		{From: "app", To: "testkit", Kind: EdgeDev},
		{From: "lib", To: "util"},
		{From: "testkit", To: "app"},
	})
	noDev := func(e Edge) bool { return e.Kind != EdgeDev }

	tests := []struct {
		name   string
		start  string
		dir    Direction
		follow func(Edge) bool
		want   []string
	}{
		{"all outgoing", "app", Outgoing, nil, []string{"app", "lib", "testkit", "util"}},
		{"skip dev", "app", Outgoing, noDev, []string{"app", "lib", "util"}},
		{"incoming", "util", Incoming, nil, []string{"util", "lib", "app", "testkit"}},
		{"isolated", "orphan", Outgoing, nil, []string{"orphan"}},
		{"unknown", "missing", Outgoing, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Reachable(tt.start, tt.dir, tt.follow); !slices.Equal(got, tt.want) {
				t.Errorf("Reachable() = %v, want %v", got, tt.want)
			}
		})
	}
}
