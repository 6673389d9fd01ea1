// Package dag provides the package dependency graph that unsafe-code reports
// are rendered from.
//
// # Overview
//
// Each node is one package (usually identified as "name version") and each
// edge is a dependency declared in one of three sections: normal, build or
// dev. Reports are walked either along dependency edges ([Outgoing]) or,
// when inverted, along dependent edges ([Incoming]).
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "app 0.1.0"})
//	g.AddNode(dag.Node{ID: "libc 0.2.150"})
//	g.AddEdge(dag.Edge{From: "app 0.1.0", To: "libc 0.2.150"})
//
// Walk the graph with [DAG.Neighbors], one step at a time, or
// [DAG.Reachable] for everything a package leads to. Use [DAG.Validate] to
// verify structural integrity before rendering.
//
// # Cycles
//
// Cargo allows a crate to dev-depend on a crate that depends on it, so the
// graph is only required to be acyclic over normal and build edges.
// Renderers must still guard against revisiting nodes when dev edges are
// followed.
package dag
