package dag

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [DAG.Validate] when an edge
	// references a node that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected
	// among normal and build edges. Cycles closed by dev edges are allowed.
	ErrGraphHasCycle = errors.New("graph contains a cycle")

	// ErrUnknownEdgeKind is returned by [ParseEdgeKind] for unrecognized names.
	ErrUnknownEdgeKind = errors.New("unknown edge kind")
)

// Direction selects which edges a traversal follows.
type Direction int

const (
	// Outgoing follows depends-on edges, from a package to its dependencies.
	Outgoing Direction = iota
	// Incoming follows depended-on-by edges, from a package to its dependents.
	Incoming
)

// String returns "outgoing" or "incoming".
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	default:
		return "unknown"
	}
}

// EdgeKind is the dependency section an edge was declared in.
type EdgeKind int

const (
	EdgeNormal EdgeKind = iota
	EdgeBuild
	EdgeDev
)

// String returns the lower-case kind name used in scan reports.
func (k EdgeKind) String() string {
	switch k {
	case EdgeNormal:
		return "normal"
	case EdgeBuild:
		return "build"
	case EdgeDev:
		return "dev"
	default:
		return "unknown"
	}
}

// ParseEdgeKind converts a report kind name into an EdgeKind.
// The empty string is treated as a normal dependency.
func ParseEdgeKind(s string) (EdgeKind, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return EdgeNormal, nil
	case "build":
		return EdgeBuild, nil
	case "dev":
		return EdgeDev, nil
	default:
		return EdgeNormal, ErrUnknownEdgeKind
	}
}

// Node represents a package in the dependency graph. Package data lives in
// the scan report keyed by ID; the graph only holds structure.
//
// The zero value is not usable - ID must be set before adding to a DAG.
type Node struct {
	ID string // Unique identifier, typically "name version"
}

// Edge represents a directed dependency from one package to another.
type Edge struct {
	From string   // Dependent package ID
	To   string   // Dependency package ID
	Kind EdgeKind // Dependency section (normal, build, dev)
}

// DAG is a directed package dependency graph.
//
// The zero value is not usable - use New to create a valid DAG instance.
// DAG is not safe for concurrent mutation; once built it may be shared
// read-only between goroutines.
type DAG struct {
	nodes    map[string]*Node
	order    []string // insertion order of node IDs
	edges    []Edge
	outgoing map[string][]Edge // nodeID -> edges to dependencies
	incoming map[string][]Edge // nodeID -> edges from dependents
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]Edge),
		incoming: make(map[string][]Edge),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	d.nodes[n.ID] = &n
	d.order = append(d.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode if the From node doesn't exist, or
// ErrUnknownTargetNode if the To node doesn't exist.
//
// A package may depend on the same package from several sections (for
// example both build and dev); each is kept as its own edge.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e)
	d.incoming[e.To] = append(d.incoming[e.To], e)
	return nil
}

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Node returns the node with the given ID and true, or nil and false if not found.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Neighbors returns the edges adjacent to id in the given direction. For
// Outgoing these are the node's dependency edges, for Incoming the edges of
// its dependents. The returned slice must not be modified.
func (d *DAG) Neighbors(id string, dir Direction) []Edge {
	if dir == Incoming {
		return d.incoming[id]
	}
	return d.outgoing[id]
}

// Validate checks graph integrity and returns nil if valid.
//
// Returns ErrInvalidEdgeEndpoint if an edge references a missing node, or
// ErrGraphHasCycle if normal and build edges form a cycle. Dev edges are
// ignored for cycle detection: a crate may dev-depend on a crate that
// depends on it.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (d *DAG) Validate() error {
	for _, e := range d.edges {
		if _, ok := d.nodes[e.From]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := d.nodes[e.To]; !ok {
			return ErrInvalidEdgeEndpoint
		}
	}
	return d.detectCycles()
}

func (d *DAG) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, e := range d.outgoing[id] {
			if e.Kind == EdgeDev {
				continue
			}
			switch color[e.To] {
			case white:
				dfs(e.To)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// Reachable returns the IDs reachable from start in breadth-first order,
// start included. Only edges accepted by follow are traversed; a nil follow
// accepts every edge. Returns nil if start is not in the graph.
func (d *DAG) Reachable(start string, dir Direction, follow func(Edge) bool) []string {
	if _, ok := d.nodes[start]; !ok {
		return nil
	}
	seen := map[string]bool{start: true}
	order := []string{start}
	for i := 0; i < len(order); i++ {
		for _, e := range d.Neighbors(order[i], dir) {
			if follow != nil && !follow(e) {
				continue
			}
			next := e.Other(dir)
			if !seen[next] {
				seen[next] = true
				order = append(order, next)
			}
		}
	}
	return order
}

// Other returns the endpoint reached when e is followed in dir: To for
// Outgoing, From for Incoming.
func (e Edge) Other(dir Direction) string {
	if dir == Incoming {
		return e.From
	}
	return e.To
}
