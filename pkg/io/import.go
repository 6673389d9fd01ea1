package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/geiger/pkg/dag"
	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/scan"
)

type report struct {
	Root         string         `json:"root"`
	Packages     []scan.Package `json:"packages"`
	Dependencies []dependency   `json:"dependencies"`
}

type dependency struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind,omitempty"`
}

// ReadReport decodes a scan report from r.
//
// The input must be a JSON object naming the root package, the scanned
// packages and the dependency edges between them:
//
//	{
//	  "root": "app 0.1.0",
//	  "packages": [{"id": "app 0.1.0", "name": "app", "version": "0.1.0", ...}],
//	  "dependencies": [{"from": "app 0.1.0", "to": "libc 0.2.150", "kind": "normal"}]
//	}
//
// Dependency endpoints that have no package entry are added to the graph
// as packages without metrics. Edge kinds are "normal" (default), "build"
// or "dev".
//
// ReadReport returns an ErrCodeInvalidReport error if:
//   - The JSON is malformed
//   - The root is missing or not part of the graph
//   - A package has an empty or duplicate ID, an invalid crate name or a
//     repository containing control characters
//   - An edge has an unknown kind
//   - Normal and build edges form a cycle
//
// ReadReport does not close r.
func ReadReport(r io.Reader) (*scan.Report, error) {
	var data report
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "decode")
	}
	if data.Root == "" {
		return nil, errors.New(errors.ErrCodeInvalidReport, "missing root package")
	}

	g := dag.New()
	pkgs := make(map[string]*scan.Package, len(data.Packages))
	for i := range data.Packages {
		p := &data.Packages[i]
		if err := validatePackage(p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "package %q", p.ID)
		}
		if err := g.AddNode(dag.Node{ID: p.ID}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "package %q", p.ID)
		}
		pkgs[p.ID] = p
	}

	for _, d := range data.Dependencies {
		kind, err := dag.ParseEdgeKind(d.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "edge %s->%s: kind %q", d.From, d.To, d.Kind)
		}
		for _, id := range []string{d.From, d.To} {
			if _, ok := g.Node(id); ok {
				continue
			}
			if err := g.AddNode(dag.Node{ID: id}); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "edge %s->%s", d.From, d.To)
			}
		}
		if err := g.AddEdge(dag.Edge{From: d.From, To: d.To, Kind: kind}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "edge %s->%s", d.From, d.To)
		}
	}

	if _, ok := g.Node(data.Root); !ok {
		return nil, errors.New(errors.ErrCodeInvalidReport, "root package %q not found", data.Root)
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReport, err, "dependency graph")
	}

	return &scan.Report{Root: data.Root, Graph: g, Packages: pkgs}, nil
}

// ImportReport reads a scan report file at path.
//
// ImportReport opens the file, decodes it using [ReadReport], and closes
// the file. A missing file is reported as ErrCodeFileNotFound.
func ImportReport(path string) (*scan.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadReport(f)
}

func validatePackage(p *scan.Package) error {
	if p.ID == "" {
		return dag.ErrInvalidNodeID
	}
	if p.Name != "" {
		if err := errors.ValidateCratesPackageName(p.Name); err != nil {
			return err
		}
	}
	return errors.ValidateRepositoryURL(p.Repository)
}
