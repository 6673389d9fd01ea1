package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/format"
	"github.com/matzehuels/geiger/pkg/scan"
)

type jsonReport struct {
	Root                   string        `json:"root"`
	Direction              string        `json:"direction"`
	IncludeTests           string        `json:"include_tests"`
	Packages               []jsonPackage `json:"packages"`
	PackagesWithoutMetrics []string      `json:"packages_without_metrics"`
}

type jsonPackage struct {
	ID            string            `json:"id"`
	Name          string            `json:"name,omitempty"`
	Version       string            `json:"version,omitempty"`
	License       string            `json:"license,omitempty"`
	Repository    string            `json:"repository,omitempty"`
	Status        string            `json:"status"`
	ForbidsUnsafe bool              `json:"forbids_unsafe"`
	Used          scan.CounterBlock `json:"used"`
	Unused        scan.CounterBlock `json:"unused"`
}

// WriteJSON encodes the packages reachable from the report root as JSON and
// writes them to w. The walk honors cfg's direction and test policy; used
// counts include test-only code when cfg.IncludeTests is yes.
//
// Packages without metrics are listed separately. Unless
// cfg.AllowPartialResults is set, their presence is an
// ErrCodePackageNotFound error and nothing is written.
func WriteJSON(w io.Writer, r *scan.Report, cfg format.PrintConfig) error {
	out := jsonReport{
		Root:                   r.Root,
		Direction:              cfg.Direction.String(),
		IncludeTests:           cfg.IncludeTests.String(),
		Packages:               []jsonPackage{},
		PackagesWithoutMetrics: []string{},
	}

	for _, id := range r.Graph.Reachable(r.Root, cfg.Direction, scan.Follow(cfg.IncludeTests)) {
		p, ok := r.Package(id)
		if !ok {
			out.PackagesWithoutMetrics = append(out.PackagesWithoutMetrics, id)
			continue
		}
		out.Packages = append(out.Packages, jsonPackage{
			ID:            p.ID,
			Name:          p.Name,
			Version:       p.Version,
			License:       p.License,
			Repository:    p.Repository,
			Status:        p.Status(cfg.IncludeTests).String(),
			ForbidsUnsafe: p.ForbidsUnsafe,
			Used:          p.UsedCounts(cfg.IncludeTests),
			Unused:        p.Unused,
		})
	}

	if len(out.PackagesWithoutMetrics) > 0 && !cfg.AllowPartialResults {
		return errors.New(errors.ErrCodePackageNotFound, "no metrics for %d package(s), first: %s",
			len(out.PackagesWithoutMetrics), out.PackagesWithoutMetrics[0])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
