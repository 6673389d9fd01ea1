package tree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/format"
	"github.com/matzehuels/geiger/pkg/render/style"
	"github.com/matzehuels/geiger/pkg/scan"
)

var ratioHeaders = []string{"Package", "Status", "Safe/Total", "Safe %"}

// renderRatio prints one table row per reachable package with the share of
// used items that are safe.
func renderRatio(out io.Writer, r *scan.Report, cfg format.PrintConfig, styles *style.Renderer) error {
	var rows [][]string
	for _, id := range r.Graph.Reachable(r.Root, cfg.Direction, scan.Follow(cfg.IncludeTests)) {
		p, ok := r.Package(id)
		if !ok {
			if !cfg.AllowPartialResults {
				return errors.New(errors.ErrCodePackageNotFound, "no metrics for package %q", id)
			}
			name := cfg.Pattern.Render(&scan.Package{ID: id})
			rows = append(rows, []string{name, "", NotAvailable, NotAvailable})
			continue
		}

		used := p.UsedCounts(cfg.IncludeTests)
		status := p.Status(cfg.IncludeTests)
		safe := used.Total() - used.Unsafe()
		rows = append(rows, []string{
			styles.Render(format.Colorize(status, format.Ratio, cfg.Pattern.Render(p))),
			status.String(),
			fmt.Sprintf("%d/%d", safe, used.Total()),
			SafeRatio(used),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(ratioHeaders...).
		Rows(rows...)

	_, err := fmt.Fprintln(out, t.Render())
	return err
}

// SafeRatio formats the share of safe items in b as a percentage, or "-"
// when b is empty.
func SafeRatio(b scan.CounterBlock) string {
	total := b.Total()
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(total-b.Unsafe())*100/float64(total))
}
