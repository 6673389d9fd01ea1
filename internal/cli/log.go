// Package cli implements the geiger command-line interface.
//
// This package provides commands for printing unsafe-code scan reports as
// dependency trees, ratio tables or JSON, and for drawing them as Graphviz
// diagrams. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - tree: Print a scan report as a dependency tree
//   - graph: Render a scan report as an SVG or DOT diagram
//   - formats: List the supported output formats
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// The tree and graph commands read flag defaults from geiger.toml,
// geiger.yaml or geiger.yml, found by walking up from the working directory
// or given with --config. Flags on the command line always win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// Logs go to stderr so that reports on stdout can be piped.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(errors.ExitCode(err))
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger shared by all commands. Records carry
// a wall-clock timestamp with hundredths ("14:32:01.45") so that slow steps
// stand out when several are logged in a row.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// step times one stage of a command (loading the report, rendering SVG) and
// reports it as a single debug record once the stage has finished.
type step struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStep(l *log.Logger, name string) *step {
	return &step{logger: l, name: name, start: time.Now()}
}

// done logs the step name with keyvals and the elapsed time, e.g.
//
//	DEBU Loaded report packages=42 elapsed=12ms
func (s *step) done(keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Debug(s.name, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() for code paths run outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
