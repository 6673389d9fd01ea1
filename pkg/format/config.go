package format

import (
	"github.com/matzehuels/geiger/pkg/dag"
	"github.com/matzehuels/geiger/pkg/errors"
	"github.com/matzehuels/geiger/pkg/scan"
)

// Prefix selects what is printed in front of each tree line.
type Prefix int

const (
	// PrefixDepth prints the node's depth in the tree.
	PrefixDepth Prefix = iota
	// PrefixIndent draws tree branches.
	PrefixIndent
	// PrefixNone prints nothing.
	PrefixNone
)

func (p Prefix) String() string {
	switch p {
	case PrefixDepth:
		return "depth"
	case PrefixIndent:
		return "indent"
	case PrefixNone:
		return "none"
	default:
		return "unknown"
	}
}

// Args is the flag bundle a [PrintConfig] is resolved from.
type Args struct {
	All          bool   // don't truncate dependencies that were already printed
	Invert       bool   // walk dependents instead of dependencies
	Format       string // per-package output template, e.g. "{p}"
	IncludeTests bool
	PrefixDepth  bool
	NoIndent     bool
	OutputFormat OutputFormat // zero means not given
}

// PrintConfig is the resolved, read-only rendering configuration for one
// invocation. It is built once and only read afterwards.
type PrintConfig struct {
	// All disables truncation of dependencies that were already printed.
	All bool

	AllowPartialResults bool
	Direction           dag.Direction
	Pattern             Pattern
	IncludeTests        scan.IncludeTests
	Prefix              Prefix
	OutputFormat        OutputFormat
}

// NewPrintConfig resolves args into a PrintConfig.
//
// Compiling args.Format is the only step that can fail. Its error is wrapped
// as ErrCodeInvalidPattern and tagged with exit code 1, and no config is
// returned.
func NewPrintConfig(args Args) (PrintConfig, error) {
	// There is no flag for this yet; the CLI always renders what it can.
	allowPartialResults := true

	direction := dag.Outgoing
	if args.Invert {
		direction = dag.Incoming
	}

	pattern, err := CompilePattern(args.Format)
	if err != nil {
		return PrintConfig{}, errors.WithExitCode(
			errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid format pattern %q", args.Format), 1)
	}

	includeTests := scan.IncludeTestsNo
	if args.IncludeTests {
		includeTests = scan.IncludeTestsYes
	}

	// --prefix-depth wins over --no-indent.
	var prefix Prefix
	switch {
	case args.PrefixDepth:
		prefix = PrefixDepth
	case args.NoIndent:
		prefix = PrefixNone
	default:
		prefix = PrefixIndent
	}

	return PrintConfig{
		All:                 args.All,
		AllowPartialResults: allowPartialResults,
		Direction:           direction,
		Pattern:             pattern,
		IncludeTests:        includeTests,
		Prefix:              prefix,
		OutputFormat:        args.OutputFormat.OrDefault(),
	}, nil
}

// DefaultPrintConfig returns the static default configuration. It differs
// from what [NewPrintConfig] builds from zero-valued flags: partial results
// are not allowed, tests are included, lines are prefixed with their depth,
// and the pattern is the literal text "p".
func DefaultPrintConfig() PrintConfig {
	return PrintConfig{
		All:                 false,
		AllowPartialResults: false,
		Direction:           dag.Outgoing,
		Pattern:             MustCompilePattern("p"),
		IncludeTests:        scan.IncludeTestsYes,
		Prefix:              PrefixDepth,
		OutputFormat:        DefaultOutputFormat,
	}
}
