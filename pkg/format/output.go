package format

import "errors"

// ErrOutputFormatNotFound is returned by [ParseOutputFormat] when the name
// does not match any [OutputFormat] exactly.
var ErrOutputFormatNotFound = errors.New("matching output format not found")

// OutputFormat selects how a report is emitted.
//
// The zero value is not a valid format; use [DefaultOutputFormat] when the
// user did not ask for one.
type OutputFormat int

const (
	ASCII OutputFormat = iota + 1
	JSON
	GitHubMarkdown
	Ratio
	UTF8
)

// DefaultOutputFormat is used when no output format is given.
const DefaultOutputFormat = UTF8

var outputFormatNames = [...]string{
	ASCII:          "Ascii",
	JSON:           "Json",
	GitHubMarkdown: "GitHubMarkdown",
	Ratio:          "Ratio",
	UTF8:           "Utf8",
}

// OutputFormats returns the names of all output formats in declaration order.
func OutputFormats() []string {
	return []string{
		outputFormatNames[ASCII],
		outputFormatNames[JSON],
		outputFormatNames[GitHubMarkdown],
		outputFormatNames[Ratio],
		outputFormatNames[UTF8],
	}
}

// ParseOutputFormat returns the format whose name equals s. Matching is
// exact and case-sensitive: "ascii" and " Ascii" are both rejected.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "Ascii":
		return ASCII, nil
	case "Json":
		return JSON, nil
	case "GitHubMarkdown":
		return GitHubMarkdown, nil
	case "Ratio":
		return Ratio, nil
	case "Utf8":
		return UTF8, nil
	default:
		return 0, ErrOutputFormatNotFound
	}
}

// Valid reports whether f is one of the declared formats.
func (f OutputFormat) Valid() bool { return f >= ASCII && f <= UTF8 }

// String returns the canonical name accepted by [ParseOutputFormat].
func (f OutputFormat) String() string {
	if !f.Valid() {
		return ""
	}
	return outputFormatNames[f]
}

// Set implements pflag.Value.
func (f *OutputFormat) Set(s string) error {
	v, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string { return "format" }

// OrDefault returns f, or [DefaultOutputFormat] when f is the zero value.
func (f OutputFormat) OrDefault() OutputFormat {
	if f == 0 {
		return DefaultOutputFormat
	}
	return f
}
