// Package style renders [format.Styled] text for a terminal.
//
// The format package only tags text with an abstract style. This package
// decides whether the output stream can show colors and turns the tags into
// ANSI escape sequences using lipgloss.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/matzehuels/geiger/pkg/format"
)

// ColorMode controls whether colors are emitted.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when writing to a capable terminal
	ColorAlways                  // always color
	ColorNever                   // never color
)

// ColorModes lists the accepted --color values.
var ColorModes = []string{"auto", "always", "never"}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", s)
	}
}

var (
	colorGreen = lipgloss.Color("35")  // Green - forbids unsafe
	colorRed   = lipgloss.Color("167") // Soft red - unsafe detected
)

// Renderer turns styled text into terminal output.
type Renderer struct {
	enabled bool
	styles  map[format.Style]lipgloss.Style
}

// NewRenderer creates a renderer for output written to w.
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	enabled := false
	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		enabled, profile = true, termenv.ANSI256
	case ColorAuto:
		if Detect(w) {
			enabled, profile = true, termenv.EnvColorProfile()
		}
	}

	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)

	return &Renderer{
		enabled: enabled,
		styles: map[format.Style]lipgloss.Style{
			format.StyleSuccess: lr.NewStyle().Foreground(colorGreen),
			format.StyleAlert:   lr.NewStyle().Foreground(colorRed).Bold(true),
		},
	}
}

// Enabled reports whether the renderer emits escape sequences.
func (r *Renderer) Enabled() bool { return r.enabled }

// Render returns s.Text decorated for its style. Neutral and unstyled text,
// and all text when colors are disabled, is returned unchanged.
func (r *Renderer) Render(s format.Styled) string {
	if !r.enabled {
		return s.Text
	}
	st, ok := r.styles[s.Style]
	if !ok {
		return s.Text
	}
	return st.Render(s.Text)
}

// Detect reports whether w is a terminal that can display colors.
// NO_COLOR disables colors, as do pipes, redirects and terminals whose
// color profile is plain ASCII.
func Detect(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
