package format

import "github.com/matzehuels/geiger/pkg/scan"

// Style is an abstract text style. Turning it into escape codes is left to
// the renderer (see pkg/render/style).
type Style int

const (
	StyleNone Style = iota
	StyleSuccess
	StyleNeutral
	StyleAlert
)

func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleSuccess:
		return "success"
	case StyleNeutral:
		return "neutral"
	case StyleAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// Styled is text tagged with the style it should be displayed in.
type Styled struct {
	Text  string
	Style Style
}

// String returns the unstyled text.
func (s Styled) String() string { return s.Text }

// Colorize tags text with the style for status. GitHub markdown output is
// never styled; for every other format the style depends on status alone.
func Colorize(status scan.Status, f OutputFormat, text string) Styled {
	if f == GitHubMarkdown {
		return Styled{Text: text, Style: StyleNone}
	}
	switch status {
	case scan.NoneDetectedForbidsUnsafe:
		return Styled{Text: text, Style: StyleSuccess}
	case scan.NoneDetectedAllowsUnsafe:
		return Styled{Text: text, Style: StyleNeutral}
	case scan.UnsafeDetected:
		return Styled{Text: text, Style: StyleAlert}
	default:
		return Styled{Text: text, Style: StyleNone}
	}
}
