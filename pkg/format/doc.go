// Package format resolves how an unsafe-code report is presented.
//
// It covers three small pieces that the renderers share:
//
//   - [OutputFormat]: the closed set of output encodings (Ascii, Json,
//     GitHubMarkdown, Ratio, Utf8), parsed by exact name.
//   - [Pattern]: a per-package output template such as "{p} {l}", compiled
//     once by [CompilePattern] and rendered for every package.
//   - [PrintConfig]: the immutable configuration built from command-line
//     flags by [NewPrintConfig].
//
// [Colorize] maps a package's detection status to an abstract [Style].
//
// # Patterns
//
// A template mixes literal text with placeholders:
//
//	{p}  package identifier ("name version")
//	{l}  license expression
//	{r}  repository URL
//
// Use "{{" and "}}" for literal braces. Unknown placeholders are an error:
//
//	p, err := format.CompilePattern("{p} ({l})")
//	line := p.Render(pkg)
package format
