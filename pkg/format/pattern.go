package format

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ChunkKind identifies what a [Chunk] expands to.
type ChunkKind int

const (
	ChunkLiteral ChunkKind = iota
	ChunkPackage
	ChunkLicense
	ChunkRepository
)

func (k ChunkKind) String() string {
	switch k {
	case ChunkLiteral:
		return "literal"
	case ChunkPackage:
		return "package"
	case ChunkLicense:
		return "license"
	case ChunkRepository:
		return "repository"
	default:
		return "unknown"
	}
}

// Chunk is one parsed unit of an output template: a literal run of text or a
// placeholder bound to a package metadata field. Text is only set for
// literals.
type Chunk struct {
	Kind ChunkKind
	Text string
}

// Placeholder chunks.
var (
	Package    = Chunk{Kind: ChunkPackage}
	License    = Chunk{Kind: ChunkLicense}
	Repository = Chunk{Kind: ChunkRepository}
)

// Literal returns a chunk that renders as s.
func Literal(s string) Chunk { return Chunk{Kind: ChunkLiteral, Text: s} }

func (c Chunk) String() string {
	if c.Kind == ChunkLiteral {
		return fmt.Sprintf("Literal(%q)", c.Text)
	}
	return c.Kind.String()
}

// placeholders maps the token between braces to its chunk.
var placeholders = map[string]Chunk{
	"p": Package,
	"l": License,
	"r": Repository,
}

// Metadata is the per-package data a [Pattern] can reference.
type Metadata interface {
	PackageID() string
	PackageLicense() string
	PackageRepository() string
}

// Pattern is a compiled output template. The zero value renders nothing.
type Pattern struct {
	chunks []Chunk
}

// NewPattern builds a pattern from chunks, in order.
func NewPattern(chunks ...Chunk) Pattern {
	return Pattern{chunks: slices.Clone(chunks)}
}

// Chunks returns a copy of the pattern's chunks.
func (p Pattern) Chunks() []Chunk { return slices.Clone(p.chunks) }

// Len returns the number of chunks.
func (p Pattern) Len() int { return len(p.chunks) }

// Equal reports whether p and o have the same chunks in the same order.
func (p Pattern) Equal(o Pattern) bool { return slices.Equal(p.chunks, o.chunks) }

func (p Pattern) String() string {
	parts := make([]string, len(p.chunks))
	for i, c := range p.chunks {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Render expands the pattern for one package by concatenating its chunks
// left to right.
func (p Pattern) Render(m Metadata) string {
	var b strings.Builder
	for _, c := range p.chunks {
		switch c.Kind {
		case ChunkLiteral:
			b.WriteString(c.Text)
		case ChunkPackage:
			b.WriteString(m.PackageID())
		case ChunkLicense:
			b.WriteString(m.PackageLicense())
		case ChunkRepository:
			b.WriteString(m.PackageRepository())
		}
	}
	return b.String()
}

// PatternError reports a malformed output template.
type PatternError struct {
	Token  string // offending token, without braces for unknown placeholders
	Offset int    // byte offset of the token in the template
	reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", e.reason, e.Token, e.Offset)
}

// CompilePattern parses template into a [Pattern].
//
// The grammar is literal text mixed with the placeholders {p} (package
// identifier), {l} (license) and {r} (repository URL). "{{" and "}}" stand
// for literal braces. Adjacent literal text, escapes included, is merged
// into a single chunk. Any other placeholder, an unterminated "{" or a lone
// "}" is a *PatternError; nothing is ever passed through as literal text.
func CompilePattern(template string) (Pattern, error) {
	var (
		chunks []Chunk
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			chunks = append(chunks, Literal(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		rest := template[i:]
		switch {
		case strings.HasPrefix(rest, "{{"):
			lit.WriteByte('{')
			i += 2
		case strings.HasPrefix(rest, "}}"):
			lit.WriteByte('}')
			i += 2
		case rest[0] == '{':
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return Pattern{}, &PatternError{Token: rest, Offset: i, reason: "unterminated placeholder"}
			}
			token := rest[1:end]
			chunk, ok := placeholders[token]
			if !ok {
				return Pattern{}, &PatternError{Token: token, Offset: i, reason: "unsupported pattern"}
			}
			flush()
			chunks = append(chunks, chunk)
			i += end + 1
		case rest[0] == '}':
			return Pattern{}, &PatternError{Token: "}", Offset: i, reason: "unexpected"}
		default:
			lit.WriteByte(rest[0])
			i++
		}
	}
	flush()

	return Pattern{chunks: chunks}, nil
}

// MustCompilePattern is like [CompilePattern] but panics on error. It is
// meant for templates fixed at compile time.
func MustCompilePattern(template string) Pattern {
	p, err := CompilePattern(template)
	if err != nil {
		panic("format: MustCompilePattern(" + strconv.Quote(template) + "): " + err.Error())
	}
	return p
}
