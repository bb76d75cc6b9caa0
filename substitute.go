package jinjalight

import (
	"fmt"
	"strings"

	"github.com/jinjalight/jinjalight/lexer"
	"github.com/jinjalight/jinjalight/parser"
	"github.com/jinjalight/jinjalight/syntax"
)

// substitute replaces every {{identifier}} marker in raw with the rendered
// text of the bound value. It runs only at render time, so a parsed tree can
// be rendered repeatedly against different bindings.
//
// span is the source location of raw; errors are located at the line of the
// offending marker within it.
func substitute(raw string, cfg lexer.SyntaxConfig, scope *Scope, span parser.Span) (string, error) {
	var sb strings.Builder
	sb.Grow(len(raw))

	pos := 0
	for {
		idx := strings.Index(raw[pos:], cfg.VarStart)
		if idx < 0 {
			sb.WriteString(raw[pos:])
			return sb.String(), nil
		}
		sb.WriteString(raw[pos : pos+idx])
		markerPos := pos + idx
		pos = markerPos + len(cfg.VarStart)

		end := strings.Index(raw[pos:], cfg.VarEnd)
		if end < 0 {
			return "", NewError(ErrSyntax,
				fmt.Sprintf("unclosed variable marker, expected `%s`", cfg.VarEnd)).
				WithSpan(markerSpan(raw, markerPos, span))
		}

		name := strings.TrimSpace(raw[pos : pos+end])
		if !parser.IsIdent(name) {
			return "", NewError(ErrSyntax,
				fmt.Sprintf("invalid variable marker `%s%s%s`", cfg.VarStart, name, cfg.VarEnd)).
				WithSpan(markerSpan(raw, markerPos, span))
		}

		v, err := scope.Lookup(name)
		if err != nil {
			return "", err.(*Error).WithSpan(markerSpan(raw, markerPos, span))
		}
		sb.WriteString(v.Render())
		pos += end + len(cfg.VarEnd)
	}
}

// markerSpan locates a marker at byte offset pos of raw, given the span of
// raw itself.
func markerSpan(raw string, pos int, span parser.Span) syntax.Span {
	line := span.StartLine + uint16(strings.Count(raw[:pos], "\n"))
	return syntax.Span{StartLine: line, EndLine: line}
}
