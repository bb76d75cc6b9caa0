package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jinjalight/jinjalight/lexer"
)

// Error represents a parse error.
type Error struct {
	Kind   string
	Detail string
	Name   string
	Line   uint16
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (at %s line %d)", e.Kind, e.Detail, e.Name, e.Line)
	}
	return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Detail, e.Line)
}

// Error kinds produced by the parser.
const (
	KindSyntaxError = "SyntaxError"
	KindUnknownTag  = "UnknownTag"
)

// Parser builds the control-section tree from a token stream.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	filename string
	lastSpan Span
}

// Parse parses template source and returns the tree or an error.
func Parse(source, filename string, syntax lexer.SyntaxConfig) (*Root, error) {
	tokens, err := lexer.Tokenize(source, syntax)
	if err != nil {
		lexErr := err.(*lexer.Error)
		return nil, &Error{
			Kind:   KindSyntaxError,
			Detail: lexErr.Detail,
			Name:   filename,
			Line:   lexErr.Line,
		}
	}

	p := &Parser{
		tokens:   tokens,
		filename: filename,
		lastSpan: Span{StartLine: 1, EndLine: 1},
	}

	root, parseErr := p.parse()
	if parseErr != nil {
		return nil, parseErr
	}
	return root, nil
}

// ParseDefault parses template source using the default syntax.
func ParseDefault(source, filename string) (*Root, error) {
	return Parse(source, filename, lexer.DefaultSyntax())
}

func (p *Parser) parse() (*Root, *Error) {
	span := Span{StartLine: 1, StartCol: 0, StartOffset: 0}
	children, err := p.subparse("")
	if err != nil {
		return nil, err
	}
	return &Root{
		Children: children,
		span:     p.expandSpan(span),
	}, nil
}

// subparse collects nodes until the named end tag closes the current
// section, or until end of input when no section is open (endTag == "").
func (p *Parser) subparse(endTag string) ([]Node, *Error) {
	var nodes []Node
	for {
		tok := p.advance()
		if tok == nil {
			if endTag != "" {
				return nil, p.unexpectedEOF(endTag)
			}
			return nodes, nil
		}

		switch tok.Type {
		case lexer.TokenTemplateData:
			nodes = append(nodes, &Text{Raw: tok.Value, span: tok.Span})

		case lexer.TokenBlock:
			fields := strings.Fields(tok.Value)
			if len(fields) == 0 {
				return nil, p.errorAt(tok.Span, KindSyntaxError, "empty block tag")
			}

			switch fields[0] {
			case "for":
				section, err := p.parseForHead(fields, tok.Span)
				if err != nil {
					return nil, err
				}
				body, err := p.subparse("endfor")
				if err != nil {
					return nil, err
				}
				section.Children = body
				section.span = p.expandSpan(tok.Span)
				nodes = append(nodes, section)

			case "if":
				section, err := p.parseIfHead(fields, tok.Span)
				if err != nil {
					return nil, err
				}
				body, err := p.subparse("endif")
				if err != nil {
					return nil, err
				}
				section.Children = body
				section.span = p.expandSpan(tok.Span)
				nodes = append(nodes, section)

			case "endfor", "endif":
				if len(fields) != 1 {
					return nil, p.errorAt(tok.Span, KindSyntaxError,
						fmt.Sprintf("unexpected content after `%s`", fields[0]))
				}
				if fields[0] != endTag {
					return nil, p.mismatchedEnd(tok.Span, fields[0], endTag)
				}
				return nodes, nil

			default:
				return nil, p.errorAt(tok.Span, KindUnknownTag,
					fmt.Sprintf("unknown tag `%s`", fields[0]))
			}
		}
	}
}

// parseForHead parses `for <name> in range(<start>,<end>)`.
func (p *Parser) parseForHead(fields []string, span Span) (*ForSection, *Error) {
	if len(fields) < 4 || fields[2] != "in" {
		return nil, p.errorAt(span, KindSyntaxError,
			"malformed for tag, expected `for <name> in range(<start>,<end>)`")
	}
	name := fields[1]
	if !IsIdent(name) {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("invalid loop variable name `%s`", name))
	}

	rangeExpr := strings.Join(fields[3:], " ")
	inner, ok := strings.CutPrefix(rangeExpr, "range(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("expected `range(<start>,<end>)`, got `%s`", rangeExpr))
	}
	inner = inner[:len(inner)-1]

	bounds := strings.Split(inner, ",")
	if len(bounds) != 2 {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("range takes exactly two bounds, got `%s`", rangeExpr))
	}

	start, ok := isNumber(strings.TrimSpace(bounds[0]))
	if !ok {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("invalid range start `%s`", strings.TrimSpace(bounds[0])))
	}
	end, ok := isNumber(strings.TrimSpace(bounds[1]))
	if !ok {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("invalid range end `%s`", strings.TrimSpace(bounds[1])))
	}

	return &ForSection{VarName: name, LoopStart: start, LoopEnd: end}, nil
}

// parseIfHead parses `if [not] <name>`. Exactly one variable name is
// supported; anything more fails rather than silently mis-parsing.
func (p *Parser) parseIfHead(fields []string, span Span) (*IfSection, *Error) {
	negated := false
	rest := fields[1:]
	if len(rest) > 0 && rest[0] == "not" {
		negated = true
		rest = rest[1:]
	}
	if len(rest) != 1 {
		return nil, p.errorAt(span, KindSyntaxError,
			"if takes a single variable condition, `if [not] <name>`")
	}
	name := rest[0]
	if !IsIdent(name) {
		return nil, p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("invalid condition variable name `%s`", name))
	}
	return &IfSection{Negated: negated, VarName: name}, nil
}

func (p *Parser) advance() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	tok := &p.tokens[p.pos]
	p.lastSpan = tok.Span
	p.pos++
	return tok
}

func (p *Parser) expandSpan(start Span) Span {
	return Span{
		StartLine:   start.StartLine,
		StartCol:    start.StartCol,
		StartOffset: start.StartOffset,
		EndLine:     p.lastSpan.EndLine,
		EndCol:      p.lastSpan.EndCol,
		EndOffset:   p.lastSpan.EndOffset,
	}
}

func (p *Parser) errorAt(span Span, kind, detail string) *Error {
	return &Error{
		Kind:   kind,
		Detail: detail,
		Name:   p.filename,
		Line:   span.StartLine,
	}
}

func (p *Parser) unexpectedEOF(endTag string) *Error {
	return p.errorAt(p.lastSpan, KindSyntaxError,
		fmt.Sprintf("unexpected end of input, expected `{%% %s %%}`", endTag))
}

func (p *Parser) mismatchedEnd(span Span, got, expected string) *Error {
	if expected == "" {
		return p.errorAt(span, KindSyntaxError,
			fmt.Sprintf("unexpected `%s`, no block is open", got))
	}
	return p.errorAt(span, KindSyntaxError,
		fmt.Sprintf("unexpected `%s`, expected `%s`", got, expected))
}

// isNumber reports whether the token is a literal base-10 integer with an
// optional leading minus sign, and returns its value.
func isNumber(s string) (int64, bool) {
	digits := s
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsIdent reports whether s is a valid variable identifier: letters, digits
// and underscores, not starting with a digit.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
