package lexer

import (
	"strings"

	"github.com/jinjalight/jinjalight/syntax"
)

// Lexer tokenizes template source code.
type Lexer struct {
	source string
	pos    int    // current position in source
	line   uint16 // current line (1-indexed)
	col    uint16 // current column (0-indexed at line start)

	startPos  int
	startLine uint16
	startCol  uint16

	syntax SyntaxConfig
}

// New creates a new Lexer for the given input.
func New(input string, syntax SyntaxConfig) *Lexer {
	return &Lexer{
		source: input,
		line:   1,
		col:    0,
		syntax: syntax,
	}
}

// Tokenize returns all tokens from the input.
func Tokenize(input string, syntax SyntaxConfig) ([]Token, error) {
	return New(input, syntax).All()
}

// All collects all tokens into a slice.
func (l *Lexer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
	}
	return tokens, nil
}

// Next returns the next token, or nil at end of input.
func (l *Lexer) Next() (*Token, error) {
	for {
		if l.pos >= len(l.source) {
			return nil, nil
		}

		rest := l.source[l.pos:]
		blockIdx := strings.Index(rest, l.syntax.BlockStart)
		commentIdx := strings.Index(rest, l.syntax.CommentStart)

		markerIdx, isComment := blockIdx, false
		if commentIdx >= 0 && (blockIdx < 0 || commentIdx < blockIdx) {
			markerIdx, isComment = commentIdx, true
		}

		if markerIdx < 0 {
			// No marker found, rest is template data.
			l.markStart()
			text := l.advance(len(rest))
			tok := l.makeToken(TokenTemplateData, text)
			return &tok, nil
		}

		if markerIdx > 0 {
			l.markStart()
			text := l.advance(markerIdx)
			tok := l.makeToken(TokenTemplateData, text)
			return &tok, nil
		}

		if isComment {
			if err := l.skipComment(); err != nil {
				return nil, err
			}
			continue
		}

		return l.lexBlock()
	}
}

// lexBlock consumes a {% ... %} tag and emits its trimmed content.
func (l *Lexer) lexBlock() (*Token, error) {
	l.markStart()
	l.advance(len(l.syntax.BlockStart))

	end := strings.Index(l.source[l.pos:], l.syntax.BlockEnd)
	if end < 0 {
		return nil, &Error{
			Detail: "unterminated block tag, expected `" + l.syntax.BlockEnd + "`",
			Line:   l.startLine,
		}
	}

	content := l.advance(end)
	l.advance(len(l.syntax.BlockEnd))
	tok := l.makeToken(TokenBlock, strings.TrimSpace(content))
	return &tok, nil
}

// skipComment consumes a {# ... #} comment, emitting nothing.
func (l *Lexer) skipComment() error {
	l.markStart()
	l.advance(len(l.syntax.CommentStart))

	end := strings.Index(l.source[l.pos:], l.syntax.CommentEnd)
	if end < 0 {
		return &Error{
			Detail: "unterminated comment, expected `" + l.syntax.CommentEnd + "`",
			Line:   l.startLine,
		}
	}
	l.advance(end + len(l.syntax.CommentEnd))
	return nil
}

// markStart records the current position as the start of the next token.
func (l *Lexer) markStart() {
	l.startPos = l.pos
	l.startLine = l.line
	l.startCol = l.col
}

// advance consumes n bytes, tracking line and column, and returns them.
func (l *Lexer) advance(n int) string {
	text := l.source[l.pos : l.pos+n]
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
	}
	l.pos += n
	return text
}

func (l *Lexer) makeToken(typ TokenType, val string) Token {
	return Token{
		Type:  typ,
		Value: val,
		Span: syntax.Span{
			StartLine:   l.startLine,
			StartCol:    l.startCol,
			StartOffset: uint32(l.startPos),
			EndLine:     l.line,
			EndCol:      l.col,
			EndOffset:   uint32(l.pos),
		},
	}
}
