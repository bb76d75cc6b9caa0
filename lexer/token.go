// Package lexer splits template source into template data and block tags.
//
// The lexer only recognizes block tags ({% ... %}) and comments ({# ... #}).
// Variable markers ({{ ... }}) are left untouched inside template data; they
// are resolved at render time by the substitution engine.
package lexer

import (
	"fmt"

	"github.com/jinjalight/jinjalight/syntax"
)

// TokenType represents the type of a token.
type TokenType int

const (
	// TokenTemplateData is raw text between tags, variable markers included.
	TokenTemplateData TokenType = iota

	// TokenBlock is the trimmed content of a single {% ... %} tag.
	TokenBlock
)

func (t TokenType) String() string {
	switch t {
	case TokenTemplateData:
		return "template data"
	case TokenBlock:
		return "block tag"
	default:
		return "unknown"
	}
}

// Token is a single lexed token with its source location.
type Token struct {
	Type  TokenType
	Value string
	Span  syntax.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Value)
}

// Error represents a tokenization error.
type Error struct {
	Detail string
	Line   uint16
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Detail, e.Line)
}
