package jinjalight

import (
	"fmt"

	"github.com/jinjalight/jinjalight/syntax"
)

// ErrorKind describes the type of error.
type ErrorKind int

const (
	// ErrSyntax is a parse failure: unterminated block, mismatched end tag,
	// malformed range bounds or a malformed variable marker.
	ErrSyntax ErrorKind = iota

	// ErrUnknownTag is an unrecognized {% ... %} tag.
	ErrUnknownTag

	// ErrUndefinedVar is a substitution or condition referencing a name
	// absent from the current scope.
	ErrUndefinedVar

	// ErrDuplicateVar is a loop attempting to bind a variable name that is
	// already active in scope.
	ErrDuplicateVar
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnknownTag:
		return "unknown tag"
	case ErrUndefinedVar:
		return "undefined variable"
	case ErrDuplicateVar:
		return "duplicate variable"
	default:
		return "error"
	}
}

// Error represents an error that occurred during template parsing or
// rendering. All errors are fatal to the operation that produced them; there
// is no partial output.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    *syntax.Span
	Name    string // template name
}

func (e *Error) Error() string {
	if e.Name != "" && e.Span != nil {
		return fmt.Sprintf("%s: %s (at %s line %d)", e.Kind, e.Message, e.Name, e.Span.StartLine)
	}
	if e.Span != nil {
		return fmt.Sprintf("%s: %s (at line %d)", e.Kind, e.Message, e.Span.StartLine)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WithSpan adds span information to an error.
func (e *Error) WithSpan(span syntax.Span) *Error {
	e.Span = &span
	return e
}

// WithName adds the template name to an error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}
