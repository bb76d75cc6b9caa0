package jinjalight

import (
	"strings"

	"github.com/jinjalight/jinjalight/lexer"
	"github.com/jinjalight/jinjalight/parser"
	"github.com/jinjalight/jinjalight/syntax"
	"github.com/jinjalight/jinjalight/value"
)

// Template is a parsed template plus its current variable bindings.
//
// Parsing happens at construction; parse errors surface immediately. The
// parsed tree is immutable and is reused across Render calls. Each Render
// call gets its own scope seeded from the current bindings, so a tree may be
// rendered repeatedly (or concurrently, as long as the bindings are not
// mutated while a render is in flight) with independent results.
type Template struct {
	name   string
	source string
	syntax lexer.SyntaxConfig
	root   *parser.Root
	values map[string]value.Value
}

// New creates a template from source using the default syntax.
func New(source string) (*Template, error) {
	return NewNamed("<string>", source)
}

// NewNamed creates a template from source with a name used in error
// messages.
func NewNamed(name, source string) (*Template, error) {
	return NewWithSyntax(name, source, lexer.DefaultSyntax())
}

// NewWithSyntax creates a template from source with custom delimiters.
func NewWithSyntax(name, source string, cfg lexer.SyntaxConfig) (*Template, error) {
	root, err := parser.Parse(source, name, cfg)
	if err != nil {
		return nil, convertParseError(err)
	}
	return &Template{
		name:   name,
		source: source,
		syntax: cfg,
		root:   root,
		values: make(map[string]value.Value),
	}, nil
}

// Set binds a variable to a value. Rebinding an existing name overwrites it.
func (t *Template) Set(name string, v value.Value) *Template {
	t.values[name] = v
	return t
}

// SetInt binds a variable to an integer value.
func (t *Template) SetInt(name string, v int64) *Template {
	return t.Set(name, value.FromInt(v))
}

// SetFloat binds a variable to a float value.
func (t *Template) SetFloat(name string, v float64) *Template {
	return t.Set(name, value.FromFloat(v))
}

// SetString binds a variable to a string value.
func (t *Template) SetString(name string, v string) *Template {
	return t.Set(name, value.FromString(v))
}

// Render produces the output text for the current bindings. It may be
// called multiple times with different bindings between calls; the parsed
// tree is never mutated.
func (t *Template) Render() (string, error) {
	scope := NewScope()
	for name, v := range t.values {
		scope.Set(name, v)
	}

	state := &renderState{
		name:   t.name,
		syntax: t.syntax,
		scope:  scope,
		out:    &strings.Builder{},
	}
	if err := state.renderNode(t.root); err != nil {
		return "", err
	}
	return state.out.String(), nil
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Source returns the template source.
func (t *Template) Source() string {
	return t.source
}

// DebugString returns a human-readable indented dump of the parsed tree.
// Diagnostic only; the exact format is not part of the contract.
func (t *Template) DebugString() string {
	return parser.DebugString(t.root, 0)
}

func convertParseError(err error) error {
	pe, ok := err.(*parser.Error)
	if !ok {
		return err
	}
	kind := ErrSyntax
	if pe.Kind == parser.KindUnknownTag {
		kind = ErrUnknownTag
	}
	return &Error{
		Kind:    kind,
		Message: pe.Detail,
		Name:    pe.Name,
		Span:    &syntax.Span{StartLine: pe.Line, EndLine: pe.Line},
	}
}
