package jinjalight

import (
	"fmt"
	"strings"

	"github.com/jinjalight/jinjalight/lexer"
	"github.com/jinjalight/jinjalight/parser"
	"github.com/jinjalight/jinjalight/value"
)

// renderState holds the mutable state of one render pass: the scope and the
// output being built. The tree itself is never mutated.
type renderState struct {
	name   string
	syntax lexer.SyntaxConfig
	scope  *Scope
	out    *strings.Builder
}

func (s *renderState) renderNode(n parser.Node) error {
	switch nd := n.(type) {
	case *parser.Root:
		return s.renderChildren(nd.Children)

	case *parser.Container:
		return s.renderChildren(nd.Children)

	case *parser.Text:
		text, err := substitute(nd.Raw, s.syntax, s.scope, nd.Span())
		if err != nil {
			return s.locate(err, nd.Span())
		}
		s.out.WriteString(text)
		return nil

	case *parser.ForSection:
		return s.renderFor(nd)

	case *parser.IfSection:
		return s.renderIf(nd)

	default:
		return NewError(ErrSyntax, fmt.Sprintf("cannot render node of type %T", n))
	}
}

func (s *renderState) renderChildren(children []parser.Node) error {
	for _, c := range children {
		if err := s.renderNode(c); err != nil {
			return err
		}
	}
	return nil
}

// renderFor repeats the section body once per integer in the half-open
// range, binding the loop variable for the duration of each iteration. The
// loop variable must not already be bound when the loop starts.
func (s *renderState) renderFor(f *parser.ForSection) error {
	if s.scope.Has(f.VarName) {
		return s.locate(NewError(ErrDuplicateVar,
			fmt.Sprintf("variable `%s` already exists in this context", f.VarName)), f.Span())
	}
	for i := f.LoopStart; i < f.LoopEnd; i++ {
		if err := s.scope.Bind(f.VarName, value.FromInt(i)); err != nil {
			return s.locate(err, f.Span())
		}
		if err := s.renderChildren(f.Children); err != nil {
			return err
		}
		if err := s.scope.Unbind(f.VarName); err != nil {
			return s.locate(err, f.Span())
		}
	}
	return nil
}

// renderIf evaluates the single-variable condition once and renders the body
// if it holds. There is no else branch.
func (s *renderState) renderIf(i *parser.IfSection) error {
	v, err := s.scope.Lookup(i.VarName)
	if err != nil {
		return s.locate(err, i.Span())
	}
	if v.IsTrue() != i.Negated {
		return s.renderChildren(i.Children)
	}
	return nil
}

// locate attaches the node's span and the template name to an error that
// does not already carry them.
func (s *renderState) locate(err error, span parser.Span) error {
	if e, ok := err.(*Error); ok {
		if e.Span == nil {
			e.WithSpan(span)
		}
		if e.Name == "" {
			e.WithName(s.name)
		}
	}
	return err
}
