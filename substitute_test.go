package jinjalight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinjalight/jinjalight/lexer"
	"github.com/jinjalight/jinjalight/parser"
	"github.com/jinjalight/jinjalight/value"
)

func subst(raw string, scope *Scope) (string, error) {
	return substitute(raw, lexer.DefaultSyntax(), scope, parser.Span{StartLine: 1})
}

func TestSubstituteNoMarkers(t *testing.T) {
	got, err := subst("plain text", NewScope())
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)
}

func TestSubstituteMultipleMarkers(t *testing.T) {
	s := NewScope()
	s.Set("a", value.FromInt(1))
	s.Set("b", value.FromString("two"))

	got, err := subst("{{a}} and {{ b }} and {{a}}", s)
	require.NoError(t, err)
	assert.Equal(t, "1 and two and 1", got)
}

func TestSubstituteUnbound(t *testing.T) {
	_, err := subst("{{ghost}}", NewScope())
	require.Error(t, err)
	assert.Equal(t, ErrUndefinedVar, err.(*Error).Kind)
}

func TestSubstituteUnclosedMarker(t *testing.T) {
	s := NewScope()
	s.Set("a", value.FromInt(1))

	_, err := subst("before {{a", s)
	require.Error(t, err)
	assert.Equal(t, ErrSyntax, err.(*Error).Kind)
}

func TestSubstituteInvalidIdentifier(t *testing.T) {
	for _, raw := range []string{"{{}}", "{{ a.b }}", "{{ a|upper }}", "{{ 1+2 }}"} {
		_, err := subst(raw, NewScope())
		require.Error(t, err, "marker %q must be rejected", raw)
		assert.Equal(t, ErrSyntax, err.(*Error).Kind)
	}
}

func TestSubstituteErrorLine(t *testing.T) {
	_, err := subst("one\ntwo\n{{missing}}", NewScope())
	require.Error(t, err)
	e := err.(*Error)
	require.NotNil(t, e.Span)
	assert.Equal(t, uint16(3), e.Span.StartLine)
}

func TestSubstituteNoPartialOutput(t *testing.T) {
	s := NewScope()
	s.Set("a", value.FromInt(1))

	got, err := subst("{{a}} then {{missing}}", s)
	require.Error(t, err)
	assert.Empty(t, got)
}
