package jinjalight

import (
	"strings"
	"testing"

	"github.com/jinjalight/jinjalight/lexer"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func render(t *testing.T, tmpl *Template) string {
	t.Helper()
	result, err := tmpl.Render()
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	return result
}

func mustNew(t *testing.T, source string) *Template {
	t.Helper()
	tmpl, err := New(source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return tmpl
}

func renderKind(t *testing.T, tmpl *Template) ErrorKind {
	t.Helper()
	_, err := tmpl.Render()
	if err == nil {
		t.Fatal("expected render error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	return e.Kind
}

func TestLiteralPassthrough(t *testing.T) {
	source := "just some text, no tags at all\nsecond line"
	tmpl := mustNew(t, source)
	if got := render(t, tmpl); got != source {
		t.Errorf("expected %q, got %q", source, got)
	}
}

func TestSubstitution(t *testing.T) {
	tmpl := mustNew(t, "{{name}}")
	tmpl.SetString("name", "hi")
	if got := render(t, tmpl); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}

func TestSubstitutionCanonicalForms(t *testing.T) {
	tmpl := mustNew(t, "{{i}} {{f}} {{g}} {{s}}")
	tmpl.SetInt("i", 5)
	tmpl.SetFloat("f", 2.0)
	tmpl.SetFloat("g", 3.14)
	tmpl.SetString("s", "hi")
	if got := render(t, tmpl); got != "5 2.0 3.14 hi" {
		t.Errorf("expected '5 2.0 3.14 hi', got %q", got)
	}
}

func TestSubstitutionWhitespace(t *testing.T) {
	tmpl := mustNew(t, "{{  name  }}")
	tmpl.SetString("name", "x")
	if got := render(t, tmpl); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}

func TestUnboundVariable(t *testing.T) {
	tmpl := mustNew(t, "{{unbound}}")
	if kind := renderKind(t, tmpl); kind != ErrUndefinedVar {
		t.Errorf("expected ErrUndefinedVar, got %v", kind)
	}
}

func TestUnclosedVariableMarker(t *testing.T) {
	tmpl := mustNew(t, "text {{name")
	if kind := renderKind(t, tmpl); kind != ErrSyntax {
		t.Errorf("expected ErrSyntax, got %v", kind)
	}
}

func TestMalformedVariableMarker(t *testing.T) {
	tmpl := mustNew(t, "{{a + b}}")
	if kind := renderKind(t, tmpl); kind != ErrSyntax {
		t.Errorf("expected ErrSyntax, got %v", kind)
	}
}

func TestForLoop(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(0,3) %}{{i}}{% endfor %}")
	if got := render(t, tmpl); got != "012" {
		t.Errorf("expected '012', got %q", got)
	}
}

func TestForLoopEmptyRange(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(3,3) %}{{i}}{% endfor %}")
	if got := render(t, tmpl); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestForLoopNegativeRange(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(-2,1) %}{{i}};{% endfor %}")
	if got := render(t, tmpl); got != "-2;-1;0;" {
		t.Errorf("expected '-2;-1;0;', got %q", got)
	}
}

func TestNestedForLoops(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(0,2) %}{% for j in range(0,2) %}{{i}}{{j}};{% endfor %}{% endfor %}")
	if got := render(t, tmpl); got != "00;01;10;11;" {
		t.Errorf("expected '00;01;10;11;', got %q", got)
	}
}

func TestIfTruthy(t *testing.T) {
	tests := []struct {
		name string
		bind func(*Template)
		want string
	}{
		{"int zero", func(tm *Template) { tm.SetInt("flag", 0) }, ""},
		{"int one", func(tm *Template) { tm.SetInt("flag", 1) }, "A"},
		{"float zero", func(tm *Template) { tm.SetFloat("flag", 0.0) }, ""},
		{"float nonzero", func(tm *Template) { tm.SetFloat("flag", 0.5) }, "A"},
		{"empty string", func(tm *Template) { tm.SetString("flag", "") }, ""},
		{"nonempty string", func(tm *Template) { tm.SetString("flag", "y") }, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := mustNew(t, "{% if flag %}A{% endif %}")
			tt.bind(tmpl)
			if got := render(t, tmpl); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIfNot(t *testing.T) {
	tmpl := mustNew(t, "{% if not flag %}A{% endif %}")
	tmpl.SetInt("flag", 0)
	if got := render(t, tmpl); got != "A" {
		t.Errorf("expected 'A', got %q", got)
	}

	tmpl.SetInt("flag", 1)
	if got := render(t, tmpl); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestIfUnboundCondition(t *testing.T) {
	tmpl := mustNew(t, "{% if missing %}A{% endif %}")
	if kind := renderKind(t, tmpl); kind != ErrUndefinedVar {
		t.Errorf("condition evaluation must not default to false, got %v", kind)
	}
}

func TestLoopVariableScoping(t *testing.T) {
	// The loop variable disappears after the loop body.
	tmpl := mustNew(t, "{% for i in range(0,1) %}x{% endfor %}{{i}}")
	if kind := renderKind(t, tmpl); kind != ErrUndefinedVar {
		t.Errorf("loop variable leaked past endfor, got %v", kind)
	}
}

func TestDuplicateLoopVariable(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(0,2) %}{% for i in range(0,2) %}x{% endfor %}{% endfor %}")
	if kind := renderKind(t, tmpl); kind != ErrDuplicateVar {
		t.Errorf("expected ErrDuplicateVar, got %v", kind)
	}
}

func TestLoopVariableShadowsBinding(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(0,2) %}x{% endfor %}")
	tmpl.SetInt("i", 9)
	if kind := renderKind(t, tmpl); kind != ErrDuplicateVar {
		t.Errorf("expected ErrDuplicateVar, got %v", kind)
	}
}

func TestSiblingLoopsReuseVariable(t *testing.T) {
	tmpl := mustNew(t, "{% for i in range(0,2) %}a{% endfor %}{% for i in range(0,2) %}b{% endfor %}")
	if got := render(t, tmpl); got != "aabb" {
		t.Errorf("sibling loops may reuse a name, expected 'aabb', got %q", got)
	}
}

func TestRerenderIndependence(t *testing.T) {
	tmpl := mustNew(t, "{{x}}-{% for i in range(0,2) %}{{x}}{% endfor %}")
	tmpl.SetString("x", "a")
	if got := render(t, tmpl); got != "a-aa" {
		t.Errorf("expected 'a-aa', got %q", got)
	}

	tmpl.SetString("x", "b")
	if got := render(t, tmpl); got != "b-bb" {
		t.Errorf("expected 'b-bb', got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	tmpl := mustNew(t, "{{x}}")
	tmpl.SetInt("x", 1).SetInt("x", 2)
	if got := render(t, tmpl); got != "2" {
		t.Errorf("caller-level rebinding must overwrite, got %q", got)
	}
}

func TestParseErrorsAtConstruction(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   ErrorKind
	}{
		{"unterminated for", "{% for x in range(0,1) %}body", ErrSyntax},
		{"mismatched end", "{% for x in range(0,1) %}{% endif %}", ErrSyntax},
		{"bad range", "{% for x in range(a,b) %}{% endfor %}", ErrSyntax},
		{"unknown tag", "{% frob %}", ErrUnknownTag},
		{"unterminated tag", "{% if x", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.source)
			if err == nil {
				t.Fatal("expected parse error")
			}
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, e.Kind)
			}
		})
	}
}

func TestComments(t *testing.T) {
	tmpl := mustNew(t, "a{# this never shows #}b")
	if got := render(t, tmpl); got != "ab" {
		t.Errorf("expected 'ab', got %q", got)
	}
}

func TestCustomDelimiters(t *testing.T) {
	cfg := lexer.SyntaxConfig{
		BlockStart:   "<%",
		BlockEnd:     "%>",
		VarStart:     "<<",
		VarEnd:       ">>",
		CommentStart: "<#",
		CommentEnd:   "#>",
	}
	tmpl, err := NewWithSyntax("custom", "<% for i in range(0,3) %><<i>><% endfor %>", cfg)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := render(t, tmpl); got != "012" {
		t.Errorf("expected '012', got %q", got)
	}
}

func TestErrorMentionsNameAndLine(t *testing.T) {
	tmpl, err := NewNamed("greeting", "line1\n{{missing}}")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = tmpl.Render()
	if err == nil {
		t.Fatal("expected render error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "greeting") || !strings.Contains(msg, "line 2") {
		t.Errorf("error should carry template name and line: %q", msg)
	}
}

func TestDebugString(t *testing.T) {
	tmpl := mustNew(t, "a{% for i in range(0,2) %}{% if not ok %}b{% endif %}{% endfor %}")
	dump := tmpl.DebugString()
	for _, want := range []string{"Root {", "For (i in range(0, 2))", "If (not ok)", "Text {"} {
		if !strings.Contains(dump, want) {
			t.Errorf("debug dump missing %q:\n%s", want, dump)
		}
	}
}

func TestNameAndSource(t *testing.T) {
	tmpl, err := NewNamed("hello", "{{x}}")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if tmpl.Name() != "hello" {
		t.Errorf("unexpected name %q", tmpl.Name())
	}
	if tmpl.Source() != "{{x}}" {
		t.Errorf("unexpected source %q", tmpl.Source())
	}
}

func TestMixedControlFlow(t *testing.T) {
	source := "Hello!\n" +
		"{% if show %}{% for i in range(1,4) %}item {{i}} for {{who}}\n{% endfor %}{% endif %}" +
		"Bye."
	tmpl := mustNew(t, source)
	tmpl.SetInt("show", 1)
	tmpl.SetString("who", "Ann")
	want := "Hello!\nitem 1 for Ann\nitem 2 for Ann\nitem 3 for Ann\nBye."
	if got := render(t, tmpl); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	tmpl.SetInt("show", 0)
	if got := render(t, tmpl); got != "Hello!\nBye." {
		t.Errorf("expected %q, got %q", "Hello!\nBye.", got)
	}
}
