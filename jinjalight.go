// Package jinjalight provides a minimal Jinja-style template engine.
//
// A template is compiled once from source text into an immutable tree, then
// rendered against caller-supplied variable bindings to produce output text.
//
// # Quick Start
//
//	tmpl, _ := jinjalight.New("Hello {{ name }}!")
//	tmpl.SetString("name", "World")
//	result, _ := tmpl.Render()
//	fmt.Println(result) // Output: Hello World!
//
// # Template Syntax
//
// Three constructs are recognized:
//
//   - Substitution: {{ identifier }} (surrounding whitespace optional)
//   - Loop: {% for identifier in range(intLiteral,intLiteral) %} ... {% endfor %}
//   - Conditional: {% if [not ]identifier %} ... {% endif %}
//
// Comments ({# ... #}) are stripped from the output. Any other {% ... %}
// content is a parse error. There is no expression evaluation, template
// inheritance, auto-escaping or file loading.
//
// # Values and Rendering
//
// Variables are bound to integer, float or string values:
//
//	tmpl.SetInt("count", 3)
//	tmpl.SetFloat("ratio", 0.5)
//	tmpl.SetString("name", "Alice")
//
// Rebinding a name overwrites it, and the same parsed template can be
// rendered repeatedly with different bindings:
//
//	tmpl, _ := jinjalight.New("{{ x }}")
//	tmpl.SetInt("x", 1)
//	one, _ := tmpl.Render()
//	tmpl.SetInt("x", 2)
//	two, _ := tmpl.Render()
//
// An if condition takes the truthiness of a single variable: integer 0,
// float 0.0 and the empty string are false, everything else is true. A for
// loop binds its loop variable for the duration of each iteration body;
// binding a name that is already active in scope is an error.
//
// # Error Handling
//
// All errors are *Error values carrying a kind, a message and, where known,
// the template name and line:
//
//	_, err := tmpl.Render()
//	if e, ok := err.(*jinjalight.Error); ok {
//	    fmt.Println(e.Kind, e.Message)
//	}
//
// Errors are fatal to the parse or render call that produced them; there is
// no partial output.
package jinjalight

import (
	"github.com/jinjalight/jinjalight/value"
)

// Version is the version of the jinjalight library.
const Version = "0.1.0"

// Value is a value bound to a template variable.
type Value = value.Value

// ValueKind describes the type of a Value.
type ValueKind = value.ValueKind

// Common value kinds
const (
	KindInt    = value.KindInt
	KindFloat  = value.KindFloat
	KindString = value.KindString
)

// Value constructors
var (
	FromInt    = value.FromInt
	FromFloat  = value.FromFloat
	FromString = value.FromString
)
