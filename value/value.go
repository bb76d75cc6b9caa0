// Package value provides the boxed value type for the template engine.
//
// Templates are rendered against bindings from variable name to Value. A
// Value holds exactly one of three variants: a 64-bit integer, a 64-bit
// float, or a string. Values are immutable once constructed; Render and
// IsTrue are pure.
//
// Example usage:
//
//	count := value.FromInt(42)
//	ratio := value.FromFloat(0.5)
//	name := value.FromString("World")
//
//	count.Render() // "42"
//	name.IsTrue()  // true
package value

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind describes the type of a Value.
type ValueKind int

const (
	// KindInt represents a 64-bit integer value.
	KindInt ValueKind = iota

	// KindFloat represents a 64-bit floating-point value.
	KindFloat

	// KindString represents a text string.
	KindString

	// KindInvalid represents the zero Value, which holds no variant.
	KindInvalid
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid value"
	}
}

// Value represents a value bound to a template variable.
//
// The zero Value is invalid; always construct through FromInt, FromFloat or
// FromString.
type Value struct {
	data any
}

// FromInt creates a Value from an integer.
func FromInt(v int64) Value {
	return Value{data: v}
}

// FromFloat creates a Value from a float.
func FromFloat(v float64) Value {
	return Value{data: v}
}

// FromString creates a Value from a string.
func FromString(v string) Value {
	return Value{data: v}
}

// Kind returns the kind of the value.
func (v Value) Kind() ValueKind {
	switch v.data.(type) {
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	default:
		return KindInvalid
	}
}

// AsInt returns the integer value if the value is an integer.
func (v Value) AsInt() (int64, bool) {
	i, ok := v.data.(int64)
	return i, ok
}

// AsFloat returns the float value if the value is a float.
func (v Value) AsFloat() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok
}

// AsString returns the string value if the value is a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// Render returns the canonical text form of the value as it appears in
// template output.
func (v Value) Render() string {
	switch d := v.data.(type) {
	case int64:
		return strconv.FormatInt(d, 10)
	case float64:
		// Match Jinja2's float formatting
		if math.IsInf(d, 1) {
			return "inf"
		}
		if math.IsInf(d, -1) {
			return "-inf"
		}
		if math.IsNaN(d) {
			return "nan"
		}
		if d == math.Trunc(d) && math.Abs(d) < 1e15 {
			return fmt.Sprintf("%.1f", d)
		}
		return fmt.Sprintf("%g", d)
	case string:
		return d
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Render()
}

// IsTrue returns the truthiness of the value used by if conditions. It is
// false only for integer 0, float 0.0 and the empty string.
func (v Value) IsTrue() bool {
	switch d := v.data.(type) {
	case int64:
		return d != 0
	case float64:
		return d != 0.0
	case string:
		return d != ""
	default:
		return false
	}
}
