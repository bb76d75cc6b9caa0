package jinjalight

import (
	"fmt"

	"github.com/jinjalight/jinjalight/value"
)

// Scope is the active mapping from variable name to value during a render
// pass. Caller bindings persist for the whole render; loop variables are
// bound immediately before each iteration body and unbound after it.
//
// A Scope must not be shared across concurrent render calls.
type Scope struct {
	values map[string]value.Value
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]value.Value)}
}

// Bind adds a binding. Binding a name that is already present is an error,
// not a silent shadow; this is the rule loop variables are checked against.
func (s *Scope) Bind(name string, v value.Value) error {
	if _, ok := s.values[name]; ok {
		return NewError(ErrDuplicateVar,
			fmt.Sprintf("variable `%s` already exists in this context", name))
	}
	s.values[name] = v
	return nil
}

// Unbind removes a previously bound name. The name must exist; unbinding an
// absent name indicates an engine bug and is reported as one.
func (s *Scope) Unbind(name string) error {
	if _, ok := s.values[name]; !ok {
		return NewError(ErrUndefinedVar,
			fmt.Sprintf("cannot unbind `%s`, not bound", name))
	}
	delete(s.values, name)
	return nil
}

// Lookup returns the value bound to name.
func (s *Scope) Lookup(name string) (value.Value, error) {
	v, ok := s.values[name]
	if !ok {
		return value.Value{}, NewError(ErrUndefinedVar,
			fmt.Sprintf("variable `%s` is not defined", name))
	}
	return v, nil
}

// Has reports whether name is currently bound.
func (s *Scope) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Set binds name unconditionally, overwriting any existing binding. This is
// the caller-facing rebind path, distinct from the loop-variable Bind rule.
func (s *Scope) Set(name string, v value.Value) {
	s.values[name] = v
}
