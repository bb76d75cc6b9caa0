// Package parser builds the control-section tree for templates.
package parser

import (
	"fmt"
	"strings"

	"github.com/jinjalight/jinjalight/syntax"
)

// Span represents a location range in source code.
type Span = syntax.Span

// Node is the interface implemented by all tree nodes.
type Node interface {
	node()
	Span() Span
}

// Root is the top-level container of a parsed template. Exactly one exists
// per template.
type Root struct {
	Children []Node
	span     Span
}

func (r *Root) node()      {}
func (r *Root) Span() Span { return r.span }

// Container is a generic grouping of child nodes covering a span of the
// source. The parser does not currently produce Containers; the renderer
// treats them like Root so callers can assemble trees by hand.
type Container struct {
	Children    []Node
	StartOffset int
	EndOffset   int
	span        Span
}

func (c *Container) node()      {}
func (c *Container) Span() Span { return c.span }

// ForSection repeats its children once per integer in [LoopStart, LoopEnd),
// binding the integer to VarName for each iteration.
type ForSection struct {
	VarName   string
	LoopStart int64
	LoopEnd   int64
	Children  []Node
	span      Span
}

func (f *ForSection) node()      {}
func (f *ForSection) Span() Span { return f.span }

// IfSection renders its children once if the named variable is truthy
// (falsy when Negated).
type IfSection struct {
	Negated  bool
	VarName  string
	Children []Node
	span     Span
}

func (i *IfSection) node()      {}
func (i *IfSection) Span() Span { return i.span }

// Text is a literal text span, possibly containing {{var}} markers that are
// substituted at render time.
type Text struct {
	Raw  string
	span Span
}

func (t *Text) node()      {}
func (t *Text) Span() Span { return t.span }

// FormatSpan formats a span as " @ line:col-line:col".
func FormatSpan(s Span) string {
	return fmt.Sprintf(" @ %d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// DebugString returns a human-readable indented representation of a node.
func DebugString(n Node, indent int) string {
	ind := strings.Repeat("    ", indent)
	ind1 := strings.Repeat("    ", indent+1)

	switch v := n.(type) {
	case *Root:
		var sb strings.Builder
		sb.WriteString("Root {\n")
		sb.WriteString(debugChildren(v.Children, indent+1))
		sb.WriteString(ind)
		sb.WriteString("}")
		sb.WriteString(FormatSpan(v.span))
		return sb.String()

	case *Container:
		var sb strings.Builder
		fmt.Fprintf(&sb, "Container (%d, %d) {\n", v.StartOffset, v.EndOffset)
		sb.WriteString(debugChildren(v.Children, indent+1))
		sb.WriteString(ind)
		sb.WriteString("}")
		sb.WriteString(FormatSpan(v.span))
		return sb.String()

	case *ForSection:
		var sb strings.Builder
		fmt.Fprintf(&sb, "For (%s in range(%d, %d)) {\n", v.VarName, v.LoopStart, v.LoopEnd)
		sb.WriteString(debugChildren(v.Children, indent+1))
		sb.WriteString(ind)
		sb.WriteString("}")
		sb.WriteString(FormatSpan(v.span))
		return sb.String()

	case *IfSection:
		var sb strings.Builder
		neg := ""
		if v.Negated {
			neg = "not "
		}
		fmt.Fprintf(&sb, "If (%s%s) {\n", neg, v.VarName)
		sb.WriteString(debugChildren(v.Children, indent+1))
		sb.WriteString(ind)
		sb.WriteString("}")
		sb.WriteString(FormatSpan(v.span))
		return sb.String()

	case *Text:
		return fmt.Sprintf("Text {\n%sraw: %q,\n%s}%s", ind1, v.Raw, ind, FormatSpan(v.span))

	default:
		return fmt.Sprintf("<%T>", n)
	}
}

func debugChildren(children []Node, indent int) string {
	ind := strings.Repeat("    ", indent)
	var sb strings.Builder
	for _, c := range children {
		sb.WriteString(ind)
		sb.WriteString(DebugString(c, indent))
		sb.WriteString(",\n")
	}
	return sb.String()
}
