package ir

import (
	"fmt"
	"strings"
)

// Attribute is a named constant attached to an operation. Attributes
// are immutable; updating one on an operation replaces the stored
// value wholesale.
type Attribute interface {
	// attrNode marks a structure as an attribute node and prevents
	// external implementations.
	attrNode()

	// String renders the attribute in its textual form.
	String() string
}

// IntAttr is a 64-bit integer attribute.
type IntAttr int64

func (IntAttr) attrNode() {}

func (a IntAttr) String() string {
	return fmt.Sprintf("%d", int64(a))
}

// BoolAttr is a boolean attribute.
type BoolAttr bool

func (BoolAttr) attrNode() {}

func (a BoolAttr) String() string {
	return fmt.Sprintf("%t", bool(a))
}

// StringAttr is a string attribute.
type StringAttr string

func (StringAttr) attrNode() {}

func (a StringAttr) String() string {
	return fmt.Sprintf("%q", string(a))
}

// IntArrayAttr is a sequence-of-integers attribute.
type IntArrayAttr []int64

func (IntArrayAttr) attrNode() {}

func (a IntArrayAttr) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clone returns a copy of the array attribute.
func (a IntArrayAttr) Clone() IntArrayAttr {
	clone := make(IntArrayAttr, len(a))
	copy(clone, a)
	return clone
}

// TypeAttr wraps a type as an attribute value.
type TypeAttr struct {
	T Type
}

func (TypeAttr) attrNode() {}

func (a TypeAttr) String() string {
	return a.T.String()
}

// NamedAttr is a single entry of an operation's attribute dictionary.
type NamedAttr struct {
	Name  string
	Value Attribute
}

// cloneAttrs copies an attribute list. Attribute values are immutable
// except IntArrayAttr, whose backing slice is duplicated so the copy
// cannot alias the source.
func cloneAttrs(attrs []NamedAttr) []NamedAttr {
	if len(attrs) == 0 {
		return nil
	}
	clone := make([]NamedAttr, len(attrs))
	copy(clone, attrs)
	for i, na := range clone {
		if arr, ok := na.Value.(IntArrayAttr); ok {
			clone[i].Value = arr.Clone()
		}
	}
	return clone
}
