package ir

import "fmt"

// Location records where an operation originated, for diagnostics.
// The zero value is the unknown location.
type Location struct {
	File string
	Line int
	Col  int
}

// UnknownLoc is the location of operations with no source provenance.
var UnknownLoc = Location{}

func (l Location) String() string {
	if l.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Operation is a single IR node: a name identifying its kind, an
// ordered operand list, an ordered result list, an attribute
// dictionary, and at most one attached region.
//
// Operands are replaced wholesale, never patched one slot at a time.
// Attribute updates likewise replace the stored value for a name in
// full. Reads are safe for concurrent use; mutation requires the
// caller to hold exclusive access to the operation.
type Operation struct {
	name     string
	loc      Location
	operands []Value
	results  []*OpResult
	attrs    []NamedAttr
	region   *Region
}

// Name returns the operation's kind name, e.g. "strata.generic".
func (op *Operation) Name() string {
	return op.name
}

// Loc returns the operation's source location.
func (op *Operation) Loc() Location {
	return op.loc
}

// NumOperands returns the number of operands.
func (op *Operation) NumOperands() int {
	return len(op.operands)
}

// Operand returns the operand at absolute position i.
// An out-of-range index is a contract violation and panics.
func (op *Operation) Operand(i int) Value {
	if i < 0 || i >= len(op.operands) {
		panic(fmt.Sprintf("ir: operand index %d out of range [0, %d)", i, len(op.operands)))
	}
	return op.operands[i]
}

// Operands returns a copy of the operand list.
func (op *Operation) Operands() []Value {
	out := make([]Value, len(op.operands))
	copy(out, op.operands)
	return out
}

// SetOperands replaces the whole operand list.
func (op *Operation) SetOperands(operands []Value) {
	out := make([]Value, len(operands))
	copy(out, operands)
	op.operands = out
}

// NumResults returns the number of results.
func (op *Operation) NumResults() int {
	return len(op.results)
}

// Result returns the result at position i.
// An out-of-range index is a contract violation and panics.
func (op *Operation) Result(i int) *OpResult {
	if i < 0 || i >= len(op.results) {
		panic(fmt.Sprintf("ir: result index %d out of range [0, %d)", i, len(op.results)))
	}
	return op.results[i]
}

// Results returns a copy of the result list.
func (op *Operation) Results() []*OpResult {
	out := make([]*OpResult, len(op.results))
	copy(out, op.results)
	return out
}

// ResultTypes returns the types of the operation's results.
func (op *Operation) ResultTypes() []Type {
	out := make([]Type, len(op.results))
	for i, r := range op.results {
		out[i] = r.Type()
	}
	return out
}

// Attr looks up an attribute by name.
func (op *Operation) Attr(name string) (Attribute, bool) {
	for _, na := range op.attrs {
		if na.Name == name {
			return na.Value, true
		}
	}
	return nil, false
}

// SetAttr stores an attribute under the given name, replacing any
// existing value. Insertion order of distinct names is preserved.
func (op *Operation) SetAttr(name string, value Attribute) {
	for i, na := range op.attrs {
		if na.Name == name {
			op.attrs[i].Value = value
			return
		}
	}
	op.attrs = append(op.attrs, NamedAttr{Name: name, Value: value})
}

// RemoveAttr deletes the attribute stored under name, if any.
func (op *Operation) RemoveAttr(name string) {
	for i, na := range op.attrs {
		if na.Name == name {
			op.attrs = append(op.attrs[:i], op.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attribute dictionary in insertion order.
func (op *Operation) Attrs() []NamedAttr {
	return cloneAttrs(op.attrs)
}

// Region returns the attached region, or nil if the operation has none.
func (op *Operation) Region() *Region {
	return op.region
}

// HasRegion reports whether the operation carries a region.
func (op *Operation) HasRegion() bool {
	return op.region != nil
}
