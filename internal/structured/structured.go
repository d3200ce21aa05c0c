// Package structured implements the shared contract of structured
// tensor operations: operations with a flat operand list split into
// an input segment and an output segment, and an optional attached
// per-element computation region.
//
// Many operation kinds (generic, scatter, sort, scan, ...) share this
// shape. A kind opts in by implementing the Op interface: it supplies
// the operation node plus the two segment accessors, and every other
// query in this package comes for free. Transformation passes
// (bufferization, fusion, tiling) reason about any structured kind
// through these queries alone, never by inspecting operand or
// attribute storage directly.
//
// All query functions are read-only and safe for concurrent callers
// on an unmutated operation. SetNumInputs, SetNumOutputBuffers, and
// Clone mutate or allocate and require exclusive access. Contract
// violations (out-of-range index, region query on a regionless
// operation, malformed segment attribute) panic at the call site.
package structured

import (
	"github.com/strata-ir/strata/internal/ir"
)

// Op is the capability interface of a structured operation kind.
// A concrete kind supplies exactly these three methods; the rest of
// the contract is package-level shared logic over them.
//
// NumInputs and NumOutputs define the operand segmentation and must
// satisfy NumInputs() + NumOutputs() == Operation().NumOperands() at
// all times. The queries in this package assume the invariant; they
// do not re-check it.
type Op interface {
	// Operation returns the underlying IR node.
	Operation() *ir.Operation

	// NumInputs returns the number of leading input operands.
	NumInputs() int

	// NumOutputs returns the number of trailing output operands.
	NumOutputs() int
}

// NumInputsAndOutputs returns the total operand count implied by the
// segmentation. Equal to Operation().NumOperands() on a well-formed
// operation.
func NumInputsAndOutputs(op Op) int {
	return op.NumInputs() + op.NumOutputs()
}

// attrOp adapts a raw operation carrying a well-formed segment-sizes
// attribute, for tooling that works on deserialized IR without the
// concrete kind types. NumInputs and NumOutputs read the stored
// attribute on every call, so mutations through SetNumInputs and
// SetNumOutputBuffers are observed live.
type attrOp struct {
	op *ir.Operation
}

func (a attrOp) Operation() *ir.Operation {
	return a.op
}

func (a attrOp) NumInputs() int {
	in, _ := MustSegmentSizes(a.op)
	return in
}

func (a attrOp) NumOutputs() int {
	_, out := MustSegmentSizes(a.op)
	return out
}

// Infer wraps a raw operation as a structured Op if it carries a
// well-formed segment-sizes attribute consistent with its operand
// count. Concrete operation kinds should implement Op directly;
// Infer exists for generic tooling over deserialized IR.
func Infer(o *ir.Operation) (Op, bool) {
	in, out, err := SegmentSizes(o)
	if err != nil {
		return nil, false
	}
	if in+out != o.NumOperands() {
		return nil, false
	}
	return attrOp{op: o}, true
}
