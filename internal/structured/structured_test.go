package structured

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strata-ir/strata/internal/ir"
)

// genericOp is a minimal structured kind for tests. Segmentation is
// read live from the stored attribute, so the mutators are observed.
type genericOp struct {
	op *ir.Operation
}

func (g genericOp) Operation() *ir.Operation { return g.op }

func (g genericOp) NumInputs() int {
	in, _ := MustSegmentSizes(g.op)
	return in
}

func (g genericOp) NumOutputs() int {
	_, out := MustSegmentSizes(g.op)
	return out
}

var f32 = ir.ScalarType{Elem: ir.F32}

// makeOp assembles a structured op over the given operand types with
// the given split. When withRegion is set, a payload region is
// attached whose body multiplies the first two entry arguments; when
// useOutputArg is also set, the body additionally reads the entry
// argument aliasing the last operand (the accumulate pattern).
func makeOp(t *testing.T, inputTypes, outputTypes, resultTypes []ir.Type, withRegion, useOutputArg bool) genericOp {
	t.Helper()
	b := ir.NewBuilder()

	operands := make([]ir.Value, 0, len(inputTypes)+len(outputTypes))
	for _, typ := range append(append([]ir.Type{}, inputTypes...), outputTypes...) {
		operands = append(operands, ir.NewPlaceholder(typ))
	}

	op := b.Create("strata.generic", ir.UnknownLoc, resultTypes, operands, nil)
	SetSegmentSizes(op, len(inputTypes), len(outputTypes))

	if withRegion {
		argTypes := make([]ir.Type, len(operands))
		for i := range argTypes {
			argTypes[i] = f32
		}
		entry := b.AttachRegion(op, argTypes)
		require.GreaterOrEqual(t, len(operands), 2)

		mul := b.Create("strata.mulf", ir.UnknownLoc, []ir.Type{f32},
			[]ir.Value{entry.Argument(0), entry.Argument(1)}, nil)
		entry.Append(mul)

		yielded := ir.Value(mul.Result(0))
		if useOutputArg {
			add := b.Create("strata.addf", ir.UnknownLoc, []ir.Type{f32},
				[]ir.Value{mul.Result(0), entry.Argument(len(operands) - 1)}, nil)
			entry.Append(add)
			yielded = add.Result(0)
		}
		entry.Append(b.Create("strata.yield", ir.UnknownLoc, nil,
			[]ir.Value{yielded}, nil))
	}
	return genericOp{op: op}
}

// tensorOp is the pure-tensor fixture: two input tensors of ranks 2
// and 1, one output tensor whose value the payload reads, one result.
func tensorOp(t *testing.T) genericOp {
	t.Helper()
	out := ir.NewTensorType(ir.Shape{2, 3}, ir.F32)
	return makeOp(t,
		[]ir.Type{ir.NewTensorType(ir.Shape{2, 3}, ir.F32), ir.NewTensorType(ir.Shape{3}, ir.F32)},
		[]ir.Type{out},
		[]ir.Type{out},
		true, true)
}

// bufferOp is the same computation lowered to buffers: every operand
// buffer-typed, zero results.
func bufferOp(t *testing.T) genericOp {
	t.Helper()
	return makeOp(t,
		[]ir.Type{ir.NewBufferType(ir.Shape{2, 3}, ir.F32), ir.NewBufferType(ir.Shape{3}, ir.F32)},
		[]ir.Type{ir.NewBufferType(ir.Shape{2, 3}, ir.F32)},
		nil,
		true, true)
}
