package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strata-ir/strata/internal/ir"
)

func TestTensorSemantics(t *testing.T) {
	op := tensorOp(t)

	assert.True(t, HasTensorSemantics(op))
	assert.False(t, HasBufferSemantics(op))
	assert.Len(t, InputTensorOperands(op), 2)
	assert.True(t, IsInitTensor(op, OutputOperand(op, 0)))
}

func TestBufferSemantics(t *testing.T) {
	op := bufferOp(t)

	assert.True(t, HasBufferSemantics(op))
	assert.False(t, HasTensorSemantics(op))

	// Nothing is tensor-typed, so no operand can be an init tensor.
	for _, o := range append(InputOperands(op), OutputOperands(op)...) {
		assert.False(t, IsInitTensor(op, o))
	}
}

func TestScalarInputsAllowedByBothPredicates(t *testing.T) {
	// A scalar input does not break either predicate; the outputs
	// decide.
	tensorWithScalar := makeOp(t,
		[]ir.Type{ir.NewTensorType(ir.Shape{4}, ir.F32), f32},
		[]ir.Type{ir.NewTensorType(ir.Shape{4}, ir.F32)},
		[]ir.Type{ir.NewTensorType(ir.Shape{4}, ir.F32)},
		false, false)
	assert.True(t, HasTensorSemantics(tensorWithScalar))

	bufferWithScalar := makeOp(t,
		[]ir.Type{ir.NewBufferType(ir.Shape{4}, ir.F32), f32},
		[]ir.Type{ir.NewBufferType(ir.Shape{4}, ir.F32)},
		nil, false, false)
	assert.True(t, HasBufferSemantics(bufferWithScalar))
}

func TestMixedOperandsSatisfyNeither(t *testing.T) {
	// Mixed buffer/tensor storage marks a malformed op. Both
	// predicates fail and nothing here repairs it; the external
	// verifier owns that diagnosis.
	op := mixedOp(t)
	assert.False(t, HasBufferSemantics(op))
	assert.False(t, HasTensorSemantics(op))
}

func TestBufferSemanticsRequiresZeroResults(t *testing.T) {
	op := makeOp(t,
		[]ir.Type{ir.NewBufferType(ir.Shape{4}, ir.F32)},
		[]ir.Type{ir.NewBufferType(ir.Shape{4}, ir.F32)},
		[]ir.Type{ir.NewTensorType(ir.Shape{4}, ir.F32)},
		false, false)
	assert.False(t, HasBufferSemantics(op))
}

func TestPredicatesNeverBothTrueWithOutputs(t *testing.T) {
	for _, op := range []genericOp{tensorOp(t), bufferOp(t), mixedOp(t)} {
		assert.False(t, HasBufferSemantics(op) && HasTensorSemantics(op))
	}
}
