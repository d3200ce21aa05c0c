package structured

import (
	"fmt"

	"github.com/strata-ir/strata/internal/ir"
)

// StorageClass says how an operand's value is backed: a mutable
// buffer, an immutable tensor, or a shapeless scalar.
type StorageClass int

const (
	// ScalarOperand is any operand whose value carries no shape
	// information, regardless of its position.
	ScalarOperand StorageClass = iota

	// BufferOperand is a shaped operand written in place.
	BufferOperand

	// TensorOperand is a shaped operand with value semantics.
	TensorOperand
)

func (c StorageClass) String() string {
	switch c {
	case ScalarOperand:
		return "scalar"
	case BufferOperand:
		return "buffer"
	case TensorOperand:
		return "tensor"
	default:
		return "unknown"
	}
}

// ClassOf returns the storage class of a value from its type.
func ClassOf(v ir.Value) StorageClass {
	switch v.Type().(type) {
	case ir.BufferType:
		return BufferOperand
	case ir.TensorType:
		return TensorOperand
	default:
		return ScalarOperand
	}
}

// OpOperand is one slot of a structured operation's operand list: the
// operand's absolute position and the value it references. The
// operation does not own the value; its defining node does.
type OpOperand struct {
	Position int
	Value    ir.Value
}

// StorageClass returns the operand's storage class.
func (o OpOperand) StorageClass() StorageClass {
	return ClassOf(o.Value)
}

// IsScalar reports whether the operand carries no shape information.
func IsScalar(o OpOperand) bool {
	return ClassOf(o.Value) == ScalarOperand
}

// Rank returns the operand's declared rank. Scalars have rank 0.
func Rank(o OpOperand) int {
	if st, ok := o.Value.Type().(ir.ShapedType); ok {
		return st.Shape().Rank()
	}
	return 0
}

// ShapeOf returns the operand's declared shape. Scalars have the
// empty shape.
func ShapeOf(o OpOperand) ir.Shape {
	if st, ok := o.Value.Type().(ir.ShapedType); ok {
		return st.Shape().Clone()
	}
	return ir.Shape{}
}

// InputOperands returns the input segment: the first NumInputs
// operands, in position order.
func InputOperands(op Op) []OpOperand {
	return segment(op, 0, op.NumInputs())
}

// OutputOperands returns the output segment: the NumOutputs operands
// following the inputs, in position order.
func OutputOperands(op Op) []OpOperand {
	return segment(op, op.NumInputs(), op.NumOutputs())
}

func segment(op Op, start, count int) []OpOperand {
	o := op.Operation()
	out := make([]OpOperand, count)
	for i := 0; i < count; i++ {
		out[i] = OpOperand{Position: start + i, Value: o.Operand(start + i)}
	}
	return out
}

// InputOperand returns the input operand at segment index i.
// An out-of-range index is a contract violation and panics.
func InputOperand(op Op, i int) OpOperand {
	if i < 0 || i >= op.NumInputs() {
		panic(fmt.Sprintf("structured: input operand index %d out of range [0, %d)", i, op.NumInputs()))
	}
	return OpOperand{Position: i, Value: op.Operation().Operand(i)}
}

// OutputOperand returns the output operand at segment index i, which
// lives at absolute position NumInputs+i.
// An out-of-range index is a contract violation and panics.
func OutputOperand(op Op, i int) OpOperand {
	if i < 0 || i >= op.NumOutputs() {
		panic(fmt.Sprintf("structured: output operand index %d out of range [0, %d)", i, op.NumOutputs()))
	}
	pos := op.NumInputs() + i
	return OpOperand{Position: pos, Value: op.Operation().Operand(pos)}
}

// InputBufferOperands returns the buffer-classed subset of the input
// segment, order-preserving.
func InputBufferOperands(op Op) []OpOperand {
	return filter(InputOperands(op), BufferOperand)
}

// InputTensorOperands returns the tensor-classed subset of the input
// segment, order-preserving.
func InputTensorOperands(op Op) []OpOperand {
	return filter(InputOperands(op), TensorOperand)
}

// OutputBufferOperands returns the buffer-classed subset of the
// output segment, order-preserving.
func OutputBufferOperands(op Op) []OpOperand {
	return filter(OutputOperands(op), BufferOperand)
}

// OutputTensorOperands returns the tensor-classed subset of the
// output segment, order-preserving.
func OutputTensorOperands(op Op) []OpOperand {
	return filter(OutputOperands(op), TensorOperand)
}

func filter(operands []OpOperand, class StorageClass) []OpOperand {
	var out []OpOperand
	for _, o := range operands {
		if ClassOf(o.Value) == class {
			out = append(out, o)
		}
	}
	return out
}

// OutputBufferTypes returns the buffer type of every buffer-classed
// output operand, order-preserving.
func OutputBufferTypes(op Op) []ir.BufferType {
	operands := OutputBufferOperands(op)
	out := make([]ir.BufferType, len(operands))
	for i, o := range operands {
		out[i] = o.Value.Type().(ir.BufferType)
	}
	return out
}

// OutputTensorTypes returns the tensor type of every tensor-classed
// output operand, order-preserving.
func OutputTensorTypes(op Op) []ir.TensorType {
	operands := OutputTensorOperands(op)
	out := make([]ir.TensorType, len(operands))
	for i, o := range operands {
		out[i] = o.Value.Type().(ir.TensorType)
	}
	return out
}

// IsInputTensor reports whether the operand is tensor-classed and its
// absolute position falls in the input segment. False for any
// non-tensor operand regardless of position.
func IsInputTensor(op Op, o OpOperand) bool {
	if ClassOf(o.Value) != TensorOperand {
		return false
	}
	return o.Position < op.NumInputs()
}

// IsOutputTensor reports whether the operand is tensor-classed and
// its absolute position falls in the output segment. False for any
// non-tensor operand regardless of position. For a tensor operand,
// IsInputTensor and IsOutputTensor are mutually exclusive.
func IsOutputTensor(op Op, o OpOperand) bool {
	if ClassOf(o.Value) != TensorOperand {
		return false
	}
	return o.Position >= op.NumInputs() && o.Position < NumInputsAndOutputs(op)
}
