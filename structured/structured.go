// Copyright 2026 Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package structured is the public API for the structured operation
// contract: operand segmentation, storage-class classification,
// payload use analysis, whole-operation semantics predicates, and
// structural cloning.
//
// A concrete operation kind opts in by implementing Op — the
// underlying IR node plus the NumInputs/NumOutputs accessors — and
// inherits everything else:
//
//	type MatmulOp struct{ op *ir.Operation }
//
//	func (m MatmulOp) Operation() *ir.Operation { return m.op }
//	func (m MatmulOp) NumInputs() int           { return 2 }
//	func (m MatmulOp) NumOutputs() int          { return 1 }
//
//	inputs := structured.InputTensorOperands(m)
//	pure := structured.HasTensorSemantics(m)
package structured

import (
	"github.com/strata-ir/strata/internal/ir"
	"github.com/strata-ir/strata/internal/structured"
)

// Op is the capability interface of a structured operation kind.
type Op = structured.Op

// OpOperand is one slot of a structured operation's operand list.
type OpOperand = structured.OpOperand

// StorageClass says how an operand's value is backed.
type StorageClass = structured.StorageClass

// Storage class constants.
const (
	ScalarOperand StorageClass = structured.ScalarOperand
	BufferOperand StorageClass = structured.BufferOperand
	TensorOperand StorageClass = structured.TensorOperand
)

// SegmentSizesAttr is the reserved attribute name under which the
// (numInputs, numOutputs) pair is stored.
const SegmentSizesAttr = structured.SegmentSizesAttr

// Segment attribute decoding errors.
var (
	ErrNoSegmentSizes  = structured.ErrNoSegmentSizes
	ErrBadSegmentSizes = structured.ErrBadSegmentSizes
)

// ClassOf returns the storage class of a value from its type.
func ClassOf(v ir.Value) StorageClass {
	return structured.ClassOf(v)
}

// NumInputsAndOutputs returns the total operand count implied by the
// segmentation.
func NumInputsAndOutputs(op Op) int {
	return structured.NumInputsAndOutputs(op)
}

// SegmentSizes decodes the stored segment pair from an operation's
// attribute dictionary.
func SegmentSizes(o *ir.Operation) (numInputs, numOutputs int, err error) {
	return structured.SegmentSizes(o)
}

// SetSegmentSizes stores the segment pair wholesale.
func SetSegmentSizes(o *ir.Operation, numInputs, numOutputs int) {
	structured.SetSegmentSizes(o, numInputs, numOutputs)
}

// SetNumInputs rewrites the input slot of the stored segment pair,
// leaving the output slot untouched.
func SetNumInputs(op Op, n int) {
	structured.SetNumInputs(op, n)
}

// SetNumOutputBuffers rewrites the output slot of the stored segment
// pair, leaving the input slot untouched.
func SetNumOutputBuffers(op Op, n int) {
	structured.SetNumOutputBuffers(op, n)
}

// Infer wraps a raw operation as a structured Op if it carries a
// well-formed segment-sizes attribute consistent with its operand
// count.
func Infer(o *ir.Operation) (Op, bool) {
	return structured.Infer(o)
}

// InputOperands returns the input segment in position order.
func InputOperands(op Op) []OpOperand {
	return structured.InputOperands(op)
}

// OutputOperands returns the output segment in position order.
func OutputOperands(op Op) []OpOperand {
	return structured.OutputOperands(op)
}

// InputOperand returns the input operand at segment index i.
func InputOperand(op Op, i int) OpOperand {
	return structured.InputOperand(op, i)
}

// OutputOperand returns the output operand at segment index i.
func OutputOperand(op Op, i int) OpOperand {
	return structured.OutputOperand(op, i)
}

// InputBufferOperands returns the buffer-classed inputs, in order.
func InputBufferOperands(op Op) []OpOperand {
	return structured.InputBufferOperands(op)
}

// InputTensorOperands returns the tensor-classed inputs, in order.
func InputTensorOperands(op Op) []OpOperand {
	return structured.InputTensorOperands(op)
}

// OutputBufferOperands returns the buffer-classed outputs, in order.
func OutputBufferOperands(op Op) []OpOperand {
	return structured.OutputBufferOperands(op)
}

// OutputTensorOperands returns the tensor-classed outputs, in order.
func OutputTensorOperands(op Op) []OpOperand {
	return structured.OutputTensorOperands(op)
}

// OutputBufferTypes returns the buffer type of every buffer-classed
// output operand, in order.
func OutputBufferTypes(op Op) []ir.BufferType {
	return structured.OutputBufferTypes(op)
}

// OutputTensorTypes returns the tensor type of every tensor-classed
// output operand, in order.
func OutputTensorTypes(op Op) []ir.TensorType {
	return structured.OutputTensorTypes(op)
}

// IsScalar reports whether the operand carries no shape information.
func IsScalar(o OpOperand) bool {
	return structured.IsScalar(o)
}

// Rank returns the operand's declared rank; scalars have rank 0.
func Rank(o OpOperand) int {
	return structured.Rank(o)
}

// ShapeOf returns the operand's declared shape; scalars have the
// empty shape.
func ShapeOf(o OpOperand) ir.Shape {
	return structured.ShapeOf(o)
}

// IsInputTensor reports whether the operand is a tensor in the input
// segment.
func IsInputTensor(op Op, o OpOperand) bool {
	return structured.IsInputTensor(op, o)
}

// IsOutputTensor reports whether the operand is a tensor in the
// output segment.
func IsOutputTensor(op Op, o OpOperand) bool {
	return structured.IsOutputTensor(op, o)
}

// PayloadUsesValueFromOperand reports whether the region's entry
// argument aliasing the operand has at least one use in the region
// body.
func PayloadUsesValueFromOperand(op Op, o OpOperand) bool {
	return structured.PayloadUsesValueFromOperand(op, o)
}

// IsInitTensor reports whether the operand is an output tensor whose
// incoming value is read by the payload.
func IsInitTensor(op Op, o OpOperand) bool {
	return structured.IsInitTensor(op, o)
}

// HasBufferSemantics reports whether the operation runs entirely on
// buffers and produces no results.
func HasBufferSemantics(op Op) bool {
	return structured.HasBufferSemantics(op)
}

// HasTensorSemantics reports whether the operation runs entirely on
// value-semantic tensors.
func HasTensorSemantics(op Op) bool {
	return structured.HasTensorSemantics(op)
}

// Clone builds a structurally equivalent operation of the same kind
// with the given result types and operand list.
func Clone(b *ir.Builder, op Op, loc ir.Location, resultTypes []ir.Type, operands []ir.Value) *ir.Operation {
	return structured.Clone(b, op, loc, resultTypes, operands)
}
