// Copyright 2026 Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir is the public API for the Strata IR node types.
//
// The package exposes the building blocks consumed by the structured
// operation contract: value types (scalar, tensor, buffer), SSA
// values, attributes, operations with at most one region, and a
// builder for constructing and structurally cloning them.
//
// Example:
//
//	b := ir.NewBuilder()
//	lhs := ir.NewPlaceholder(ir.NewTensorType(ir.Shape{2, 3}, ir.F32))
//	rhs := ir.NewPlaceholder(ir.NewTensorType(ir.Shape{3, 4}, ir.F32))
//	op := b.Create("strata.matmul", ir.UnknownLoc,
//	    []ir.Type{ir.NewTensorType(ir.Shape{2, 4}, ir.F32)},
//	    []ir.Value{lhs, rhs}, nil)
//	fmt.Print(ir.Print(op))
package ir

import (
	"github.com/strata-ir/strata/internal/ir"
)

// DataType represents the element type of a value.
type DataType = ir.DataType

// Element type constants.
const (
	F32   DataType = ir.F32
	F64   DataType = ir.F64
	I32   DataType = ir.I32
	I64   DataType = ir.I64
	I1    DataType = ir.I1
	Index DataType = ir.Index
)

// ParseDataType maps a textual spelling back to a DataType.
func ParseDataType(s string) (DataType, error) {
	return ir.ParseDataType(s)
}

// Shape represents the dimensions of a shaped value.
type Shape = ir.Shape

// DynamicDim marks a dimension whose extent is unknown until runtime.
const DynamicDim = ir.DynamicDim

// Type is the type of an IR value.
type Type = ir.Type

// ShapedType is a type carrying shape information: tensors and buffers.
type ShapedType = ir.ShapedType

// ScalarType is a shapeless value type wrapping a single element.
type ScalarType = ir.ScalarType

// TensorType is an immutable shaped value type.
type TensorType = ir.TensorType

// BufferType is a mutable shaped value type referencing allocated memory.
type BufferType = ir.BufferType

// NewTensorType creates a tensor type with the given dimensions and element type.
func NewTensorType(dims Shape, elem DataType) TensorType {
	return ir.NewTensorType(dims, elem)
}

// NewBufferType creates a buffer type with the given dimensions and element type.
func NewBufferType(dims Shape, elem DataType) BufferType {
	return ir.NewBufferType(dims, elem)
}

// Value is an SSA value usable as an operand.
type Value = ir.Value

// OpResult is a value produced by an operation.
type OpResult = ir.OpResult

// BlockArgument is a value introduced by a block.
type BlockArgument = ir.BlockArgument

// Placeholder is a free value with no defining operation.
type Placeholder = ir.Placeholder

// NewPlaceholder creates a free value of the given type.
func NewPlaceholder(t Type) *Placeholder {
	return ir.NewPlaceholder(t)
}

// Attribute is a named constant attached to an operation.
type Attribute = ir.Attribute

// Attribute kinds.
type (
	IntAttr      = ir.IntAttr
	BoolAttr     = ir.BoolAttr
	StringAttr   = ir.StringAttr
	IntArrayAttr = ir.IntArrayAttr
	TypeAttr     = ir.TypeAttr
)

// NamedAttr is a single entry of an operation's attribute dictionary.
type NamedAttr = ir.NamedAttr

// Location records where an operation originated.
type Location = ir.Location

// UnknownLoc is the location of operations with no source provenance.
var UnknownLoc = ir.UnknownLoc

// Operation is a single IR node.
type Operation = ir.Operation

// Region is a nested computation body owned by exactly one operation.
type Region = ir.Region

// Block is a sequence of operations with a list of leading arguments.
type Block = ir.Block

// Builder constructs operations and regions.
type Builder = ir.Builder

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return ir.NewBuilder()
}

// Print renders an operation and any nested region in a stable
// textual form.
func Print(op *Operation) string {
	return ir.Print(op)
}
