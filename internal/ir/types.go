// Package ir provides the core IR node types for the Strata compiler infrastructure.
package ir

import (
	"fmt"
	"strings"
)

// DataType represents the element type of a value.
type DataType int

// Supported element types.
const (
	F32 DataType = iota
	F64
	I32
	I64
	I1
	Index
)

// Size returns the byte size of the data type. Index is pointer-sized.
func (dt DataType) Size() int {
	switch dt {
	case F32, I32:
		return 4
	case F64, I64, Index:
		return 8
	case I1:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns the textual spelling of the data type.
func (dt DataType) String() string {
	switch dt {
	case F32:
		return "f32"
	case F64:
		return "f64"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I1:
		return "i1"
	case Index:
		return "index"
	default:
		return "unknown"
	}
}

// ParseDataType maps a textual spelling back to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "f32":
		return F32, nil
	case "f64":
		return F64, nil
	case "i32":
		return I32, nil
	case "i64":
		return I64, nil
	case "i1":
		return I1, nil
	case "index":
		return Index, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", s)
	}
}

// DynamicDim marks a dimension whose extent is unknown until runtime.
const DynamicDim int64 = -1

// Shape represents the dimensions of a shaped value.
type Shape []int64

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Equal checks if two shapes are equal dimension by dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// HasStaticShape reports whether every dimension has a known extent.
func (s Shape) HasStaticShape() bool {
	for _, dim := range s {
		if dim == DynamicDim {
			return false
		}
	}
	return true
}

// String renders the shape in `2x3` form, with `?` for dynamic dimensions.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		if dim == DynamicDim {
			parts[i] = "?"
		} else {
			parts[i] = fmt.Sprintf("%d", dim)
		}
	}
	return strings.Join(parts, "x")
}

// Type is the type of an IR value.
type Type interface {
	// typeNode marks a structure as a type node and prevents
	// external implementations.
	typeNode()

	// String renders the type in its textual form.
	String() string
}

// ShapedType is a type carrying shape information: tensors and buffers.
// Any value whose type is not shaped is a scalar.
type ShapedType interface {
	Type

	// Shape returns the declared dimensions.
	Shape() Shape

	// ElemType returns the element data type.
	ElemType() DataType
}

// ScalarType is a shapeless value type wrapping a single element.
type ScalarType struct {
	Elem DataType
}

func (ScalarType) typeNode() {}

func (t ScalarType) String() string {
	return t.Elem.String()
}

// TensorType is an immutable shaped value type. Tensors carry SSA
// value semantics: an operation consuming a tensor never observes
// writes made after the tensor was produced.
type TensorType struct {
	dims Shape
	elem DataType
}

// NewTensorType creates a tensor type with the given dimensions and element type.
func NewTensorType(dims Shape, elem DataType) TensorType {
	return TensorType{dims: dims.Clone(), elem: elem}
}

func (TensorType) typeNode() {}

// Shape returns the declared dimensions.
func (t TensorType) Shape() Shape {
	return t.dims
}

// ElemType returns the element data type.
func (t TensorType) ElemType() DataType {
	return t.elem
}

func (t TensorType) String() string {
	if len(t.dims) == 0 {
		return fmt.Sprintf("tensor<%s>", t.elem)
	}
	return fmt.Sprintf("tensor<%sx%s>", t.dims, t.elem)
}

// BufferType is a mutable shaped value type referencing allocated
// memory. Operations taking buffers read and write through them in
// place rather than producing new values.
type BufferType struct {
	dims Shape
	elem DataType
}

// NewBufferType creates a buffer type with the given dimensions and element type.
func NewBufferType(dims Shape, elem DataType) BufferType {
	return BufferType{dims: dims.Clone(), elem: elem}
}

func (BufferType) typeNode() {}

// Shape returns the declared dimensions.
func (t BufferType) Shape() Shape {
	return t.dims
}

// ElemType returns the element data type.
func (t BufferType) ElemType() DataType {
	return t.elem
}

func (t BufferType) String() string {
	if len(t.dims) == 0 {
		return fmt.Sprintf("buffer<%s>", t.elem)
	}
	return fmt.Sprintf("buffer<%sx%s>", t.dims, t.elem)
}
