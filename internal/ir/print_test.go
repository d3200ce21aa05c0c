package ir

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// printableGenericOp builds the canonical printer fixture: a matmul-
// shaped generic op with a scalar payload region.
func printableGenericOp(t *testing.T) *Operation {
	t.Helper()
	b := NewBuilder()
	lhs := NewPlaceholder(NewTensorType(Shape{2, 3}, F32))
	rhs := NewPlaceholder(NewTensorType(Shape{3, 4}, F32))
	acc := NewPlaceholder(NewTensorType(Shape{2, 4}, F32))

	op := b.Create("strata.generic", UnknownLoc,
		[]Type{NewTensorType(Shape{2, 4}, F32)},
		[]Value{lhs, rhs, acc},
		[]NamedAttr{{Name: "operand_segment_sizes", Value: IntArrayAttr{2, 1}}})

	f32 := ScalarType{Elem: F32}
	entry := b.AttachRegion(op, []Type{f32, f32, f32})
	mul := b.Create("strata.mulf", UnknownLoc, []Type{f32},
		[]Value{entry.Argument(0), entry.Argument(1)}, nil)
	entry.Append(mul)
	add := b.Create("strata.addf", UnknownLoc, []Type{f32},
		[]Value{mul.Result(0), entry.Argument(2)}, nil)
	entry.Append(add)
	entry.Append(b.Create("strata.yield", UnknownLoc, nil,
		[]Value{add.Result(0)}, nil))
	return op
}

func TestPrintGoldenGeneric(t *testing.T) {
	op := printableGenericOp(t)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "generic_tensor", []byte(Print(op)))
}

func TestPrintGoldenBufferForm(t *testing.T) {
	b := NewBuilder()
	op := b.Create("strata.generic", UnknownLoc, nil,
		[]Value{
			NewPlaceholder(NewBufferType(Shape{2, 3}, F32)),
			NewPlaceholder(NewBufferType(Shape{3, 4}, F32)),
			NewPlaceholder(NewBufferType(Shape{2, 4}, F32)),
		},
		[]NamedAttr{{Name: "operand_segment_sizes", Value: IntArrayAttr{2, 1}}})

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "generic_buffer", []byte(Print(op)))
}

func TestPrintDeterministic(t *testing.T) {
	op := printableGenericOp(t)
	if Print(op) != Print(op) {
		t.Error("Print is not deterministic across calls")
	}
}
