package structured

import (
	"github.com/strata-ir/strata/internal/ir"
)

// Clone builds a structurally equivalent operation of the same kind
// with the given result types and operand list. The source's
// attribute dictionary is copied verbatim, segment-sizes pair
// included, and the attached region (if any) is deep-copied into
// storage owned by the new operation: mutating either operation's
// region never affects the other.
//
// The caller must supply an operand list that still partitions into
// the source's (numInputs, numOutputs) split; the attribute is copied
// unchanged, not recomputed from the new operands.
func Clone(b *ir.Builder, op Op, loc ir.Location, resultTypes []ir.Type, operands []ir.Value) *ir.Operation {
	src := op.Operation()
	dst := b.Create(src.Name(), loc, resultTypes, operands, src.Attrs())
	if r := src.Region(); r != nil {
		b.CloneRegionInto(dst, r)
	}
	return dst
}
