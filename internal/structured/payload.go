package structured

import (
	"fmt"

	"github.com/strata-ir/strata/internal/ir"
)

// PayloadUsesValueFromOperand reports whether the region's entry
// argument positionally aliasing the operand has at least one use in
// the region body. This is what separates a write-only output, which
// may be left uninitialized before the operation runs, from an output
// whose incoming value is actually consumed by the payload.
//
// Precondition: the operation has a region. Calling this on a
// regionless operation is a contract violation and panics.
func PayloadUsesValueFromOperand(op Op, o OpOperand) bool {
	region := op.Operation().Region()
	if region == nil {
		panic(fmt.Sprintf("structured: payload query on regionless operation %q", op.Operation().Name()))
	}
	arg := region.Entry().Argument(o.Position)

	used := false
	region.Walk(func(inner *ir.Operation) {
		for _, v := range inner.Operands() {
			if v == ir.Value(arg) {
				used = true
			}
		}
	})
	return used
}

// IsInitTensor reports whether the operand is an output tensor whose
// incoming value is read by the payload. The implication runs one
// way: every init tensor is an output tensor, but an output tensor
// whose entry argument is never used is not an init tensor.
func IsInitTensor(op Op, o OpOperand) bool {
	return IsOutputTensor(op, o) && PayloadUsesValueFromOperand(op, o)
}
