package structured

// HasBufferSemantics reports whether the operation runs entirely on
// buffers: it produces no results, every input operand is scalar or
// buffer-classed, and every output operand is buffer-classed.
func HasBufferSemantics(op Op) bool {
	if op.Operation().NumResults() != 0 {
		return false
	}
	for _, o := range InputOperands(op) {
		if c := ClassOf(o.Value); c != ScalarOperand && c != BufferOperand {
			return false
		}
	}
	for _, o := range OutputOperands(op) {
		if ClassOf(o.Value) != BufferOperand {
			return false
		}
	}
	return true
}

// HasTensorSemantics reports whether the operation runs entirely on
// value-semantic tensors: every input operand is scalar or
// tensor-classed and every output operand is tensor-classed. The
// result count is unconstrained.
//
// The two predicates are neither exhaustive nor complementary. An
// operation mixing buffer and tensor operands satisfies neither,
// which marks it malformed; catching that is the structural
// verifier's job, never silently repaired here.
func HasTensorSemantics(op Op) bool {
	for _, o := range InputOperands(op) {
		if c := ClassOf(o.Value); c != ScalarOperand && c != TensorOperand {
			return false
		}
	}
	for _, o := range OutputOperands(op) {
		if ClassOf(o.Value) != TensorOperand {
			return false
		}
	}
	return true
}
