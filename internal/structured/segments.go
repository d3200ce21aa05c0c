package structured

import (
	"errors"
	"fmt"

	"github.com/strata-ir/strata/internal/ir"
)

// SegmentSizesAttr is the reserved attribute name under which the
// (numInputs, numOutputs) pair is stored, encoded as a two-element
// integer sequence. Serializers must round-trip it verbatim.
const SegmentSizesAttr = "operand_segment_sizes"

// Segment attribute decoding errors.
var (
	ErrNoSegmentSizes  = errors.New("missing operand_segment_sizes attribute")
	ErrBadSegmentSizes = errors.New("malformed operand_segment_sizes attribute")
)

// SegmentSizes decodes the stored segment pair from an operation's
// attribute dictionary. The attribute must be a two-element integer
// array with non-negative entries; anything else is a structural
// error for the caller to surface.
func SegmentSizes(o *ir.Operation) (numInputs, numOutputs int, err error) {
	attr, ok := o.Attr(SegmentSizesAttr)
	if !ok {
		return 0, 0, fmt.Errorf("%w: operation %q", ErrNoSegmentSizes, o.Name())
	}
	arr, ok := attr.(ir.IntArrayAttr)
	if !ok {
		return 0, 0, fmt.Errorf("%w: operation %q: not an integer array", ErrBadSegmentSizes, o.Name())
	}
	if len(arr) != 2 {
		return 0, 0, fmt.Errorf("%w: operation %q: want 2 entries, got %d", ErrBadSegmentSizes, o.Name(), len(arr))
	}
	if arr[0] < 0 || arr[1] < 0 {
		return 0, 0, fmt.Errorf("%w: operation %q: negative segment size", ErrBadSegmentSizes, o.Name())
	}
	return int(arr[0]), int(arr[1]), nil
}

// MustSegmentSizes is SegmentSizes for callers already past the
// validation boundary; a missing or malformed attribute panics.
func MustSegmentSizes(o *ir.Operation) (numInputs, numOutputs int) {
	in, out, err := SegmentSizes(o)
	if err != nil {
		panic(err)
	}
	return in, out
}

// SetSegmentSizes stores the segment pair wholesale, replacing any
// previous value. Used at construction time by concrete kinds.
func SetSegmentSizes(o *ir.Operation, numInputs, numOutputs int) {
	o.SetAttr(SegmentSizesAttr, ir.IntArrayAttr{int64(numInputs), int64(numOutputs)})
}

// SetNumInputs rewrites the input slot of the stored segment pair,
// leaving the output slot untouched. The whole pair is reconstructed
// and written back; there is no in-place patching of one entry.
//
// The caller is responsible for keeping the new split consistent with
// the actual operand count. The descriptor does not re-validate here:
// whoever changes the operand list owns that check.
func SetNumInputs(op Op, n int) {
	o := op.Operation()
	_, out := MustSegmentSizes(o)
	SetSegmentSizes(o, n, out)
}

// SetNumOutputBuffers rewrites the output slot of the stored segment
// pair, leaving the input slot untouched. Same wholesale rewrite and
// same caller obligation as SetNumInputs.
func SetNumOutputBuffers(op Op, n int) {
	o := op.Operation()
	in, _ := MustSegmentSizes(o)
	SetSegmentSizes(o, in, n)
}
