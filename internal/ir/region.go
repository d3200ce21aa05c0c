package ir

import "fmt"

// Block is a sequence of operations with a list of leading arguments.
type Block struct {
	args []*BlockArgument
	ops  []*Operation
}

// NumArguments returns the number of block arguments.
func (b *Block) NumArguments() int {
	return len(b.args)
}

// Argument returns the block argument at position i.
// An out-of-range index is a contract violation and panics.
func (b *Block) Argument(i int) *BlockArgument {
	if i < 0 || i >= len(b.args) {
		panic(fmt.Sprintf("ir: block argument index %d out of range [0, %d)", i, len(b.args)))
	}
	return b.args[i]
}

// Arguments returns a copy of the argument list.
func (b *Block) Arguments() []*BlockArgument {
	out := make([]*BlockArgument, len(b.args))
	copy(out, b.args)
	return out
}

// Operations returns a copy of the block's operation list, in order.
func (b *Block) Operations() []*Operation {
	out := make([]*Operation, len(b.ops))
	copy(out, b.ops)
	return out
}

// Append adds an operation at the end of the block.
func (b *Block) Append(op *Operation) {
	b.ops = append(b.ops, op)
}

// Region is a nested computation body owned by exactly one operation.
// It has a single entry block whose arguments positionally alias the
// owning operation's operands.
type Region struct {
	owner *Operation
	entry *Block
}

// Owner returns the operation this region is attached to.
func (r *Region) Owner() *Operation {
	return r.owner
}

// Entry returns the region's entry block.
func (r *Region) Entry() *Block {
	return r.entry
}

// Walk visits every operation in the region in block order, entering
// nested regions depth-first before continuing with the next sibling.
func (r *Region) Walk(visit func(*Operation)) {
	walkBlock(r.entry, visit)
}

func walkBlock(b *Block, visit func(*Operation)) {
	for _, op := range b.ops {
		visit(op)
		if op.region != nil {
			walkBlock(op.region.entry, visit)
		}
	}
}
