package ir

// Value is an SSA value usable as an operand. A value is defined
// exactly once: by an operation result, a block argument, or a
// placeholder standing in for a definition outside the fragment at
// hand. Operations hold non-owning references to their operand
// values; the defining node owns the value.
type Value interface {
	// valueNode marks a structure as a value node and prevents
	// external implementations.
	valueNode()

	// Type returns the value's type.
	Type() Type
}

// OpResult is a value produced by an operation.
type OpResult struct {
	owner *Operation
	index int
	typ   Type
}

func (*OpResult) valueNode() {}

// Type returns the result's type.
func (r *OpResult) Type() Type {
	return r.typ
}

// Owner returns the operation producing this result.
func (r *OpResult) Owner() *Operation {
	return r.owner
}

// Index returns the result's position in the producing operation.
func (r *OpResult) Index() int {
	return r.index
}

// BlockArgument is a value introduced by a block. For a structured
// operation's entry block, argument i positionally aliases operand i.
type BlockArgument struct {
	owner *Block
	index int
	typ   Type
}

func (*BlockArgument) valueNode() {}

// Type returns the argument's type.
func (a *BlockArgument) Type() Type {
	return a.typ
}

// Owner returns the block introducing this argument.
func (a *BlockArgument) Owner() *Block {
	return a.owner
}

// Index returns the argument's position in its block.
func (a *BlockArgument) Index() int {
	return a.index
}

// Placeholder is a free value with no defining operation. It stands
// in for values defined outside a detached IR fragment, such as
// function arguments when building or deserializing a single
// operation in isolation.
type Placeholder struct {
	typ Type
}

// NewPlaceholder creates a free value of the given type.
func NewPlaceholder(t Type) *Placeholder {
	return &Placeholder{typ: t}
}

func (*Placeholder) valueNode() {}

// Type returns the placeholder's type.
func (p *Placeholder) Type() Type {
	return p.typ
}
