package ir

import "fmt"

// Builder constructs operations and regions. A builder carries no
// state of its own; it exists so construction goes through one
// audited path instead of ad-hoc struct literals.
type Builder struct{}

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Create constructs a detached operation with the given kind name,
// result types, operands, and attributes. The operand and attribute
// slices are copied; the caller keeps ownership of its inputs.
func (b *Builder) Create(name string, loc Location, resultTypes []Type, operands []Value, attrs []NamedAttr) *Operation {
	op := &Operation{
		name:  name,
		loc:   loc,
		attrs: cloneAttrs(attrs),
	}
	op.operands = make([]Value, len(operands))
	copy(op.operands, operands)
	op.results = make([]*OpResult, len(resultTypes))
	for i, t := range resultTypes {
		op.results[i] = &OpResult{owner: op, index: i, typ: t}
	}
	return op
}

// AttachRegion allocates a region on op with an entry block whose
// arguments have the given types. Entry block arguments alias the
// operation's operands one to one by position, so the argument count
// must equal the operand count; a mismatch is a contract violation
// and panics. Attaching a second region likewise panics: an operation
// owns at most one.
func (b *Builder) AttachRegion(op *Operation, argTypes []Type) *Block {
	if op.region != nil {
		panic(fmt.Sprintf("ir: operation %q already has a region", op.name))
	}
	if len(argTypes) != len(op.operands) {
		panic(fmt.Sprintf("ir: region of %q needs %d entry arguments to alias its operands, got %d",
			op.name, len(op.operands), len(argTypes)))
	}
	entry := &Block{}
	entry.args = make([]*BlockArgument, len(argTypes))
	for i, t := range argTypes {
		entry.args[i] = &BlockArgument{owner: entry, index: i, typ: t}
	}
	op.region = &Region{owner: op, entry: entry}
	return entry
}

// CloneRegionInto deep-copies src's body into a fresh region attached
// to dst. The new region owns independent block, argument, and
// operation storage: mutating one side never affects the other.
//
// Values defined inside src (block arguments, nested results) are
// remapped to their copies. Values defined outside src are referenced
// as-is; src's entry arguments map positionally to the new entry
// arguments, which is what realigns the body with dst's operands.
func (b *Builder) CloneRegionInto(dst *Operation, src *Region) {
	argTypes := make([]Type, src.entry.NumArguments())
	for i, arg := range src.entry.args {
		argTypes[i] = arg.Type()
	}
	entry := b.AttachRegion(dst, argTypes)

	remap := make(map[Value]Value)
	for i, arg := range src.entry.args {
		remap[arg] = entry.args[i]
	}
	b.cloneBlockBody(entry, src.entry, remap)
}

func (b *Builder) cloneBlockBody(dst, src *Block, remap map[Value]Value) {
	for _, op := range src.ops {
		operands := make([]Value, len(op.operands))
		for i, v := range op.operands {
			if mapped, ok := remap[v]; ok {
				operands[i] = mapped
			} else {
				operands[i] = v
			}
		}
		clone := b.Create(op.name, op.loc, op.ResultTypes(), operands, op.attrs)
		for i, r := range op.results {
			remap[r] = clone.results[i]
		}
		dst.Append(clone)

		if op.region != nil {
			argTypes := make([]Type, op.region.entry.NumArguments())
			for i, arg := range op.region.entry.args {
				argTypes[i] = arg.Type()
			}
			nested := b.AttachRegion(clone, argTypes)
			for i, arg := range op.region.entry.args {
				remap[arg] = nested.args[i]
			}
			b.cloneBlockBody(nested, op.region.entry, remap)
		}
	}
}
