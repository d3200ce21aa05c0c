package encoding

// Version is the current interchange format version.
const Version = 1

// File is the top-level document: a table of free values and one
// root operation.
type File struct {
	Version int         `json:"version"`
	Values  []ValueDecl `json:"values,omitempty"`
	Op      *OpNode     `json:"op"`
}

// ValueDecl introduces a value id with its type. Free values are
// declared in the file's value table; results and region arguments
// are declared where they are defined.
type ValueDecl struct {
	ID   string   `json:"id"`
	Type TypeNode `json:"type"`
}

// TypeNode encodes a value type.
// Kind is "scalar", "tensor", or "buffer". Elem is the element data
// type spelling ("f32", "i64", ...). Dims is present for shaped
// kinds; a -1 entry marks a dynamic dimension.
type TypeNode struct {
	Kind string  `json:"kind"`
	Elem string  `json:"elem"`
	Dims []int64 `json:"dims,omitempty"`
}

// AttrNode encodes one attribute value as a tagged union.
// Kind is "int", "bool", "string", "ints", or "type".
type AttrNode struct {
	Name string    `json:"name"`
	Kind string    `json:"kind"`
	Int  int64     `json:"int,omitempty"`
	Bool bool      `json:"bool,omitempty"`
	Str  string    `json:"str,omitempty"`
	Ints []int64   `json:"ints,omitempty"`
	Type *TypeNode `json:"type,omitempty"`
}

// RegionNode encodes an operation's attached region: its entry block
// arguments and body operations in order.
type RegionNode struct {
	Args []ValueDecl `json:"args"`
	Ops  []OpNode    `json:"ops,omitempty"`
}

// OpNode encodes a single operation.
type OpNode struct {
	Name     string      `json:"name"`
	Operands []string    `json:"operands,omitempty"`
	Results  []ValueDecl `json:"results,omitempty"`
	Attrs    []AttrNode  `json:"attrs,omitempty"`
	Region   *RegionNode `json:"region,omitempty"`
}
