package encoding

import (
	"encoding/json"
	"fmt"

	"github.com/strata-ir/strata/internal/ir"
)

// Encode serializes an operation, its attribute dictionary, and any
// nested region to the version-1 JSON interchange form. Values
// defined outside the operation are emitted into the file's value
// table as free values. Encoding is deterministic: ids are assigned
// in visit order.
func Encode(op *ir.Operation) ([]byte, error) {
	e := &encoder{ids: make(map[ir.Value]string)}
	node, err := e.encodeOp(op)
	if err != nil {
		return nil, err
	}
	f := File{Version: Version, Values: e.free, Op: node}
	return json.MarshalIndent(f, "", "  ")
}

type encoder struct {
	ids        map[ir.Value]string
	free       []ValueDecl
	nextFree   int
	nextResult int
	nextArg    int
}

func (e *encoder) operandID(v ir.Value) (string, error) {
	if id, ok := e.ids[v]; ok {
		return id, nil
	}
	// Unseen operand: defined outside the fragment, declare it free.
	t, err := typeNode(v.Type())
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("v%d", e.nextFree)
	e.nextFree++
	e.ids[v] = id
	e.free = append(e.free, ValueDecl{ID: id, Type: t})
	return id, nil
}

func (e *encoder) encodeOp(op *ir.Operation) (*OpNode, error) {
	node := &OpNode{Name: op.Name()}

	for _, v := range op.Operands() {
		id, err := e.operandID(v)
		if err != nil {
			return nil, err
		}
		node.Operands = append(node.Operands, id)
	}

	for _, r := range op.Results() {
		t, err := typeNode(r.Type())
		if err != nil {
			return nil, err
		}
		id := fmt.Sprintf("r%d", e.nextResult)
		e.nextResult++
		e.ids[r] = id
		node.Results = append(node.Results, ValueDecl{ID: id, Type: t})
	}

	for _, na := range op.Attrs() {
		an, err := attrNode(na)
		if err != nil {
			return nil, err
		}
		node.Attrs = append(node.Attrs, an)
	}

	if r := op.Region(); r != nil {
		rn, err := e.encodeRegion(r)
		if err != nil {
			return nil, err
		}
		node.Region = rn
	}
	return node, nil
}

func (e *encoder) encodeRegion(r *ir.Region) (*RegionNode, error) {
	node := &RegionNode{Args: []ValueDecl{}}
	for _, arg := range r.Entry().Arguments() {
		t, err := typeNode(arg.Type())
		if err != nil {
			return nil, err
		}
		id := fmt.Sprintf("a%d", e.nextArg)
		e.nextArg++
		e.ids[arg] = id
		node.Args = append(node.Args, ValueDecl{ID: id, Type: t})
	}
	for _, op := range r.Entry().Operations() {
		child, err := e.encodeOp(op)
		if err != nil {
			return nil, err
		}
		node.Ops = append(node.Ops, *child)
	}
	return node, nil
}

func typeNode(t ir.Type) (TypeNode, error) {
	switch tt := t.(type) {
	case ir.ScalarType:
		return TypeNode{Kind: "scalar", Elem: tt.Elem.String()}, nil
	case ir.TensorType:
		return TypeNode{Kind: "tensor", Elem: tt.ElemType().String(), Dims: tt.Shape()}, nil
	case ir.BufferType:
		return TypeNode{Kind: "buffer", Elem: tt.ElemType().String(), Dims: tt.Shape()}, nil
	default:
		return TypeNode{}, fmt.Errorf("%w: unsupported type %s", ErrBadType, t)
	}
}

func attrNode(na ir.NamedAttr) (AttrNode, error) {
	switch a := na.Value.(type) {
	case ir.IntAttr:
		return AttrNode{Name: na.Name, Kind: "int", Int: int64(a)}, nil
	case ir.BoolAttr:
		return AttrNode{Name: na.Name, Kind: "bool", Bool: bool(a)}, nil
	case ir.StringAttr:
		return AttrNode{Name: na.Name, Kind: "string", Str: string(a)}, nil
	case ir.IntArrayAttr:
		return AttrNode{Name: na.Name, Kind: "ints", Ints: []int64(a)}, nil
	case ir.TypeAttr:
		t, err := typeNode(a.T)
		if err != nil {
			return AttrNode{}, err
		}
		return AttrNode{Name: na.Name, Kind: "type", Type: &t}, nil
	default:
		return AttrNode{}, fmt.Errorf("%w: unsupported attribute %q", ErrBadAttr, na.Name)
	}
}
