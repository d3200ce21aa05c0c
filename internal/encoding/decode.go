package encoding

import (
	"encoding/json"
	"fmt"

	"github.com/strata-ir/strata/internal/ir"
	"github.com/strata-ir/strata/internal/structured"
)

// Decode reconstructs an operation from its version-1 JSON
// interchange form. Free values from the value table become
// placeholders. Every operation carrying the reserved
// operand_segment_sizes attribute is checked for a well-formed pair
// consistent with its operand count; a violation is a structural
// error, not a value to repair.
func Decode(data []byte) (*ir.Operation, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("encoding: parse: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if f.Op == nil {
		return nil, fmt.Errorf("encoding: document has no op")
	}

	d := &decoder{
		b:      ir.NewBuilder(),
		values: make(map[string]ir.Value),
	}
	for _, vd := range f.Values {
		t, err := parseType(vd.Type)
		if err != nil {
			return nil, err
		}
		if err := d.define(vd.ID, ir.NewPlaceholder(t)); err != nil {
			return nil, err
		}
	}
	return d.decodeOp(*f.Op)
}

type decoder struct {
	b      *ir.Builder
	values map[string]ir.Value
}

func (d *decoder) define(id string, v ir.Value) error {
	if _, dup := d.values[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	d.values[id] = v
	return nil
}

func (d *decoder) decodeOp(n OpNode) (*ir.Operation, error) {
	operands := make([]ir.Value, len(n.Operands))
	for i, id := range n.Operands {
		v, ok := d.values[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownValue, id, n.Name)
		}
		operands[i] = v
	}

	resultTypes := make([]ir.Type, len(n.Results))
	for i, rd := range n.Results {
		t, err := parseType(rd.Type)
		if err != nil {
			return nil, err
		}
		resultTypes[i] = t
	}

	attrs := make([]ir.NamedAttr, 0, len(n.Attrs))
	for _, an := range n.Attrs {
		na, err := parseAttr(an)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, na)
	}

	op := d.b.Create(n.Name, ir.UnknownLoc, resultTypes, operands, attrs)
	for i, rd := range n.Results {
		if err := d.define(rd.ID, op.Result(i)); err != nil {
			return nil, err
		}
	}

	if n.Region != nil {
		if len(n.Region.Args) != len(operands) {
			return nil, fmt.Errorf("%w: %d args for %d operands in %q",
				ErrBadRegion, len(n.Region.Args), len(operands), n.Name)
		}
		argTypes := make([]ir.Type, len(n.Region.Args))
		for i, ad := range n.Region.Args {
			t, err := parseType(ad.Type)
			if err != nil {
				return nil, err
			}
			argTypes[i] = t
		}
		entry := d.b.AttachRegion(op, argTypes)
		for i, ad := range n.Region.Args {
			if err := d.define(ad.ID, entry.Argument(i)); err != nil {
				return nil, err
			}
		}
		for _, child := range n.Region.Ops {
			cop, err := d.decodeOp(child)
			if err != nil {
				return nil, err
			}
			entry.Append(cop)
		}
	}

	if _, claims := op.Attr(structured.SegmentSizesAttr); claims {
		in, out, err := structured.SegmentSizes(op)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadSegments, n.Name, err)
		}
		if in+out != op.NumOperands() {
			return nil, fmt.Errorf("%w: %q: split (%d, %d) over %d operands",
				ErrBadSegments, n.Name, in, out, op.NumOperands())
		}
	}
	return op, nil
}

func parseType(n TypeNode) (ir.Type, error) {
	elem, err := ir.ParseDataType(n.Elem)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadType, err)
	}
	switch n.Kind {
	case "scalar":
		if len(n.Dims) != 0 {
			return nil, fmt.Errorf("%w: scalar with dims", ErrBadType)
		}
		return ir.ScalarType{Elem: elem}, nil
	case "tensor":
		return ir.NewTensorType(ir.Shape(n.Dims), elem), nil
	case "buffer":
		return ir.NewBufferType(ir.Shape(n.Dims), elem), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadType, n.Kind)
	}
}

func parseAttr(n AttrNode) (ir.NamedAttr, error) {
	switch n.Kind {
	case "int":
		return ir.NamedAttr{Name: n.Name, Value: ir.IntAttr(n.Int)}, nil
	case "bool":
		return ir.NamedAttr{Name: n.Name, Value: ir.BoolAttr(n.Bool)}, nil
	case "string":
		return ir.NamedAttr{Name: n.Name, Value: ir.StringAttr(n.Str)}, nil
	case "ints":
		return ir.NamedAttr{Name: n.Name, Value: ir.IntArrayAttr(n.Ints)}, nil
	case "type":
		if n.Type == nil {
			return ir.NamedAttr{}, fmt.Errorf("%w: %q: type attribute without type", ErrBadAttr, n.Name)
		}
		t, err := parseType(*n.Type)
		if err != nil {
			return ir.NamedAttr{}, err
		}
		return ir.NamedAttr{Name: n.Name, Value: ir.TypeAttr{T: t}}, nil
	default:
		return ir.NamedAttr{}, fmt.Errorf("%w: %q: unknown kind %q", ErrBadAttr, n.Name, n.Kind)
	}
}
