package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strata-ir/strata/internal/encoding"
	"github.com/strata-ir/strata/internal/ir"
	"github.com/strata-ir/strata/internal/structured"
)

// opSpec is the YAML description consumed by the build subcommand.
type opSpec struct {
	Name    string     `yaml:"name"`
	Inputs  []typeSpec `yaml:"inputs"`
	Outputs []typeSpec `yaml:"outputs"`
	Results []typeSpec `yaml:"results"`
	Region  bool       `yaml:"region"`
}

// typeSpec mirrors the interchange type encoding: kind is "scalar",
// "tensor", or "buffer".
type typeSpec struct {
	Kind string  `yaml:"kind"`
	Elem string  `yaml:"elem"`
	Dims []int64 `yaml:"dims"`
}

// NewBuildCommand creates the build subcommand: construct a
// structured operation skeleton from a YAML description and emit it
// in text or interchange form. Operands become placeholder values;
// when a region is requested, its entry arguments are the per-element
// scalar types of the operands.
func NewBuildCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <spec.yaml>",
		Short: "Build a structured operation from a YAML description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var spec opSpec
			if err := yaml.Unmarshal(data, &spec); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			op, err := buildOp(spec)
			if err != nil {
				return err
			}
			switch opts.Format {
			case "json":
				out, err := encoding.Encode(op)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprint(cmd.OutOrStdout(), ir.Print(op))
			}
			return nil
		},
	}
}

func buildOp(spec opSpec) (*ir.Operation, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("op spec has no name")
	}

	operands := make([]ir.Value, 0, len(spec.Inputs)+len(spec.Outputs))
	for _, ts := range append(append([]typeSpec{}, spec.Inputs...), spec.Outputs...) {
		t, err := parseTypeSpec(ts)
		if err != nil {
			return nil, err
		}
		operands = append(operands, ir.NewPlaceholder(t))
	}

	resultTypes := make([]ir.Type, len(spec.Results))
	for i, ts := range spec.Results {
		t, err := parseTypeSpec(ts)
		if err != nil {
			return nil, err
		}
		resultTypes[i] = t
	}

	b := ir.NewBuilder()
	op := b.Create(spec.Name, ir.UnknownLoc, resultTypes, operands, nil)
	structured.SetSegmentSizes(op, len(spec.Inputs), len(spec.Outputs))

	if spec.Region {
		argTypes := make([]ir.Type, len(operands))
		for i, v := range operands {
			argTypes[i] = elementType(v.Type())
		}
		b.AttachRegion(op, argTypes)
	}
	return op, nil
}

// elementType maps a shaped operand type to the scalar its payload
// sees per element; scalar operands pass through unchanged.
func elementType(t ir.Type) ir.Type {
	if st, ok := t.(ir.ShapedType); ok {
		return ir.ScalarType{Elem: st.ElemType()}
	}
	return t
}

func parseTypeSpec(ts typeSpec) (ir.Type, error) {
	elem, err := ir.ParseDataType(ts.Elem)
	if err != nil {
		return nil, err
	}
	switch ts.Kind {
	case "scalar":
		return ir.ScalarType{Elem: elem}, nil
	case "tensor":
		return ir.NewTensorType(ir.Shape(ts.Dims), elem), nil
	case "buffer":
		return ir.NewBufferType(ir.Shape(ts.Dims), elem), nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", ts.Kind)
	}
}
