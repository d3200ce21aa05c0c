package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strata-ir/strata/internal/ir"
	"github.com/strata-ir/strata/internal/structured"
)

// NewVerifyCommand creates the verify subcommand: decode a serialized
// operation and report the semantics of every structured operation in
// it. An operation that is neither pure-buffer nor pure-tensor is
// reported as mixed and makes the command fail.
func NewVerifyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.json>",
		Short: "Report structured-operation semantics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadOp(args[0])
			if err != nil {
				return err
			}
			mixed := 0
			report(cmd, root, &mixed)
			if r := root.Region(); r != nil {
				r.Walk(func(op *ir.Operation) {
					report(cmd, op, &mixed)
				})
			}
			if mixed > 0 {
				return fmt.Errorf("%d operation(s) with mixed operand storage classes", mixed)
			}
			return nil
		},
	}
}

func report(cmd *cobra.Command, o *ir.Operation, mixed *int) {
	op, ok := structured.Infer(o)
	if !ok {
		return
	}
	var semantics string
	switch {
	case structured.HasBufferSemantics(op):
		semantics = "buffer"
	case structured.HasTensorSemantics(op):
		semantics = "tensor"
	default:
		semantics = "mixed"
		*mixed++
	}

	line := fmt.Sprintf("%s: split (%d, %d), semantics %s",
		o.Name(), op.NumInputs(), op.NumOutputs(), semantics)

	if o.HasRegion() {
		var init []string
		for i, out := range structured.OutputOperands(op) {
			if structured.IsInitTensor(op, out) {
				init = append(init, fmt.Sprintf("%d", i))
			}
		}
		if len(init) > 0 {
			line += fmt.Sprintf(", init outputs [%s]", strings.Join(init, ", "))
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
