package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strata-ir/strata/internal/encoding"
	"github.com/strata-ir/strata/internal/ir"
)

// NewPrintCommand creates the print subcommand: decode a serialized
// operation and render it.
func NewPrintCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file.json>",
		Short: "Print a serialized operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := loadOp(args[0])
			if err != nil {
				return err
			}
			switch opts.Format {
			case "json":
				data, err := encoding.Encode(op)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprint(cmd.OutOrStdout(), ir.Print(op))
			}
			return nil
		},
	}
}

func loadOp(path string) (*ir.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	op, err := encoding.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return op, nil
}
