package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keycalc/internal/calc/expr"
)

// eval <expression>: normalise and evaluate once, left to right.
func evalCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := expr.Normalize(strings.Join(args, " "))

			if !strict {
				fmt.Fprintln(cmd.OutOrStdout(), expr.Evaluate(text))
				return nil
			}

			v, err := expr.Compute(text)
			if err != nil {
				return fmt.Errorf("evaluating %q: %w", text, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr.FormatNumber(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing 0 for invalid input")
	return cmd
}
