package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"keycalc/internal/domain"
)

// press <key>...: replay keys through a fresh controller and print the display.
func pressCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "press <key>...",
		Short: "Replay key presses and print the final display",
		Long: "Each argument is a key (0-9 . 00 + - × ÷ * / % C D =) or a run of\n" +
			"single-character keys such as 12+3=. Use -- before keys starting with '-'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctrl := appCtx.NewSession()

			for _, arg := range args {
				for _, key := range splitKeys(arg) {
					snap := ctrl.OnKeyPress(key)
					if trace {
						fmt.Fprintf(out, "%-3s %s = %s\n", key, snap.Input, snap.Result)
					}
				}
			}

			snap := ctrl.Snapshot()
			fmt.Fprintf(out, "input:  %s\n", snap.Input)
			fmt.Fprintf(out, "result: %s\n", color.CyanString(snap.Result))
			if ctrl.HistoryEnabled() {
				printHistory(out, ctrl.History())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	return cmd
}

func printHistory(out io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "history: (empty)")
		return
	}
	fmt.Fprintln(out, color.GreenString("history:"))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s = %s\n", e.Expr, e.Result)
	}
}
