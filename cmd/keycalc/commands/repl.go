package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keycalc/internal/domain"
	"keycalc/internal/services/controller"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive keypad",
		Long: "On a terminal every key acts immediately: digits . + - % as typed,\n" +
			"* or x multiply, / divide, Backspace delete, c or Esc clear, Enter or = commit,\n" +
			"h history, q quit. When stdin is not a terminal each line holds\n" +
			"whitespace-separated keys; the lines 'history' and 'quit' are commands.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := appCtx.NewSession()
			out := cmd.OutOrStdout()

			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return runRaw(f, out, ctrl)
			}
			return runLines(cmd.InOrStdin(), out, ctrl)
		},
	}
}

// runRaw reads single keys with the terminal in raw mode.
func runRaw(in *os.File, out io.Writer, ctrl *controller.Service) error {
	fd := int(in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, old) }()

	render(out, ctrl.Snapshot())
	buf := make([]byte, 1)
	for {
		if _, err := in.Read(buf); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		key, action := rawKey(buf[0])
		switch action {
		case actionKey:
			render(out, ctrl.OnKeyPress(key))
		case actionHistory:
			fmt.Fprint(out, "\r\n")
			printHistory(crlf{out}, ctrl.History())
			render(out, ctrl.Snapshot())
		case actionQuit:
			fmt.Fprint(out, "\r\n")
			return nil
		}
	}
	fmt.Fprint(out, "\r\n")
	return nil
}

// runLines reads whitespace-separated keys line by line.
func runLines(in io.Reader, out io.Writer, ctrl *controller.Service) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "history":
			printHistory(out, ctrl.History())
			continue
		}

		var snap domain.Snapshot
		for _, field := range strings.Fields(line) {
			for _, key := range splitKeys(field) {
				snap = ctrl.OnKeyPress(key)
			}
		}
		fmt.Fprintf(out, "%s = %s\n", snap.Input, color.CyanString(snap.Result))
	}
	return sc.Err()
}

func render(out io.Writer, snap domain.Snapshot) {
	fmt.Fprintf(out, "\r\x1b[K%s  %s", snap.Input, color.CyanString("= "+snap.Result))
}

// crlf rewrites "\n" to "\r\n" for output written while in raw mode.
type crlf struct{ w io.Writer }

func (c crlf) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.w, strings.ReplaceAll(string(p), "\n", "\r\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
