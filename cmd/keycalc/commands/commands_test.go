package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycalc/internal/app"
)

// run executes the CLI against a temp home and returns stdout.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", home, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "2+3×4"}, "20\n"},
		{[]string{"eval", "10%"}, "0.1\n"},
		{[]string{"eval", "1", "+", "2"}, "3\n"},
		{[]string{"eval", "7÷"}, "7\n"},
		{[]string{"eval", "abc"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			out, err := run(t, t.TempDir(), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEval_Strict(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "eval", "--strict", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not well formed")

	_, err = run(t, t.TempDir(), "", "eval", "--strict", "1÷0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")

	out, err := run(t, t.TempDir(), "", "eval", "--strict", "1÷4")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n", out)
}

func TestPress_CommitShowsHistory(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "press", "1+2=")
	require.NoError(t, err)

	assert.Contains(t, out, "input:  3\n")
	assert.Contains(t, out, "result: 3\n")
	assert.Contains(t, out, "history:\n  1+2 = 3\n")
}

func TestPress_SeparateKeys(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "press", "9", "00", "×", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "input:  900×2\n")
	assert.Contains(t, out, "result: 1800\n")
	assert.Contains(t, out, "history: (empty)\n")
}

func TestPress_NoHistory(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "--no-history", "press", "1+2=")
	require.NoError(t, err)
	assert.NotContains(t, out, "history")
}

func TestPress_HistoryDisabledByConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(app.ConfigPath(home), []byte("[history]\nenabled = false\n"), 0o600))

	out, err := run(t, home, "", "press", "4×4=")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 16\n")
	assert.NotContains(t, out, "history")
}

func TestPress_Trace(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "press", "--trace", "5+D")
	require.NoError(t, err)
	assert.Contains(t, out, "5   5 = 5\n")
	assert.Contains(t, out, "+   5+ = 5\n")
	assert.Contains(t, out, "D   5 = 5\n")
}

func TestRepl_Lines(t *testing.T) {
	stdin := "1 + 2\n=\n\n× 3 =\nhistory\nquit\n4\n"
	out, err := run(t, t.TempDir(), stdin, "repl")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"1+2 = 3",
		"3 = 3",
		"9 = 9",
		"history:",
		"  3×3 = 9",
		"  1+2 = 3",
		"",
	}, "\n"), out)
}

func TestInit_WritesDefaultConfig(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, app.ConfigFilename))

	cfg, err := app.LoadConfig(app.ConfigPath(home))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig().History, cfg.History)

	_, err = run(t, home, "", "init")
	require.Error(t, err)

	_, err = run(t, home, "", "init", "--force")
	require.NoError(t, err)
}

func TestRoot_BadConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(app.ConfigPath(home), []byte("[history\n"), 0o600))

	_, err := run(t, home, "", "eval", "1")
	require.Error(t, err)
}
