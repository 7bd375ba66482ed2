package commands

import "keycalc/internal/domain"

// splitKeys turns a CLI argument into key tokens. A whole-argument key such
// as "00" or "×" is kept as is; anything else is split into runes.
func splitKeys(arg string) []string {
	if domain.Key(arg).Valid() {
		return []string{arg}
	}
	keys := make([]string, 0, len(arg))
	for _, r := range arg {
		keys = append(keys, string(r))
	}
	return keys
}

// replAction is what a raw terminal byte asks the REPL to do.
type replAction int

const (
	actionNone replAction = iota
	actionKey
	actionHistory
	actionQuit
)

// rawKey maps one byte read in raw mode to a keypad token or a REPL action.
func rawKey(b byte) (string, replAction) {
	switch {
	case b >= '0' && b <= '9':
		return string(b), actionKey
	case b == '.', b == '+', b == '-', b == '%':
		return string(b), actionKey
	case b == '*', b == 'x', b == 'X':
		return domain.KeyMultiply.String(), actionKey
	case b == '/':
		return domain.KeyDivide.String(), actionKey
	case b == 127, b == 8: // DEL, Backspace
		return domain.KeyDelete.String(), actionKey
	case b == 'c', b == 'C', b == 27: // Esc clears
		return domain.KeyClear.String(), actionKey
	case b == '\r', b == '\n', b == '=':
		return domain.KeyCommit.String(), actionKey
	case b == 'h', b == 'H':
		return "", actionHistory
	case b == 'q', b == 'Q', b == 3, b == 4: // Ctrl-C, Ctrl-D
		return "", actionQuit
	}
	return "", actionNone
}
