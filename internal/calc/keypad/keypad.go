package keypad

import (
	"unicode/utf8"

	"keycalc/internal/calc/expr"
	"keycalc/internal/domain"
)

// State is the raw input and its live result.
type State struct {
	Input  string
	Result string
}

// Initial returns the state before any key press.
func Initial() State {
	return State{Input: domain.DefaultInput, Result: expr.Zero}
}

// Snapshot returns the display view of s.
func (s State) Snapshot() domain.Snapshot {
	return domain.Snapshot{Input: s.Input, Result: s.Result}
}

// Press applies k to st. The returned entry is non-nil only for a commit.
func Press(st State, k domain.Key) (State, *domain.HistoryEntry) {
	switch {
	case k == domain.KeyClear:
		return Initial(), nil

	case k == domain.KeyDelete:
		return evaluated(dropLast(st.Input)), nil

	case k == domain.KeyCommit:
		entry := &domain.HistoryEntry{Expr: st.Input, Result: st.Result}
		return State{Input: st.Result, Result: st.Result}, entry

	case k.IsInput():
		if st.Input == domain.DefaultInput {
			return evaluated(k.String()), nil
		}
		return evaluated(st.Input + k.String()), nil
	}
	return st, nil
}

// Live returns the preview result for a raw input.
func Live(input string) string {
	return expr.Evaluate(expr.Normalize(input))
}

func evaluated(input string) State {
	return State{Input: input, Result: Live(input)}
}

// dropLast removes the final rune so glyph operators go in one step.
func dropLast(input string) string {
	if utf8.RuneCountInString(input) <= 1 {
		return domain.DefaultInput
	}
	_, size := utf8.DecodeLastRuneInString(input)
	return input[:len(input)-size]
}
