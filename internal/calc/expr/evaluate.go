package expr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Zero is the value shown for anything that cannot be evaluated.
const Zero = "0"

var (
	// ErrIncomplete is returned when nothing is left after trailing operators are stripped.
	ErrIncomplete = errors.New("expression is empty")
	// ErrSyntax is returned when the expression does not match the keypad grammar.
	ErrSyntax = errors.New("expression is not well formed")
	// ErrDivisionByZero is returned when any step divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is returned when the result overflows to an infinity.
	ErrNonFinite = errors.New("result is not finite")
)

var (
	trailingOps = regexp.MustCompile(`[+\-*/]+$`)
	grammar     = regexp.MustCompile(`^-?\d+(\.\d+)?(\s*[+\-*/]\s*-?\d+(\.\d+)?)*$`)
)

// Evaluate returns the value of text formatted as a decimal string, or "0"
// when text is incomplete, malformed or cannot be computed.
func Evaluate(text string) string {
	v, err := Compute(text)
	if err != nil {
		return Zero
	}
	return FormatNumber(v)
}

// Compute evaluates text left to right and returns the raw value.
func Compute(text string) (float64, error) {
	text = strings.TrimSpace(text)
	text = trailingOps.ReplaceAllString(text, "")
	if text == "" {
		return 0, ErrIncomplete
	}
	if !grammar.MatchString(text) {
		return 0, fmt.Errorf("%q: %w", text, ErrSyntax)
	}

	s := scanner{src: text}
	acc, err := s.operand()
	if err != nil {
		return 0, err
	}
	for !s.done() {
		op := s.operator()
		rhs, err := s.operand()
		if err != nil {
			return 0, err
		}
		if acc, err = apply(acc, op, rhs); err != nil {
			return 0, err
		}
	}
	if math.IsInf(acc, 0) || math.IsNaN(acc) {
		return 0, ErrNonFinite
	}
	return acc, nil
}

func apply(lhs float64, op byte, rhs float64) (float64, error) {
	switch op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("operator %q: %w", op, ErrSyntax)
}

// scanner walks an expression that already matched the grammar.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) skipSpace() {
	for !s.done() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) operator() byte {
	s.skipSpace()
	op := s.src[s.pos]
	s.pos++
	s.skipSpace()
	return op
}

func (s *scanner) operand() (float64, error) {
	start := s.pos
	if !s.done() && s.src[s.pos] == '-' {
		s.pos++
	}
	for !s.done() && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.pos++
	}
	lit := s.src[start:s.pos]
	v, err := strconv.ParseFloat(lit, 64)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, strconv.ErrRange):
		if math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}
		return v, nil
	default:
		return 0, fmt.Errorf("operand %q: %w", lit, ErrSyntax)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isSpace matches the RE2 \s class used by the grammar.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
