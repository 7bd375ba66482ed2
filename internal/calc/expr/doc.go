// Package expr normalises and evaluates keypad expressions.
//
// # Normalisation
//
// Display glyphs are rewritten to evaluable operators: × becomes *, ÷ becomes /
// and every % becomes the literal text /100 at the point it occurs. The rewrite
// is purely textual, so 50%+1 evaluates as 50/100+1.
//
// # Evaluation
//
// An expression is trimmed and stripped of trailing operators, then matched in
// full against
//
//	-?\d+(\.\d+)?(\s*[+\-*/]\s*-?\d+(\.\d+)?)*
//
// Matching input is folded strictly left to right with no operator precedence:
// 2+3*4 is (2+3)*4 = 20. Each operand may carry its own leading minus, so 3*-2
// and 3--2 are valid.
//
// # Errors
//
// Evaluate never fails. Incomplete, malformed, division-by-zero and non-finite
// results all render as "0". Compute runs the same pipeline and reports the
// reason as one of ErrIncomplete, ErrSyntax, ErrDivisionByZero or ErrNonFinite.
package expr
