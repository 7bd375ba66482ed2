package expr

import (
	"math"
	"strconv"
	"strings"
)

// Bounds of plain decimal notation; values outside use an exponent.
const (
	minPlain = 1e-6
	maxPlain = 1e21
)

// FormatNumber renders v with the shortest digits that round-trip. Values
// with magnitude in [1e-6, 1e21) use plain notation ("0.1", "20"), others use
// an exponent without zero padding ("1e+21", "1.5e-7"). Non-finite values and
// negative zero render as "0".
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) || v == 0 {
		return Zero
	}
	abs := math.Abs(v)
	if abs >= minPlain && abs < maxPlain {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
