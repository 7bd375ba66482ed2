package expr

import "strings"

var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"%", "/100",
)

// Normalize rewrites display glyphs into the operators Evaluate understands.
// It does not validate the result.
func Normalize(text string) string {
	return glyphs.Replace(text)
}
