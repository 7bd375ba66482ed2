package types

// Key is a single keypad token as pressed by the user.
type Key string

// Keypad tokens. Operators use their display glyphs; the ASCII forms of
// multiply and divide are accepted as aliases.
const (
	KeyClear    Key = "C"
	KeyDelete   Key = "D"
	KeyCommit   Key = "="
	KeyPoint    Key = "."
	KeyZeroZero Key = "00"

	KeyAdd      Key = "+"
	KeySubtract Key = "-"
	KeyMultiply Key = "×"
	KeyDivide   Key = "÷"
	KeyPercent  Key = "%"

	KeyMultiplyASCII Key = "*"
	KeyDivideASCII   Key = "/"
)

// String returns the string form of the key.
func (k Key) String() string { return string(k) }

// IsDigit reports whether k is one of 0-9.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// IsOperator reports whether k is a binary operator or percent.
func (k Key) IsOperator() bool {
	switch k {
	case KeyAdd, KeySubtract, KeyMultiply, KeyDivide, KeyPercent,
		KeyMultiplyASCII, KeyDivideASCII:
		return true
	}
	return false
}

// IsInput reports whether pressing k appends text to the raw input.
func (k Key) IsInput() bool {
	return k.IsDigit() || k.IsOperator() || k == KeyPoint || k == KeyZeroZero
}

// Valid reports whether k belongs to the keypad alphabet.
func (k Key) Valid() bool {
	return k.IsInput() || k == KeyClear || k == KeyDelete || k == KeyCommit
}
