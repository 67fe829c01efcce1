package jsstr

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts the content with the StringToNumber abstract operation.
// Text that is not a StringNumericLiteral converts to NaN. A sign is only
// accepted on decimal literals, so "-0x10" is NaN.
func (v View) ToNumber() float64 {
	text, err := v.ToGoString()
	if err != nil {
		return math.NaN()
	}
	return parseNumericLiteral(strings.TrimFunc(text, IsTrimmable))
}

// ToNumber converts s with the StringToNumber abstract operation.
func (s String) ToNumber() float64 {
	return s.View().ToNumber()
}

func parseNumericLiteral(s string) float64 {
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) >= 2 && s[0] == '0' {
		if base := radixOf(s[1]); base != 0 {
			return parseNonDecimal(s[2:], base)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func radixOf(c byte) int {
	switch c {
	case 'b', 'B':
		return 2
	case 'o', 'O':
		return 8
	case 'x', 'X':
		return 16
	}
	return 0
}

// parseNonDecimal parses the digits after a 0b, 0o or 0x prefix.
func parseNonDecimal(digits string, base int) float64 {
	u, err := strconv.ParseUint(digits, base, 64)
	if err == nil {
		return float64(u)
	}
	if !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	value := 0.0
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d >= base {
			return math.NaN()
		}
		value = math.FMA(value, float64(base), float64(d))
	}
	return value
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return math.MaxInt
}

// isDecimalLiteral reports whether s matches StrDecimalLiteral without the
// Infinity forms, which are handled before.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := digitRun(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = digitRun(s[i:])
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := digitRun(s[i:])
		if exp == 0 {
			return false
		}
		i += exp
	}
	return i == len(s)
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
