package jsstr

import (
	"fmt"
	"iter"
	"unicode/utf16"
)

const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000
)

func isHighSurrogate(u uint16) bool { return u >= surrHigh && u < surrLow }
func isLowSurrogate(u uint16) bool  { return u >= surrLow && u < surrEnd }
func isSurrogate(u uint16) bool     { return u >= surrHigh && u < surrEnd }

// CodePoint is either a Unicode scalar value or an unpaired surrogate.
type CodePoint struct {
	value    rune
	unpaired bool
}

// Scalar returns the CodePoint of a Unicode scalar value.
func Scalar(r rune) CodePoint {
	return CodePoint{value: r}
}

// UnpairedSurrogate returns the CodePoint of a lone surrogate unit.
func UnpairedSurrogate(u uint16) CodePoint {
	return CodePoint{value: rune(u), unpaired: true}
}

// IsUnpairedSurrogate reports whether c is a lone surrogate.
func (c CodePoint) IsUnpairedSurrogate() bool {
	return c.unpaired
}

// Width returns the number of code units c occupies.
func (c CodePoint) Width() int {
	if !c.unpaired && c.value >= surrSelf {
		return 2
	}
	return 1
}

// Rune returns the scalar value. It reports false for unpaired surrogates.
func (c CodePoint) Rune() (rune, bool) {
	return c.value, !c.unpaired
}

// Uint32 returns the numeric value, the surrogate unit itself when unpaired.
func (c CodePoint) Uint32() uint32 {
	return uint32(c.value) //nolint:gosec // values are at most 0x10FFFF
}

// AppendUTF16 appends the code units of c to dst.
func (c CodePoint) AppendUTF16(dst []uint16) []uint16 {
	if c.unpaired {
		return append(dst, uint16(c.value)) //nolint:gosec // surrogates fit in 16 bits
	}
	return utf16.AppendRune(dst, c.value)
}

// String renders a scalar as itself and an unpaired surrogate as \uXXXX.
func (c CodePoint) String() string {
	if c.unpaired {
		return fmt.Sprintf(`\u%04X`, c.value)
	}
	return string(c.value)
}

// CodePointAt decodes the code point starting at pos. It panics when pos is
// not below Len().
func (v View) CodePointAt(pos int) CodePoint {
	u := v.At(pos)
	if !isSurrogate(u) {
		return Scalar(rune(u))
	}
	if isHighSurrogate(u) {
		if next, ok := v.Get(pos + 1); ok && isLowSurrogate(next) {
			return Scalar(utf16.DecodeRune(rune(u), rune(next)))
		}
	}
	return UnpairedSurrogate(u)
}

// CodePointAt decodes the code point of s starting at pos.
func (s String) CodePointAt(pos int) CodePoint {
	return s.View().CodePointAt(pos)
}

// CodePoints returns the decoded code points in order.
func (v View) CodePoints() iter.Seq[CodePoint] {
	return func(yield func(CodePoint) bool) {
		var high uint16
		pending := false
		for u := range v.Units() {
			if pending {
				pending = false
				if isLowSurrogate(u) {
					if !yield(Scalar(utf16.DecodeRune(rune(high), rune(u)))) {
						return
					}
					continue
				}
				if !yield(UnpairedSurrogate(high)) {
					return
				}
			}
			switch {
			case isHighSurrogate(u):
				high = u
				pending = true
			case isLowSurrogate(u):
				if !yield(UnpairedSurrogate(u)) {
					return
				}
			default:
				if !yield(Scalar(rune(u))) {
					return
				}
			}
		}
		if pending {
			yield(UnpairedSurrogate(high))
		}
	}
}
