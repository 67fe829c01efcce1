package jsstr

import (
	"iter"
	"unicode/utf16"
	"unicode/utf8"
)

type viewKind uint8

const (
	// asciiText is ASCII held in a Go string, one byte per unit.
	asciiText viewKind = iota
	// asciiUnits is ASCII held in UTF-16 code units.
	asciiUnits
	// narrowText is non-ASCII UTF-8 text in a Go string.
	narrowText
	// wideUnits is UTF-16 code units with at least one non-ASCII unit.
	wideUnits
)

// checkInvariants makes the unchecked view constructors verify their input.
var checkInvariants = false

// View is a borrowed, read-only window onto string content. Its length is
// always measured in UTF-16 code units, whatever the origin of the content.
//
// The zero View is empty.
type View struct {
	kind  viewKind
	text  string
	units []uint16
	n     int
}

// ViewOf classifies Go text. Invalid UTF-8 bytes read as U+FFFD.
func ViewOf(text string) View {
	if isASCII(text) {
		return asciiView(text)
	}
	return narrowView(text, utf16Len(text))
}

// ViewOfUnits classifies UTF-16 code units.
func ViewOfUnits(units []uint16) View {
	return classifyUnits(units)
}

func classifyUnits(units []uint16) View {
	if unitsASCII(units) {
		return asciiUnitsView(units)
	}
	return wideView(units)
}

func asciiView(text string) View {
	if checkInvariants && !isASCII(text) {
		fail(ErrInvalidView, "kind", "ascii text")
	}
	return View{kind: asciiText, text: text, n: len(text)}
}

func asciiUnitsView(units []uint16) View {
	if checkInvariants && !unitsASCII(units) {
		fail(ErrInvalidView, "kind", "ascii units")
	}
	return View{kind: asciiUnits, units: units, n: len(units)}
}

func narrowView(text string, n int) View {
	if checkInvariants && (isASCII(text) || utf16Len(text) != n) {
		fail(ErrInvalidView, "kind", "narrow text")
	}
	return View{kind: narrowText, text: text, n: n}
}

func wideView(units []uint16) View {
	if checkInvariants && unitsASCII(units) {
		fail(ErrInvalidView, "kind", "wide units")
	}
	return View{kind: wideUnits, units: units, n: len(units)}
}

// Len returns the number of UTF-16 code units.
func (v View) Len() int {
	return v.n
}

// IsEmpty reports whether the view holds no units.
func (v View) IsEmpty() bool {
	return v.n == 0
}

// IsASCII reports whether every unit of the view is below 0x80.
func (v View) IsASCII() bool {
	return v.kind == asciiText || v.kind == asciiUnits
}

// Units returns the code units in order.
func (v View) Units() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		switch v.kind {
		case asciiText:
			for i := 0; i < len(v.text); i++ {
				if !yield(uint16(v.text[i])) {
					return
				}
			}
		case asciiUnits, wideUnits:
			for _, u := range v.units {
				if !yield(u) {
					return
				}
			}
		case narrowText:
			for _, r := range v.text {
				if r >= surrSelf {
					hi, lo := utf16.EncodeRune(r)
					if !yield(uint16(hi)) || !yield(uint16(lo)) {
						return
					}
					continue
				}
				if !yield(uint16(r)) {
					return
				}
			}
		}
	}
}

// AppendUnits appends the code units of v to dst.
func (v View) AppendUnits(dst []uint16) []uint16 {
	switch v.kind {
	case asciiText:
		for i := 0; i < len(v.text); i++ {
			dst = append(dst, uint16(v.text[i]))
		}
	case asciiUnits, wideUnits:
		dst = append(dst, v.units...)
	case narrowText:
		for _, r := range v.text {
			dst = utf16.AppendRune(dst, r)
		}
	}
	return dst
}

// unitSlice returns the units of v, converting text origins.
func (v View) unitSlice() []uint16 {
	if v.kind == asciiUnits || v.kind == wideUnits {
		return v.units
	}
	return v.AppendUnits(make([]uint16, 0, v.n))
}

// Get returns the code unit at i.
func (v View) Get(i int) (uint16, bool) {
	if i < 0 || i >= v.n {
		return 0, false
	}
	switch v.kind {
	case asciiText:
		return uint16(v.text[i]), true
	case asciiUnits, wideUnits:
		return v.units[i], true
	}
	pos := 0
	for u := range v.Units() {
		if pos == i {
			return u, true
		}
		pos++
	}
	return 0, false
}

// At returns the code unit at i and panics when i is out of range.
func (v View) At(i int) uint16 {
	u, ok := v.Get(i)
	if !ok {
		fail(ErrIndexOutOfRange, "index", i)
	}
	return u
}

// Sub returns the units in [start, end).
func (v View) Sub(start, end int) (View, bool) {
	if start < 0 || end < start || end > v.n {
		return View{}, false
	}
	switch v.kind {
	case asciiText:
		return asciiView(v.text[start:end]), true
	case asciiUnits:
		return asciiUnitsView(v.units[start:end]), true
	case wideUnits:
		return classifyUnits(v.units[start:end]), true
	}
	return classifyUnits(v.unitSlice()[start:end]), true
}

const surrSelf = 0x10000

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func unitsASCII(units []uint16) bool {
	for _, u := range units {
		if u >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// utf16Len counts the UTF-16 units needed to encode text.
func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}
