package jsstr

import (
	"slices"
	"strings"
)

// IndexOf returns the first position at or after from where needle occurs.
// An empty needle matches at from whenever from is within [0, Len()].
func (v View) IndexOf(needle View, from int) (int, bool) {
	if from < 0 || from > v.n {
		return 0, false
	}
	if needle.n == 0 {
		return from, true
	}
	if needle.n > v.n-from {
		return 0, false
	}
	if v.IsASCII() && !needle.IsASCII() {
		return 0, false
	}

	if v.kind == asciiText && needle.kind == asciiText {
		i := strings.Index(v.text[from:], needle.text)
		if i < 0 {
			return 0, false
		}
		return from + i, true
	}

	hay := v.unitSlice()
	nd := needle.unitSlice()
	last := len(hay) - len(nd)
	for i := from; i <= last; i++ {
		j := slices.Index(hay[i:last+1], nd[0])
		if j < 0 {
			return 0, false
		}
		i += j
		if slices.Equal(hay[i:i+len(nd)], nd) {
			return i, true
		}
	}
	return 0, false
}

// IndexOf returns the first position at or after from where needle occurs.
func (s String) IndexOf(needle View, from int) (int, bool) {
	return s.View().IndexOf(needle, from)
}

// ContainsByte reports whether some code unit equals b.
func (v View) ContainsByte(b byte) bool {
	switch v.kind {
	case asciiText:
		return strings.IndexByte(v.text, b) >= 0
	case asciiUnits, wideUnits:
		return slices.Contains(v.units, uint16(b))
	}
	for u := range v.Units() {
		if u == uint16(b) {
			return true
		}
	}
	return false
}

// ContainsByte reports whether some code unit of s equals b.
func (s String) ContainsByte(b byte) bool {
	return s.View().ContainsByte(b)
}
