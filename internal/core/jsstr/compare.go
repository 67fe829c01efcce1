package jsstr

import (
	"slices"
	"strings"
)

func (v View) hasUnits() bool {
	return v.kind == asciiUnits || v.kind == wideUnits
}

// Equal reports whether v and o hold the same code units.
func (v View) Equal(o View) bool {
	if v.n != o.n {
		return false
	}
	if v.IsASCII() != o.IsASCII() {
		return false
	}
	switch {
	case v.kind == asciiText && o.kind == asciiText:
		return v.text == o.text
	case v.hasUnits() && o.hasUnits():
		return slices.Equal(v.units, o.units)
	}
	return v.Compare(o) == 0
}

// Compare orders v and o lexicographically by code unit.
func (v View) Compare(o View) int {
	switch {
	case v.kind == asciiText && o.kind == asciiText:
		return strings.Compare(v.text, o.text)
	case v.hasUnits() && o.hasUnits():
		return slices.Compare(v.units, o.units)
	}
	return slices.Compare(v.unitSlice(), o.unitSlice())
}

// Equal reports whether s and o hold the same code units.
func (s String) Equal(o String) bool {
	if s.r == o.r {
		return true
	}
	if s.r.isStatic() && o.r.isStatic() {
		return false
	}
	return s.View().Equal(o.View())
}

// EqualString reports whether s holds exactly the UTF-16 encoding of text.
func (s String) EqualString(text string) bool {
	return s.View().Equal(ViewOf(text))
}

// EqualUnits reports whether s holds exactly units.
func (s String) EqualUnits(units []uint16) bool {
	return s.View().Equal(ViewOfUnits(units))
}

// Compare orders s and o lexicographically by code unit.
func (s String) Compare(o String) int {
	if s.r == o.r {
		return 0
	}
	return s.View().Compare(o.View())
}

// Less reports whether s sorts before o.
func (s String) Less(o String) bool {
	return s.Compare(o) < 0
}
