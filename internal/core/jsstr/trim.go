package jsstr

import "strings"

// IsTrimmable reports whether r is ECMAScript WhiteSpace or LineTerminator.
// U+0085 is not part of the set.
func IsTrimmable(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// All trimmable code points are BMP scalars, so units are tested directly.
func isTrimmableUnit(u uint16) bool {
	return IsTrimmable(rune(u))
}

// trimmedText classifies a trimmed run of v's text. ASCII stays ASCII; a
// narrow run may have lost every non-ASCII character.
func trimmedText(v View, text string) View {
	switch {
	case text == "":
		return View{}
	case v.kind == asciiText:
		return asciiView(text)
	default:
		return ViewOf(text)
	}
}

func trimmedUnits(units []uint16) View {
	if len(units) == 0 {
		return View{}
	}
	return classifyUnits(units)
}

// TrimStart drops leading whitespace and line terminators.
func (v View) TrimStart() View {
	switch v.kind {
	case asciiText, narrowText:
		return trimmedText(v, strings.TrimLeftFunc(v.text, IsTrimmable))
	}
	i := 0
	for i < len(v.units) && isTrimmableUnit(v.units[i]) {
		i++
	}
	return trimmedUnits(v.units[i:])
}

// TrimEnd drops trailing whitespace and line terminators.
func (v View) TrimEnd() View {
	switch v.kind {
	case asciiText, narrowText:
		return trimmedText(v, strings.TrimRightFunc(v.text, IsTrimmable))
	}
	j := len(v.units)
	for j > 0 && isTrimmableUnit(v.units[j-1]) {
		j--
	}
	return trimmedUnits(v.units[:j])
}

// Trim drops whitespace and line terminators at both ends.
func (v View) Trim() View {
	return v.TrimStart().TrimEnd()
}

// TrimStart returns a view of s without leading whitespace.
func (s String) TrimStart() View {
	return s.View().TrimStart()
}

// TrimEnd returns a view of s without trailing whitespace.
func (s String) TrimEnd() View {
	return s.View().TrimEnd()
}

// Trim returns a view of s without surrounding whitespace.
func (s String) Trim() View {
	return s.View().Trim()
}
