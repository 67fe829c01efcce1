package jsstr

// Str is the stored content of a String. It is either ASCII text, one byte
// per code unit, or UTF-16 code units containing at least one non-ASCII unit.
type Str struct {
	ascii string
	units []uint16
	wide  bool
}

// Len returns the number of UTF-16 code units.
func (s Str) Len() int {
	if s.wide {
		return len(s.units)
	}
	return len(s.ascii)
}

// IsASCII reports whether the content is stored one byte per unit.
func (s Str) IsASCII() bool {
	return !s.wide
}

// View returns a borrowed view of the content.
func (s Str) View() View {
	if s.wide {
		return View{kind: wideUnits, units: s.units, n: len(s.units)}
	}
	return View{kind: asciiText, text: s.ascii, n: len(s.ascii)}
}

// Get returns the code unit at i.
func (s Str) Get(i int) (uint16, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	}
	if s.wide {
		return s.units[i], true
	}
	return uint16(s.ascii[i]), true
}

// Sub returns the units in [start, end). A UTF-16 range holding only ASCII
// units is reported as an ASCII view.
func (s Str) Sub(start, end int) (View, bool) {
	if start < 0 || end < start || end > s.Len() {
		return View{}, false
	}
	if !s.wide {
		return asciiView(s.ascii[start:end]), true
	}
	return classifyUnits(s.units[start:end]), true
}
