package jsstr

import "math"

// FromString builds a String from UTF-8 text. Invalid bytes become U+FFFD.
// Interned text is returned without allocating.
func FromString(text string) String {
	return ConcatViews(ViewOf(text))
}

// FromUnits builds a String from UTF-16 code units, unpaired surrogates
// included.
func FromUnits(units []uint16) String {
	return ConcatViews(ViewOfUnits(units))
}

// FromView copies the content of v into a String.
func FromView(v View) String {
	return ConcatViews(v)
}

// Concat joins two views.
func Concat(a, b View) String {
	return ConcatViews(a, b)
}

// ConcatStrings joins strings without releasing them.
func ConcatStrings(ss ...String) String {
	views := make([]View, len(ss))
	for i, s := range ss {
		views[i] = s.View()
	}
	return ConcatViews(views...)
}

// ConcatViews joins views into a single allocation. The result is stored
// as ASCII when every input is ASCII, and an ASCII result that is already
// interned is returned as the interned String.
func ConcatViews(views ...View) String {
	total := 0
	ascii := true
	for _, v := range views {
		if v.n > math.MaxInt-total {
			fail(ErrAllocationOverflow, "views", len(views))
		}
		total += v.n
		ascii = ascii && v.IsASCII()
	}
	if total == 0 {
		return String{}
	}

	if ascii && len(views) == 1 && views[0].kind == asciiText {
		if s, ok := WellKnown().Lookup(views[0].text); ok {
			return s
		}
	}

	w := allocate(total, ascii)
	for _, v := range views {
		w.write(v)
	}
	b := w.seal()

	if ascii {
		if s, ok := WellKnown().Lookup(b.str.ascii); ok {
			b.release()
			return s
		}
	}
	return String{r: heapRef(b)}
}

func (w *blockWriter) write(v View) {
	if !w.block.ascii {
		w.units = v.AppendUnits(w.units)
		return
	}
	switch v.kind {
	case asciiText:
		w.text.WriteString(v.text)
	case asciiUnits:
		for _, u := range v.units {
			w.text.WriteByte(byte(u))
		}
	default:
		fail(ErrInvalidView, "kind", "non-ascii view in ascii block")
	}
}
