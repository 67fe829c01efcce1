package jsstr

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// ToGoString decodes v to UTF-8. It fails on the first unpaired surrogate.
func (v View) ToGoString() (string, error) {
	switch v.kind {
	case asciiText:
		return v.text, nil
	case narrowText:
		if utf8.ValidString(v.text) {
			return v.text, nil
		}
	}

	var sb strings.Builder
	sb.Grow(v.n)
	pos := 0
	for c := range v.CodePoints() {
		if c.unpaired {
			err := zerr.With(zerr.Wrap(ErrUnpairedSurrogate, "cannot decode string"), "index", pos)
			return "", zerr.With(err, "unit", fmt.Sprintf("0x%04X", c.value))
		}
		sb.WriteRune(c.value)
		pos += c.Width()
	}
	return sb.String(), nil
}

// ToStringEscaped decodes v to UTF-8 and renders every unpaired surrogate
// as \uXXXX.
func (v View) ToStringEscaped() string {
	if v.kind == asciiText {
		return v.text
	}
	var sb strings.Builder
	sb.Grow(v.n)
	for c := range v.CodePoints() {
		if c.unpaired {
			_, _ = fmt.Fprintf(&sb, `\u%04X`, c.value)
			continue
		}
		sb.WriteRune(c.value)
	}
	return sb.String()
}

// String implements fmt.Stringer with the escaped rendering.
func (v View) String() string {
	return v.ToStringEscaped()
}

// Segment is a maximal run of valid text or a single unpaired surrogate.
type Segment struct {
	Text      string
	Surrogate uint16
	Unpaired  bool
}

// Segments splits v into valid runs and unpaired surrogates, in order.
func (v View) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var sb strings.Builder
		flush := func() bool {
			if sb.Len() == 0 {
				return true
			}
			text := sb.String()
			sb.Reset()
			return yield(Segment{Text: text})
		}
		for c := range v.CodePoints() {
			if !c.unpaired {
				sb.WriteRune(c.value)
				continue
			}
			if !flush() {
				return
			}
			if !yield(Segment{Surrogate: uint16(c.value), Unpaired: true}) { //nolint:gosec // surrogate unit
				return
			}
		}
		flush()
	}
}

// MapValidSegments rewrites every valid run with f and keeps unpaired
// surrogates in place.
func (v View) MapValidSegments(f func(string) string) String {
	units := make([]uint16, 0, v.n)
	for seg := range v.Segments() {
		if seg.Unpaired {
			units = append(units, seg.Surrogate)
			continue
		}
		units = ViewOf(f(seg.Text)).AppendUnits(units)
	}
	return FromUnits(units)
}

// ToUnits returns a copy of the code units.
func (v View) ToUnits() []uint16 {
	return v.AppendUnits(make([]uint16, 0, v.n))
}

// ToGoString decodes s to UTF-8. It fails on the first unpaired surrogate.
func (s String) ToGoString() (string, error) {
	return s.View().ToGoString()
}

// ToStringEscaped decodes s and renders unpaired surrogates as \uXXXX.
func (s String) ToStringEscaped() string {
	return s.View().ToStringEscaped()
}

// Segments splits s into valid runs and unpaired surrogates.
func (s String) Segments() iter.Seq[Segment] {
	return s.View().Segments()
}

// MapValidSegments rewrites the valid runs of s with f.
func (s String) MapValidSegments(f func(string) string) String {
	return s.View().MapValidSegments(f)
}

// ToUnits returns a copy of the code units of s.
func (s String) ToUnits() []uint16 {
	return s.View().ToUnits()
}

// String implements fmt.Stringer with the escaped rendering.
func (s String) String() string {
	return s.ToStringEscaped()
}

// GoString implements fmt.GoStringer.
func (s String) GoString() string {
	return fmt.Sprintf("jsstr.String(%q)", s.ToStringEscaped())
}

// MarshalText implements encoding.TextMarshaler. Strings with unpaired
// surrogates cannot be marshaled.
func (s String) MarshalText() ([]byte, error) {
	text, err := s.ToGoString()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The previous content
// of s is released.
func (s *String) UnmarshalText(text []byte) error {
	next := FromString(string(text))
	s.Release()
	*s = next
	return nil
}
