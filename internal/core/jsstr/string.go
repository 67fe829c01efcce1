package jsstr

import "iter"

// String is an immutable JavaScript string value with UTF-16 semantics.
//
// A String either owns one reference to a heap block or names an entry of
// the well-known table. Copying a String value does not take a reference:
// use Clone for a second owner and Release when an owner is done. Released
// strings must not be used again.
//
// The reference count is not synchronized. A String and its clones belong
// to one goroutine at a time, the same contract as strings.Builder.
//
// The zero String is the empty string.
type String struct {
	r ref
}

// Empty returns the canonical empty string.
func Empty() String {
	return String{}
}

// Str returns the stored content.
func (s String) Str() Str {
	return s.r.resolve()
}

// View returns a borrowed view that is valid until s is released.
func (s String) View() View {
	return s.r.resolve().View()
}

// Len returns the number of UTF-16 code units.
func (s String) Len() int {
	return s.r.resolve().Len()
}

// IsEmpty reports whether s holds no code units.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// IsASCII reports whether s is stored one byte per code unit.
func (s String) IsASCII() bool {
	return s.r.resolve().IsASCII()
}

// IsStatic reports whether s is an entry of the well-known table.
func (s String) IsStatic() bool {
	return s.r.isStatic()
}

// RefCount returns the reference count of a heap string. Interned strings
// are not counted.
func (s String) RefCount() (uint, bool) {
	if s.r.isStatic() {
		return 0, false
	}
	return s.r.block.refcount, true
}

// Clone returns a second owner of the same content.
func (s String) Clone() String {
	if b := s.r.block; b != nil {
		b.retain()
	}
	return s
}

// Release drops the reference held by s and resets s to the empty string.
func (s *String) Release() {
	b := s.r.block
	s.r = ref{}
	if b != nil {
		b.release()
	}
}

// SameRef reports whether a and b share the same block or table entry.
func SameRef(a, b String) bool {
	return a.r == b.r
}

// Get returns the code unit at i.
func (s String) Get(i int) (uint16, bool) {
	return s.r.resolve().Get(i)
}

// At returns the code unit at i and panics when i is out of range.
func (s String) At(i int) uint16 {
	u, ok := s.Get(i)
	if !ok {
		fail(ErrIndexOutOfRange, "index", i)
	}
	return u
}

// Sub returns a view of the units in [start, end).
func (s String) Sub(start, end int) (View, bool) {
	return s.r.resolve().Sub(start, end)
}

// Units returns the code units in order.
func (s String) Units() iter.Seq[uint16] {
	return s.View().Units()
}

// CodePoints returns the decoded code points in order.
func (s String) CodePoints() iter.Seq[CodePoint] {
	return s.View().CodePoints()
}

// Trace reports inner references to a garbage collector. Strings hold none.
func (s String) Trace(func(any)) {}
