package jsstr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsstring/internal/core/jsstr"
)

func TestFromString_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		ascii bool
	}{
		{"Empty", "", true},
		{"ASCII", "hello world", true},
		{"Latin1", "déjà vu", false},
		{"CJK", "日本語のテキスト", false},
		{"Astral", "emoji 😀 and 𝄞", false},
		{"MixedWithControl", "tab\there\x00nul", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := jsstr.FromString(tt.text)
			defer s.Release()

			got, err := s.ToGoString()
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
			assert.Equal(t, tt.ascii, s.IsASCII())
			assert.Equal(t, len(units(tt.text)), s.Len())
			assert.Equal(t, units(tt.text), s.ToUnits())
		})
	}
}

func TestFromUnits_RoundTripWithSurrogates(t *testing.T) {
	in := units("a", 0xD800, 'b', 0xDC00)
	s := jsstr.FromUnits(in)
	defer s.Release()

	assert.Equal(t, in, s.ToUnits())
	assert.False(t, s.IsASCII())
	assert.Equal(t, 4, s.Len())
}

func TestEmpty_IsCanonical(t *testing.T) {
	before := jsstr.ReadHeapStats()

	a := jsstr.FromString("")
	b := jsstr.FromUnits(nil)
	c := jsstr.ConcatViews(jsstr.ViewOf(""), jsstr.ViewOfUnits([]uint16{}))
	var zero jsstr.String

	for _, s := range []jsstr.String{a, b, c, zero, jsstr.Empty()} {
		assert.True(t, s.IsEmpty())
		assert.True(t, s.IsASCII())
		assert.True(t, s.IsStatic())
		assert.True(t, jsstr.SameRef(s, zero))
	}
	assert.Equal(t, before, jsstr.ReadHeapStats())
}

func TestString_RefCount(t *testing.T) {
	s := jsstr.FromString("not a well-known string")
	defer s.Release()

	n, ok := s.RefCount()
	require.True(t, ok)
	assert.Equal(t, uint(1), n)

	clones := make([]jsstr.String, 5)
	for i := range clones {
		clones[i] = s.Clone()
		n, _ = s.RefCount()
		assert.Equal(t, uint(i+2), n)
	}
	for i := range clones {
		clones[i].Release()
		assert.True(t, clones[i].IsEmpty(), "release resets the receiver")
	}

	n, _ = s.RefCount()
	assert.Equal(t, uint(1), n)
}

func TestString_StaticRefCount(t *testing.T) {
	s := jsstr.FromString("length")
	assert.True(t, s.IsStatic())

	_, ok := s.RefCount()
	assert.False(t, ok)

	c := s.Clone()
	assert.True(t, jsstr.SameRef(s, c))
	c.Release()
	s.Release()

	again := jsstr.FromString("length")
	assert.True(t, again.EqualString("length"))
}

func TestString_ReleaseFreesBlock(t *testing.T) {
	before := jsstr.ReadHeapStats()

	s := jsstr.FromString("a fresh heap string")
	stale := s
	block := jsstr.BlockOf(s)
	require.NotNil(t, block)

	during := jsstr.ReadHeapStats()
	assert.Equal(t, before.Blocks+1, during.Blocks)
	assert.Equal(t, before.Bytes+int64(jsstr.BlockHeaderSize+s.Len()), during.Bytes)

	s.Release()
	assert.Equal(t, before, jsstr.ReadHeapStats())

	fresh := jsstr.FromString("a fresh heap string")
	defer fresh.Release()
	assert.NotSame(t, block, jsstr.BlockOf(fresh))

	requirePanicsWith(t, jsstr.ErrUseAfterRelease, func() { _ = stale.Len() })
	requirePanicsWith(t, jsstr.ErrUseAfterRelease, func() { _ = stale.Clone() })
	requirePanicsWith(t, jsstr.ErrUseAfterRelease, func() { stale.Release() })
}

func TestString_WideAccounting(t *testing.T) {
	before := jsstr.ReadHeapStats()

	s := jsstr.FromString("wide ☃")
	during := jsstr.ReadHeapStats()
	assert.Equal(t, before.Bytes+int64(jsstr.BlockHeaderSize+2*s.Len()), during.Bytes)

	s.Release()
	assert.Equal(t, before, jsstr.ReadHeapStats())
}

func TestString_RefcountOverflow(t *testing.T) {
	s := jsstr.FromString("overflowing counter")
	jsstr.ForceRefcount(s, math.MaxUint)

	requirePanicsWith(t, jsstr.ErrRefcountOverflow, func() { _ = s.Clone() })

	jsstr.ForceRefcount(s, 1)
	s.Release()
}

func TestLayoutSize_Overflow(t *testing.T) {
	assert.Equal(t, jsstr.BlockHeaderSize+10, jsstr.LayoutSize(10, true))
	assert.Equal(t, jsstr.BlockHeaderSize+20, jsstr.LayoutSize(10, false))

	requirePanicsWith(t, jsstr.ErrAllocationOverflow, func() {
		jsstr.LayoutSize(math.MaxInt/2, false)
	})
	requirePanicsWith(t, jsstr.ErrAllocationOverflow, func() {
		jsstr.LayoutSize(-1, true)
	})
}

func TestString_UnknownStaticIndex(t *testing.T) {
	s := jsstr.StaticString(math.MaxUint32)
	requirePanicsWith(t, jsstr.ErrUnknownStaticIndex, func() { _ = s.Len() })
}

func TestString_Accessors(t *testing.T) {
	s := jsstr.FromString("aé😀")
	defer s.Release()

	require.Equal(t, 4, s.Len())

	u, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint16(0xE9), u)

	_, ok = s.Get(4)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, uint16(0xD83D), s.At(2))
	requirePanicsWith(t, jsstr.ErrIndexOutOfRange, func() { s.At(4) })

	var collected []uint16
	for u := range s.Units() {
		collected = append(collected, u)
	}
	assert.Equal(t, s.ToUnits(), collected)
}

func TestString_SubReclassifies(t *testing.T) {
	s := jsstr.FromString("ab€cd")
	defer s.Release()

	v, ok := s.Sub(3, 5)
	require.True(t, ok)
	assert.True(t, v.IsASCII())
	assert.Equal(t, "cd", v.String())

	v, ok = s.Sub(1, 3)
	require.True(t, ok)
	assert.False(t, v.IsASCII())
	assert.Equal(t, "b€", v.String())

	v, ok = s.Sub(0, 2)
	require.True(t, ok)
	sub := jsstr.FromView(v)
	defer sub.Release()
	assert.True(t, sub.IsASCII())
	assert.True(t, sub.EqualString("ab"))

	_, ok = s.Sub(2, 6)
	assert.False(t, ok)
	_, ok = s.Sub(3, 2)
	assert.False(t, ok)
}

func TestString_SubOfInternedFoldsBack(t *testing.T) {
	s := jsstr.FromString("x€length")
	defer s.Release()

	v, ok := s.Sub(2, 8)
	require.True(t, ok)
	require.True(t, v.IsASCII())

	folded := jsstr.FromView(v)
	assert.True(t, folded.IsStatic())
	assert.True(t, folded.EqualString("length"))
}

func TestString_Trace(t *testing.T) {
	s := jsstr.FromString("no inner references")
	defer s.Release()

	called := false
	s.Trace(func(any) { called = true })
	assert.False(t, called)
}

func TestSeal_LengthMismatchPanics(t *testing.T) {
	before := jsstr.ReadHeapStats()

	requirePanicsWith(t, jsstr.ErrBlockLengthMismatch, func() { jsstr.SealUnfilled(3, true) })
	requirePanicsWith(t, jsstr.ErrBlockLengthMismatch, func() { jsstr.SealUnfilled(2, false) })

	assert.Equal(t, before, jsstr.ReadHeapStats())
}

func TestFromString_EmptyUnits(t *testing.T) {
	s := jsstr.FromString("")
	defer s.Release()

	assert.Equal(t, []uint16{}, s.ToUnits())
	assert.Equal(t, units(""), s.ToUnits())
}
