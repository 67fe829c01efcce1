package jsstr_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsstring/internal/core/jsstr"
)

func TestViewOf_Classification(t *testing.T) {
	tests := []struct {
		name  string
		view  jsstr.View
		ascii bool
		len   int
	}{
		{"EmptyText", jsstr.ViewOf(""), true, 0},
		{"ASCIIText", jsstr.ViewOf("abc"), true, 3},
		{"NarrowText", jsstr.ViewOf("ñandú"), false, 5},
		{"AstralText", jsstr.ViewOf("a😀"), false, 3},
		{"InvalidUTF8", jsstr.ViewOf("a\xffb"), false, 3},
		{"ASCIIUnits", jsstr.ViewOfUnits([]uint16{'a', 'b'}), true, 2},
		{"WideUnits", jsstr.ViewOfUnits([]uint16{'a', 0x3042}), false, 2},
		{"LoneSurrogate", jsstr.ViewOfUnits([]uint16{0xDFFF}), false, 1},
		{"Zero", jsstr.View{}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ascii, tt.view.IsASCII())
			assert.Equal(t, tt.len, tt.view.Len())
			assert.Equal(t, tt.len == 0, tt.view.IsEmpty())
			assert.Len(t, slices.Collect(tt.view.Units()), tt.len)
		})
	}
}

func TestView_UnitsOfNarrowText(t *testing.T) {
	v := jsstr.ViewOf("é😀\xff")
	assert.Equal(t, []uint16{0xE9, 0xD83D, 0xDE00, 0xFFFD}, slices.Collect(v.Units()))
	assert.Equal(t, []uint16{0xE9, 0xD83D, 0xDE00, 0xFFFD}, v.ToUnits())
	assert.Equal(t, []uint16{1, 0xE9, 0xD83D, 0xDE00, 0xFFFD}, v.AppendUnits([]uint16{1}))
}

func TestView_UnitsStopsEarly(t *testing.T) {
	for _, v := range []jsstr.View{
		jsstr.ViewOf("abcdef"),
		jsstr.ViewOf("😀😀😀"),
		jsstr.ViewOfUnits(units("wide ☃ units")),
	} {
		count := 0
		for range v.Units() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	}
}

func TestView_GetOnNarrowText(t *testing.T) {
	v := jsstr.ViewOf("x😀y")

	u, ok := v.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint16(0xDE00), u)
	assert.Equal(t, uint16('y'), v.At(3))

	_, ok = v.Get(4)
	assert.False(t, ok)
}

func TestView_SubOfNarrowTextSplitsPair(t *testing.T) {
	v := jsstr.ViewOf("a😀")

	sub, ok := v.Sub(1, 2)
	require.True(t, ok)
	assert.Equal(t, []uint16{0xD83D}, sub.ToUnits())
	assert.Equal(t, `\uD83D`, sub.String())
}

func TestUncheckedViews_VerifyClaims(t *testing.T) {
	requirePanicsWith(t, jsstr.ErrInvalidView, func() { jsstr.ASCIIView("é") })
	requirePanicsWith(t, jsstr.ErrInvalidView, func() { jsstr.ASCIIUnitsView([]uint16{0x100}) })
	requirePanicsWith(t, jsstr.ErrInvalidView, func() { jsstr.NarrowView("abc", 3) })
	requirePanicsWith(t, jsstr.ErrInvalidView, func() { jsstr.NarrowView("é", 2) })
	requirePanicsWith(t, jsstr.ErrInvalidView, func() { jsstr.WideView([]uint16{'a'}) })

	assert.NotPanics(t, func() {
		jsstr.ASCIIView("abc")
		jsstr.ASCIIUnitsView([]uint16{'a'})
		jsstr.NarrowView("é", 1)
		jsstr.WideView([]uint16{0xE9})
	})
}
