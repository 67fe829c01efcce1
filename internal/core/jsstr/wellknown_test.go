package jsstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsstring/internal/core/jsstr"
)

func TestWellKnown_BuiltinEntries(t *testing.T) {
	table := jsstr.WellKnown()

	empty, ok := table.Lookup("")
	require.True(t, ok)
	idx, _ := jsstr.StaticIndex(empty)
	assert.Equal(t, uint32(0), idx)

	seen := make(map[string]bool)
	for i, text := range table.All() {
		assert.False(t, seen[text], "duplicate entry %q", text)
		seen[text] = true

		s, ok := table.Lookup(text)
		require.True(t, ok)
		got, _ := jsstr.StaticIndex(s)
		assert.Equal(t, i, got)
		assert.True(t, s.EqualString(text))
		assert.True(t, s.IsASCII())
	}
	assert.Equal(t, table.Len(), len(seen))

	_, ok = table.Lookup("definitely not interned")
	assert.False(t, ok)
}

func TestWellKnown_ConcatFoldsBack(t *testing.T) {
	before := jsstr.ReadHeapStats()

	s := jsstr.ConcatViews(jsstr.ViewOf("to"), jsstr.ViewOfUnits(units("Str")), jsstr.ViewOf("ing"))
	assert.True(t, s.IsStatic())
	assert.True(t, s.EqualString("toString"))
	assert.Equal(t, before, jsstr.ReadHeapStats())

	direct := jsstr.FromString("toString")
	assert.True(t, jsstr.SameRef(s, direct))

	miss := jsstr.Concat(jsstr.ViewOf("to"), jsstr.ViewOf("Strung"))
	defer miss.Release()
	assert.False(t, miss.IsStatic())
}

func TestConcat_Encoding(t *testing.T) {
	tests := []struct {
		name  string
		a, b  jsstr.View
		want  string
		ascii bool
	}{
		{"BothASCII", jsstr.ViewOf("foo"), jsstr.ViewOf("bar"), "foobar", true},
		{"ASCIIUnits", jsstr.ViewOfUnits(units("foo")), jsstr.ViewOf("bar"), "foobar", true},
		{"LeftWide", jsstr.ViewOf("fö"), jsstr.ViewOf("bar"), "föbar", false},
		{"RightWide", jsstr.ViewOf("foo"), jsstr.ViewOfUnits(units("bär")), "foobär", false},
		{"EmptyLeft", jsstr.View{}, jsstr.ViewOf("solo text"), "solo text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := jsstr.Concat(tt.a, tt.b)
			defer s.Release()

			got, err := s.ToGoString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ascii, s.IsASCII())
			assert.Equal(t, tt.a.Len()+tt.b.Len(), s.Len())
		})
	}
}

func TestConcatStrings(t *testing.T) {
	a := jsstr.FromString("left ")
	defer a.Release()
	b := jsstr.FromString("ünd ")
	defer b.Release()
	c := jsstr.FromString("right")
	defer c.Release()

	s := jsstr.ConcatStrings(a, b, c)
	defer s.Release()

	assert.True(t, s.EqualString("left ünd right"))
	n, _ := a.RefCount()
	assert.Equal(t, uint(1), n, "inputs keep their own references")
}

func TestInstallWellKnown(t *testing.T) {
	jsstr.ResetWellKnown()
	t.Cleanup(jsstr.ResetWellKnown)

	require.NoError(t, jsstr.InstallWellKnown("myCustomKey", "length", "myCustomKey"))

	s := jsstr.FromString("myCustomKey")
	assert.True(t, s.IsStatic())

	// The table is sealed now; entries already present are accepted.
	require.NoError(t, jsstr.InstallWellKnown("myCustomKey", "prototype"))

	err := jsstr.InstallWellKnown("lateKey")
	require.ErrorIs(t, err, jsstr.ErrTableSealed)

	late := jsstr.FromString("lateKey")
	defer late.Release()
	assert.False(t, late.IsStatic())
}

func TestInstallWellKnown_RejectsNonASCII(t *testing.T) {
	jsstr.ResetWellKnown()
	t.Cleanup(jsstr.ResetWellKnown)

	err := jsstr.InstallWellKnown("ok", "naïve")
	require.ErrorIs(t, err, jsstr.ErrNonASCIIWellKnown)
	assert.False(t, jsstr.WellKnown().Contains("ok"))
}
