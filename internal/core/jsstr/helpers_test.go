package jsstr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// units encodes text to UTF-16 and appends the given extra units.
func units(text string, extra ...uint16) []uint16 {
	out := []uint16{}
	for _, r := range text {
		if r >= 0x10000 {
			r -= 0x10000
			out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		out = append(out, uint16(r))
	}
	return append(out, extra...)
}
