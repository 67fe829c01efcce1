package jsstr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsstring/internal/core/jsstr"
)

func TestToNumber(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"   ", 0},
		{" \uFEFF\u3000", 0},
		{"0", 0},
		{"42", 42},
		{"  0x1F ", 31},
		{"0X1f", 31},
		{"0b101", 5},
		{"0B11", 3},
		{"0o17", 15},
		{"0O777", 511},
		{"0x", nan},
		{"0b", nan},
		{"0b2", nan},
		{"0o8", nan},
		{"0xG", nan},
		{"0x_1", nan},
		{"-0b11", nan},
		{"+0x10", nan},
		{"-0x1F", nan},
		{"Infinity", math.Inf(1)},
		{"+Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{" \n-Infinity\t", math.Inf(-1)},
		{"infinity", nan},
		{"inf", nan},
		{"Inf", nan},
		{"NaN", nan},
		{"nan", nan},
		{"abc", nan},
		{"1.5", 1.5},
		{"-1.5", -1.5},
		{"+.5", 0.5},
		{"5.", 5},
		{".", nan},
		{"+", nan},
		{"1e3", 1000},
		{"1E-3", 0.001},
		{"1e+3", 1000},
		{"1e", nan},
		{"1e+", nan},
		{"1_000", nan},
		{"0x1p3", nan},
		{"12abc", nan},
		{"1 2", nan},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"1e-400", 0},
		{"007", 7},
		{"  8  ", 8},
		{"\u0085 8", nan},
		{"0xFFFFFFFFFFFFFFFF", 18446744073709551615},
		{"0x10000000000000000", 18446744073709551616},
		{"0x1FFFFFFFFFFFFFFFF", 36893488147419103231},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := jsstr.ViewOf(tt.input).ToNumber()
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "want NaN, got %v", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToNumber_NegativeZero(t *testing.T) {
	got := jsstr.ViewOf("-0").ToNumber()
	assert.Equal(t, 0.0, got)
	assert.True(t, math.Signbit(got))
}

func TestToNumber_UnpairedSurrogateIsNaN(t *testing.T) {
	s := jsstr.FromUnits(units("12", 0xD800))
	defer s.Release()

	assert.True(t, math.IsNaN(s.ToNumber()))
}

func TestToNumber_WideWhitespace(t *testing.T) {
	s := jsstr.FromUnits(units("\u3000  12.5 "))
	defer s.Release()

	assert.Equal(t, 12.5, s.ToNumber())
}
