package batch

import (
	"fmt"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/jsstr"
)

// Analyze builds a string from one line and reports its properties.
// The string is released before returning, so only plain values escape.
func Analyze(line domain.Line) domain.LineReport {
	s := jsstr.FromUnits(line.Units)
	defer s.Release()

	return Describe(line.Number, s)
}

// Describe reports the properties of s under the given line number.
// It does not take ownership of s.
func Describe(number int, s jsstr.String) domain.LineReport {
	var codePoints, unpaired int
	for c := range s.CodePoints() {
		codePoints++
		if c.IsUnpairedSurrogate() {
			unpaired++
		}
	}

	return domain.LineReport{
		Line:       number,
		Length:     s.Len(),
		ASCII:      s.IsASCII(),
		Static:     s.IsStatic(),
		Hash:       fmt.Sprintf("%016x", s.Hash()),
		CodePoints: codePoints,
		Unpaired:   unpaired,
		Number:     FormatNumber(s.ToNumber()),
		Trimmed:    s.Trim().ToStringEscaped(),
		Escaped:    s.ToStringEscaped(),
	}
}
