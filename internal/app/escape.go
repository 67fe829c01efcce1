package app

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/zerr"
)

// Unescape converts arg to UTF-16 code units, expanding \uXXXX escapes to
// the unit they name and \\ to a single backslash. A lone surrogate can be
// written this way. Other backslashes are kept as they are.
func Unescape(arg string) ([]uint16, error) {
	units := make([]uint16, 0, len(arg))
	for i := 0; i < len(arg); {
		if arg[i] == '\\' && i+1 < len(arg) {
			switch arg[i+1] {
			case '\\':
				units = append(units, '\\')
				i += 2
				continue
			case 'u':
				if i+6 > len(arg) {
					return nil, invalidEscape(arg, i)
				}
				v, err := strconv.ParseUint(arg[i+2:i+6], 16, 16)
				if err != nil {
					return nil, invalidEscape(arg, i)
				}
				units = append(units, uint16(v))
				i += 6
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(arg[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units, nil
}

func invalidEscape(arg string, offset int) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidEscape, "cannot parse argument"), "argument", arg)
	return zerr.With(err, "offset", offset)
}
