package fs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"unicode/utf16"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var _ ports.InputReader = (*Reader)(nil)

const (
	lineFeed       = 0x000A
	carriageReturn = 0x000D
	byteOrderMark  = 0xFEFF
)

// Reader reads input files as lines of UTF-16 code units.
//
// UTF-8 input goes through a BOM-aware decoder, so a UTF-16 byte order mark
// still switches the decoding and invalid bytes become U+FFFD. UTF-16 input
// is read unit by unit so that unpaired surrogates are preserved.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadLines decodes the file at path and splits it on line feeds.
// A carriage return before the line feed is dropped, and a trailing line
// feed does not start an empty line.
func (r *Reader) ReadLines(path string, enc domain.Encoding) ([]domain.Line, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, readFailed(err, path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var units []uint16
	switch enc {
	case domain.EncodingUTF8:
		units, err = readUTF8(f)
	case domain.EncodingUTF16LE:
		units, err = readUTF16(f, binary.LittleEndian)
	case domain.EncodingUTF16BE:
		units, err = readUTF16(f, binary.BigEndian)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedEncoding, "cannot read input"), "encoding", string(enc))
	}
	if errors.Is(err, domain.ErrOddUTF16Input) {
		return nil, errors.Join(zerr.With(err, "path", path), domain.ErrInputReadFailed)
	}
	if err != nil {
		return nil, readFailed(err, path)
	}

	return splitLines(units), nil
}

func readUTF8(src io.Reader) ([]uint16, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(src, decoder))
	if err != nil {
		return nil, err
	}

	units := make([]uint16, 0, len(data))
	for _, r := range bytes.Runes(data) {
		units = utf16.AppendRune(units, r)
	}
	return units, nil
}

func readUTF16(src io.Reader, order binary.ByteOrder) ([]uint16, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(data)%2 != 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrOddUTF16Input, "cannot decode input"), "size", len(data))
	}

	// A byte order mark overrides the configured order.
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			order, data = binary.LittleEndian, data[2:]
		case data[0] == 0xFE && data[1] == 0xFF:
			order, data = binary.BigEndian, data[2:]
		}
	}

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = order.Uint16(data[2*i:])
	}
	return units, nil
}

func splitLines(units []uint16) []domain.Line {
	var lines []domain.Line

	start := 0
	for i, u := range units {
		if u != lineFeed {
			continue
		}
		lines = append(lines, newLine(len(lines)+1, units[start:i]))
		start = i + 1
	}
	if start < len(units) {
		lines = append(lines, newLine(len(lines)+1, units[start:]))
	}

	return lines
}

func newLine(number int, units []uint16) domain.Line {
	if n := len(units); n > 0 && units[n-1] == carriageReturn {
		units = units[:n-1]
	}
	return domain.Line{Number: number, Units: units}
}

func readFailed(err error, path string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrInputReadFailed, "cannot read input"), "reason", err.Error()), "path", path)
}
