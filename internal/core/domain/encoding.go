package domain

import "strings"

// Encoding names the byte encoding of an input file.
type Encoding string

const (
	// EncodingUTF8 is UTF-8, with an optional byte order mark.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingUTF16LE is little-endian UTF-16, with an optional byte order mark.
	EncodingUTF16LE Encoding = "utf-16le"
	// EncodingUTF16BE is big-endian UTF-16, with an optional byte order mark.
	EncodingUTF16BE Encoding = "utf-16be"
)

// ParseEncoding normalizes an encoding label. The empty string selects UTF-8.
func ParseEncoding(s string) (Encoding, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, true
	case "utf-16le", "utf16le", "utf-16", "utf16":
		return EncodingUTF16LE, true
	case "utf-16be", "utf16be":
		return EncodingUTF16BE, true
	default:
		return "", false
	}
}

// IsUTF16 reports whether the encoding stores 16-bit code units.
func (e Encoding) IsUTF16() bool {
	return e == EncodingUTF16LE || e == EncodingUTF16BE
}
