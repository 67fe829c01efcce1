package jsstr

import "go.trai.ch/zerr"

var (
	// ErrUnpairedSurrogate is returned when strict decoding meets a surrogate without a partner.
	ErrUnpairedSurrogate = zerr.New("unpaired surrogate")

	// ErrTableSealed is returned when well-known strings are installed after the table was read.
	ErrTableSealed = zerr.New("well-known string table is sealed")

	// ErrNonASCIIWellKnown is returned when a well-known entry contains non-ASCII text.
	ErrNonASCIIWellKnown = zerr.New("well-known string must be ascii")
)

// The errors below are panic values. They signal corrupted state and are never returned.
var (
	ErrAllocationOverflow  = zerr.New("detected overflow during string allocation")
	ErrRefcountOverflow    = zerr.New("string reference count overflow")
	ErrUseAfterRelease     = zerr.New("string used after its last reference was released")
	ErrIndexOutOfRange     = zerr.New("string index out of range")
	ErrUnknownStaticIndex  = zerr.New("unknown static string index")
	ErrInvalidView         = zerr.New("view content does not match its encoding")
	ErrBlockLengthMismatch = zerr.New("written string length does not match the allocated length")
)

// fail panics with err, annotated with one key/value pair. The panic value
// still matches err under errors.Is.
func fail(err error, key string, value any) {
	panic(zerr.With(zerr.Wrap(err, ""), key, value))
}
