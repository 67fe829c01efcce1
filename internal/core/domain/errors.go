package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrUnsupportedVersion is returned when the configuration declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported configuration version")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level")

	// ErrInvalidWellKnown is returned when a configured well-known string is empty or not ASCII.
	ErrInvalidWellKnown = zerr.New("invalid well-known string")

	// ErrDuplicateWellKnown is returned when a well-known string is configured twice.
	ErrDuplicateWellKnown = zerr.New("duplicate well-known string")

	// ErrInvalidWorkers is returned when the batch worker count is negative.
	ErrInvalidWorkers = zerr.New("batch workers must not be negative")

	// ErrUnsupportedEncoding is returned when an input encoding is not supported.
	ErrUnsupportedEncoding = zerr.New("unsupported input encoding")

	// ErrNoInputs is returned when a batch run is started without input patterns.
	ErrNoInputs = zerr.New("no inputs specified")

	// ErrInputNotFound is returned when an input pattern matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInputReadFailed is returned when an input file cannot be read or decoded.
	ErrInputReadFailed = zerr.New("failed to read input")

	// ErrOddUTF16Input is returned when a UTF-16 input does not hold a whole number of code units.
	ErrOddUTF16Input = zerr.New("odd number of bytes in UTF-16 input")

	// ErrInvalidEscape is returned when a command-line argument contains a malformed \u escape.
	ErrInvalidEscape = zerr.New("invalid unicode escape")

	// ErrStoreCreateFailed is returned when the report store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create report store directory")

	// ErrStoreReadFailed is returned when a stored report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read report")

	// ErrStoreUnmarshalFailed is returned when a stored report cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal report")

	// ErrStoreMarshalFailed is returned when a report cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal report")

	// ErrStoreWriteFailed is returned when a report cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write report")

	// ErrBatchFailed is returned when at least one input of a batch run failed.
	ErrBatchFailed = zerr.New("batch analysis failed")
)
