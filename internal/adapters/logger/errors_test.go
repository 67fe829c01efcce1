package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsstring/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	sentinel := zerr.New("cannot decode string")

	tests := []struct {
		name     string
		err      error
		expected []logger.ErrorEntry
	}{
		{
			name:     "standard error",
			err:      errors.New("simple error"),
			expected: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			expected: []logger.ErrorEntry{
				{Message: "outer layer", Metadata: map[string]any{}},
				{Message: "middle layer", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on outer layer",
			err:  zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			expected: []logger.ErrorEntry{
				{Message: "base error", Metadata: map[string]any{"key1": "value1", "key2": 42}},
			},
		},
		{
			name: "empty layer merges into cause",
			err:  zerr.With(zerr.Wrap(sentinel, ""), "index", 2),
			expected: []logger.ErrorEntry{
				{Message: "cannot decode string", Metadata: map[string]any{"index": 2}},
			},
		},
		{
			name: "empty layer over standard error",
			err:  zerr.With(errors.New("plain"), "unit", "0xD800"),
			expected: []logger.ErrorEntry{
				{Message: "plain", Metadata: map[string]any{"unit": "0xD800"}},
			},
		},
		{
			name:     "nil",
			err:      nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"index": 7}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      index: 7",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
