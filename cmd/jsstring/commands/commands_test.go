package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsstring/cmd/jsstring/commands"
	"go.trai.ch/jsstring/internal/adapters/telemetry"
	"go.trai.ch/jsstring/internal/app"
	"go.trai.ch/jsstring/internal/build"
	"go.trai.ch/jsstring/internal/core/domain"
)

type mockApp struct {
	configured   *app.ConfigureOptions
	configureErr error

	inspectFunc func(arg string) (*app.Inspection, error)
	numberFunc  func(arg string) (string, error)
	concatFunc  func(args []string) (*app.Inspection, error)
	indexFunc   func(haystack, needle string, from int) (int, bool, error)
	trimFunc    func(arg string, mode app.TrimMode) (string, error)
	wellKnown   []app.WellKnownEntry
	batchFunc   func(ctx context.Context, inputs []string, opts app.BatchOptions) (*app.BatchResult, error)
}

func (m *mockApp) Configure(opts app.ConfigureOptions) error {
	m.configured = &opts
	return m.configureErr
}

func (m *mockApp) Inspect(arg string) (*app.Inspection, error) {
	return m.inspectFunc(arg)
}

func (m *mockApp) ToNumber(arg string) (string, error) {
	return m.numberFunc(arg)
}

func (m *mockApp) Concat(args []string) (*app.Inspection, error) {
	return m.concatFunc(args)
}

func (m *mockApp) IndexOf(haystack, needle string, from int) (int, bool, error) {
	return m.indexFunc(haystack, needle, from)
}

func (m *mockApp) Trim(arg string, mode app.TrimMode) (string, error) {
	return m.trimFunc(arg, mode)
}

func (m *mockApp) WellKnown() []app.WellKnownEntry {
	return m.wellKnown
}

func (m *mockApp) Batch(ctx context.Context, inputs []string, opts app.BatchOptions) (*app.BatchResult, error) {
	return m.batchFunc(ctx, inputs, opts)
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func sampleInspection() *app.Inspection {
	return &app.Inspection{
		LineReport: domain.LineReport{
			Length:     4,
			ASCII:      true,
			Hash:       "00000000deadbeef",
			CodePoints: 4,
			Number:     "42",
			Trimmed:    "42",
			Escaped:    " 42 ",
		},
		Points: []string{"U+0020", "U+0034", "U+0032", "U+0020"},
	}
}

func TestCommands_Configure(t *testing.T) {
	t.Run("passes global flags", func(t *testing.T) {
		m := &mockApp{numberFunc: func(string) (string, error) { return "1", nil }}

		_, err := execute(t, m, "number", "1", "--config", "custom.yaml", "--escapes")
		require.NoError(t, err)
		require.NotNil(t, m.configured)
		assert.Equal(t, app.ConfigureOptions{Path: "custom.yaml", Escapes: true}, *m.configured)
	})

	t.Run("configuration error stops the command", func(t *testing.T) {
		m := &mockApp{
			configureErr: domain.ErrConfigParseFailed,
			numberFunc: func(string) (string, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, m, "number", "1")
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})
}

func TestCommands_Inspect(t *testing.T) {
	m := &mockApp{
		inspectFunc: func(arg string) (*app.Inspection, error) {
			assert.Equal(t, " 42 ", arg)
			return sampleInspection(), nil
		},
	}

	out, err := execute(t, m, "inspect", " 42 ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "inspect_text", []byte(out))
}

func TestCommands_Inspect_JSON(t *testing.T) {
	m := &mockApp{
		inspectFunc: func(string) (*app.Inspection, error) {
			return sampleInspection(), nil
		},
	}

	out, err := execute(t, m, "inspect", " 42 ", "--json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 4, decoded["length"], 0)
	assert.Equal(t, "42", decoded["number"])
	assert.Equal(t, " 42 ", decoded["escaped"])
	assert.Len(t, decoded["points"], 4)
}

func TestCommands_Inspect_Error(t *testing.T) {
	m := &mockApp{
		inspectFunc: func(string) (*app.Inspection, error) {
			return nil, domain.ErrInvalidEscape
		},
	}

	_, err := execute(t, m, "inspect", `\u12`)
	require.ErrorIs(t, err, domain.ErrInvalidEscape)
}

func TestCommands_Number(t *testing.T) {
	m := &mockApp{numberFunc: func(string) (string, error) { return "31", nil }}

	out, err := execute(t, m, "number", "0x1F")
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)

	out, err = execute(t, m, "number", "0x1F", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"31"}`, out)
}

func TestCommands_Concat(t *testing.T) {
	var got []string
	m := &mockApp{
		concatFunc: func(args []string) (*app.Inspection, error) {
			got = args
			return sampleInspection(), nil
		},
	}

	out, err := execute(t, m, "concat", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Contains(t, out, "points")

	_, err = execute(t, m, "concat")
	require.Error(t, err)
}

func TestCommands_Index(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		m := &mockApp{
			indexFunc: func(haystack, needle string, from int) (int, bool, error) {
				assert.Equal(t, "hello", haystack)
				assert.Equal(t, "l", needle)
				assert.Equal(t, 3, from)
				return 3, true, nil
			},
		}

		out, err := execute(t, m, "index", "hello", "l", "--from", "3")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)
	})

	t.Run("not found", func(t *testing.T) {
		m := &mockApp{
			indexFunc: func(string, string, int) (int, bool, error) {
				return 0, false, nil
			},
		}

		out, err := execute(t, m, "index", "hello", "z")
		require.NoError(t, err)
		assert.Equal(t, "-1\n", out)

		out, err = execute(t, m, "index", "hello", "z", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"found":false,"position":-1}`, out)
	})
}

func TestCommands_Trim(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  app.TrimMode
	}{
		{"both", nil, app.TrimBoth},
		{"start", []string{"--start"}, app.TrimStart},
		{"end", []string{"--end"}, app.TrimEnd},
		{"start and end", []string{"--start", "--end"}, app.TrimBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode app.TrimMode = -1
			m := &mockApp{
				trimFunc: func(_ string, got app.TrimMode) (string, error) {
					mode = got
					return "x", nil
				},
			}

			out, err := execute(t, m, append([]string{"trim", " x "}, tt.flags...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, "x\n", out)
		})
	}
}

func TestCommands_WellKnown(t *testing.T) {
	m := &mockApp{
		wellKnown: []app.WellKnownEntry{
			{Index: 0, Text: ""},
			{Index: 1, Text: "length"},
			{Index: 2, Text: "prototype"},
		},
	}

	out, err := execute(t, m, "wellknown")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "wellknown_text", []byte(out))
}

func sampleBatch() *app.BatchResult {
	return &app.BatchResult{
		Files: []domain.FileReport{
			{Path: "a.txt", Lines: make([]domain.LineReport, 2)},
			{Path: "b.txt", Lines: make([]domain.LineReport, 1)},
		},
		Statuses: map[string]domain.FileStatus{
			"a.txt": domain.FileStatusAnalyzed,
			"b.txt": domain.FileStatusCached,
			"c.txt": domain.FileStatusFailed,
		},
		Spans: []telemetry.SpanSummary{
			{Name: "a.txt", Duration: 1500 * time.Microsecond},
			{Name: "batch", Duration: 2 * time.Millisecond},
		},
	}
}

func TestCommands_Batch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BatchOptions
		var inputs []string
		m := &mockApp{
			batchFunc: func(_ context.Context, in []string, opts app.BatchOptions) (*app.BatchResult, error) {
				inputs = in
				captured = opts
				return &app.BatchResult{}, nil
			},
		}

		_, err := execute(t, m, "batch", "src", "docs/*.txt", "--no-cache", "-w", "3", "--encoding", "utf-16be")
		require.NoError(t, err)
		assert.Equal(t, []string{"src", "docs/*.txt"}, inputs)
		assert.Equal(t, app.BatchOptions{NoCache: true, Workers: 3, Encoding: "utf-16be"}, captured)
	})

	t.Run("prints results and returns the failure", func(t *testing.T) {
		m := &mockApp{
			batchFunc: func(context.Context, []string, app.BatchOptions) (*app.BatchResult, error) {
				return sampleBatch(), errors.Join(domain.ErrBatchFailed, errors.New("c.txt: gone"))
			},
		}

		out, err := execute(t, m, "batch", ".")
		require.ErrorIs(t, err, domain.ErrBatchFailed)

		g := goldie.New(t)
		g.Assert(t, "batch_text", []byte(out))
	})

	t.Run("json", func(t *testing.T) {
		m := &mockApp{
			batchFunc: func(context.Context, []string, app.BatchOptions) (*app.BatchResult, error) {
				return sampleBatch(), nil
			},
		}

		out, err := execute(t, m, "batch", ".", "--json")
		require.NoError(t, err)

		var decoded app.BatchResult
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Len(t, decoded.Files, 2)
		assert.Equal(t, domain.FileStatusCached, decoded.Statuses["b.txt"])
		assert.Len(t, decoded.Spans, 2)
	})

	t.Run("shows usage when no inputs provided", func(t *testing.T) {
		m := &mockApp{
			batchFunc: func(context.Context, []string, app.BatchOptions) (*app.BatchResult, error) {
				panic("should not be called")
			},
		}

		out, err := execute(t, m, "batch")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	m := &mockApp{}

	out, err := execute(t, m, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Nil(t, m.configured)
}
