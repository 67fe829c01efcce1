// Package app implements the application layer for jsstring.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/jsstring/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/jsstr"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/jsstring/internal/engine/batch"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	resolver     ports.InputResolver
	engine       *batch.Engine

	config   *domain.Config
	escapes  bool
	provider *telemetry.Provider
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	resolver ports.InputResolver,
	engine *batch.Engine,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		resolver:     resolver,
		engine:       engine,
		config:       domain.DefaultConfig(),
	}
}

// ConfigureOptions configuration for the Configure method.
type ConfigureOptions struct {
	// Path is the configuration file. Empty selects domain.DefaultConfigFile,
	// which may be absent.
	Path string
	// Escapes enables \uXXXX escapes in string arguments.
	Escapes bool
}

// Configure loads the configuration and applies it to the process. It must
// run before any string is built, since it installs the configured
// well-known strings.
func (a *App) Configure(opts ConfigureOptions) error {
	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, domain.ErrConfigNotFound):
		a.logger.Debug("no configuration file found, using defaults")
		cfg = domain.DefaultConfig()
	default:
		return zerr.Wrap(err, "failed to load configuration")
	}

	a.config = cfg
	a.escapes = opts.Escapes
	a.logger.SetLevel(cfg.Log.Level)
	a.logger.SetJSON(cfg.Log.JSON)

	if err := jsstr.InstallWellKnown(cfg.WellKnown...); err != nil {
		return zerr.Wrap(err, "failed to install well-known strings")
	}

	if cfg.Telemetry.Enabled && a.provider == nil {
		a.provider = telemetry.NewProvider()
	}
	return nil
}

// Config returns the active configuration.
func (a *App) Config() *domain.Config {
	return a.config
}

// Close flushes telemetry, if it was enabled.
func (a *App) Close(ctx context.Context) error {
	if a.provider == nil {
		return nil
	}
	return a.provider.Shutdown(ctx)
}

// build constructs a String from a command-line argument.
func (a *App) build(arg string) (jsstr.String, error) {
	if !a.escapes {
		return jsstr.FromString(arg), nil
	}
	units, err := Unescape(arg)
	if err != nil {
		return jsstr.String{}, err
	}
	return jsstr.FromUnits(units), nil
}

// Inspection describes one string given on the command line.
type Inspection struct {
	domain.LineReport
	Points []string `json:"points"`
}

// Inspect reports the properties of arg.
func (a *App) Inspect(arg string) (*Inspection, error) {
	s, err := a.build(arg)
	if err != nil {
		return nil, err
	}
	defer s.Release()

	return inspect(s), nil
}

func inspect(s jsstr.String) *Inspection {
	points := make([]string, 0, s.Len())
	for c := range s.CodePoints() {
		points = append(points, fmt.Sprintf("U+%04X", c.Uint32()))
	}
	return &Inspection{
		LineReport: batch.Describe(0, s),
		Points:     points,
	}
}

// ToNumber converts arg with the JavaScript ToNumber rules and formats the
// result the way Number.prototype.toString does.
func (a *App) ToNumber(arg string) (string, error) {
	s, err := a.build(arg)
	if err != nil {
		return "", err
	}
	defer s.Release()

	return batch.FormatNumber(s.ToNumber()), nil
}

// Concat joins args into one string and reports its properties.
func (a *App) Concat(args []string) (*Inspection, error) {
	parts := make([]jsstr.String, 0, len(args))
	defer func() {
		for i := range parts {
			parts[i].Release()
		}
	}()

	for _, arg := range args {
		s, err := a.build(arg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}

	joined := jsstr.ConcatStrings(parts...)
	defer joined.Release()

	return inspect(joined), nil
}

// IndexOf returns the first position of needle in haystack at or after
// from, in UTF-16 code units.
func (a *App) IndexOf(haystack, needle string, from int) (int, bool, error) {
	h, err := a.build(haystack)
	if err != nil {
		return 0, false, err
	}
	defer h.Release()

	n, err := a.build(needle)
	if err != nil {
		return 0, false, err
	}
	defer n.Release()

	pos, ok := h.IndexOf(n.View(), from)
	return pos, ok, nil
}

// TrimMode selects which ends Trim strips.
type TrimMode int

const (
	// TrimBoth strips both ends.
	TrimBoth TrimMode = iota
	// TrimStart strips leading whitespace.
	TrimStart
	// TrimEnd strips trailing whitespace.
	TrimEnd
)

// Trim strips ECMAScript whitespace and line terminators from arg. Unpaired
// surrogates in the result are rendered as \uXXXX.
func (a *App) Trim(arg string, mode TrimMode) (string, error) {
	s, err := a.build(arg)
	if err != nil {
		return "", err
	}
	defer s.Release()

	var v jsstr.View
	switch mode {
	case TrimStart:
		v = s.TrimStart()
	case TrimEnd:
		v = s.TrimEnd()
	default:
		v = s.Trim()
	}
	return v.ToStringEscaped(), nil
}

// WellKnownEntry is one entry of the well-known string table.
type WellKnownEntry struct {
	Index uint32 `json:"index"`
	Text  string `json:"text"`
}

// WellKnown lists the well-known string table in index order.
func (a *App) WellKnown() []WellKnownEntry {
	table := jsstr.WellKnown()
	entries := make([]WellKnownEntry, 0, table.Len())
	for i, text := range table.All() {
		entries = append(entries, WellKnownEntry{Index: i, Text: text})
	}
	return entries
}

// BatchOptions configuration for the Batch method. Zero values fall back to
// the configuration.
type BatchOptions struct {
	NoCache  bool
	Workers  int
	Encoding string
}

// BatchResult is the outcome of a batch run.
type BatchResult struct {
	Files    []domain.FileReport          `json:"files"`
	Statuses map[string]domain.FileStatus `json:"statuses"`
	Spans    []telemetry.SpanSummary      `json:"spans,omitempty"`
}

// Batch analyzes every line of the files matched by inputs.
// Reports of the files that succeeded are returned even when others failed.
func (a *App) Batch(ctx context.Context, inputs []string, opts BatchOptions) (*BatchResult, error) {
	cfg := a.config.Batch

	enc := cfg.Encoding
	if opts.Encoding != "" {
		parsed, ok := domain.ParseEncoding(opts.Encoding)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedEncoding, "invalid batch options"), "encoding", opts.Encoding)
		}
		enc = parsed
	}

	workers := cfg.Workers
	if opts.Workers != 0 {
		if opts.Workers < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidWorkers, "invalid batch options"), "workers", opts.Workers)
		}
		workers = opts.Workers
	}

	files, err := a.resolver.ResolveInputs(inputs, cfg.Ignore)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve inputs")
	}
	a.logger.Debug(fmt.Sprintf("analyzing %d files", len(files)))

	reports, runErr := a.engine.RunFiles(ctx, files, batch.Options{
		Workers:  workers,
		Encoding: enc,
		Cache:    cfg.Cache,
		NoCache:  opts.NoCache,
	})

	result := &BatchResult{
		Files:    reports,
		Statuses: a.engine.Statuses(),
	}
	if a.provider != nil {
		result.Spans = a.provider.Summaries()
	}
	return result, runErr
}
