// Package config provides the configuration loader for jsstring.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the configuration file at path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load configuration"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read configuration file"), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		parseErr := zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cannot load configuration"), "reason", err.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	l.warnUnknownKeys(path, data)
	l.Logger.Debug(fmt.Sprintf("loaded configuration from %s", path))

	cfg, err := toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) warnUnknownKeys(path string, data []byte) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		if !knownKeys[key] {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	for _, key := range keys {
		l.Logger.Warn(fmt.Sprintf("unknown key '%s' in %s is ignored", key, path))
	}
}

func toDomain(file *Configfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	switch file.Version {
	case "", domain.ConfigVersion:
	default:
		return nil, invalid(domain.ErrUnsupportedVersion, "version", file.Version)
	}

	level, ok := domain.ParseLogLevel(file.Log.Level)
	if !ok {
		return nil, invalid(domain.ErrInvalidLogLevel, "level", file.Log.Level)
	}
	cfg.Log = domain.LogConfig{Level: level, JSON: file.Log.JSON}

	wellKnown, err := validateWellKnown(file.WellKnown)
	if err != nil {
		return nil, err
	}
	cfg.WellKnown = wellKnown

	if file.Batch.Workers < 0 {
		return nil, invalid(domain.ErrInvalidWorkers, "workers", file.Batch.Workers)
	}
	cfg.Batch.Workers = file.Batch.Workers

	enc, ok := domain.ParseEncoding(file.Batch.Encoding)
	if !ok {
		return nil, invalid(domain.ErrUnsupportedEncoding, "encoding", file.Batch.Encoding)
	}
	cfg.Batch.Encoding = enc

	if file.Batch.Cache != nil {
		cfg.Batch.Cache = *file.Batch.Cache
	}
	cfg.Batch.Ignore = file.Batch.Ignore
	cfg.Telemetry.Enabled = file.Telemetry.Enabled

	return cfg, nil
}

func validateWellKnown(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		if entry == "" || !isASCII(entry) {
			err := invalid(domain.ErrInvalidWellKnown, "entry", entry)
			return nil, zerr.With(err, "index", i)
		}
		if seen[entry] {
			return nil, invalid(domain.ErrDuplicateWellKnown, "entry", entry)
		}
		seen[entry] = true
	}
	return slices.Clone(entries), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// invalid wraps a validation sentinel so that errors.Is keeps matching it.
func invalid(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, "invalid configuration"), key, value)
}
