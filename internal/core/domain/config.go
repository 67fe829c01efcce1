package domain

import "path/filepath"

const (
	// DefaultConfigFile is the configuration file looked up in the working directory.
	DefaultConfigFile = "jsstring.yaml"

	// ConfigVersion is the only supported configuration schema version.
	ConfigVersion = "1"

	// DirPerm is the permission used for directories created by the tool.
	DirPerm = 0o750

	// FilePerm is the permission used for files written by the tool.
	FilePerm = 0o644
)

// DefaultStorePath returns the default report cache directory, relative to the working directory.
func DefaultStorePath() string {
	return filepath.Join(".jsstring", "reports")
}

// Config is the validated application configuration.
type Config struct {
	Version   string
	Log       LogConfig
	WellKnown []string
	Batch     BatchConfig
	Telemetry TelemetryConfig
}

// LogConfig configures the logger.
type LogConfig struct {
	Level LogLevel
	JSON  bool
}

// BatchConfig configures batch analysis.
type BatchConfig struct {
	// Workers bounds the number of files analyzed in parallel. Zero means one per CPU.
	Workers  int
	Encoding Encoding
	// Cache is the report store directory. An empty value disables caching.
	Cache  string
	Ignore []string
}

// TelemetryConfig configures tracing.
type TelemetryConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Log: LogConfig{
			Level: LogLevelInfo,
		},
		Batch: BatchConfig{
			Encoding: EncodingUTF8,
			Cache:    DefaultStorePath(),
		},
	}
}
