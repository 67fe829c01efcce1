package config

// Configfile represents the structure of the jsstring.yaml configuration file.
type Configfile struct {
	Version   string       `yaml:"version"`
	Log       LogDTO       `yaml:"log"`
	WellKnown []string     `yaml:"wellKnown"`
	Batch     BatchDTO     `yaml:"batch"`
	Telemetry TelemetryDTO `yaml:"telemetry"`
}

// LogDTO represents the log section.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// BatchDTO represents the batch section. A nil Cache keeps the default store
// path, while an explicit empty string disables caching.
type BatchDTO struct {
	Workers  int      `yaml:"workers"`
	Encoding string   `yaml:"encoding"`
	Cache    *string  `yaml:"cache"`
	Ignore   []string `yaml:"ignore"`
}

// TelemetryDTO represents the telemetry section.
type TelemetryDTO struct {
	Enabled bool `yaml:"enabled"`
}

var knownKeys = map[string]bool{
	"version":   true,
	"log":       true,
	"wellKnown": true,
	"batch":     true,
	"telemetry": true,
}
