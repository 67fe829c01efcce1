package ports

import "go.trai.ch/jsstring/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at path.
	// A missing file is reported with domain.ErrConfigNotFound.
	Load(path string) (*domain.Config, error)
}
