// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jsstring/internal/adapters/cas"
	_ "go.trai.ch/jsstring/internal/adapters/config"
	_ "go.trai.ch/jsstring/internal/adapters/fs"
	_ "go.trai.ch/jsstring/internal/adapters/logger"
	_ "go.trai.ch/jsstring/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/jsstring/internal/app"
	_ "go.trai.ch/jsstring/internal/engine/batch"
)
