// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lookup/internal/adapters/config"
	_ "go.trai.ch/lookup/internal/adapters/logger"
	_ "go.trai.ch/lookup/internal/adapters/obs"
	_ "go.trai.ch/lookup/internal/adapters/shell"
	_ "go.trai.ch/lookup/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/lookup/internal/app"
)
