// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dockq/internal/adapters/cache"
	_ "go.trai.ch/dockq/internal/adapters/chem"
	_ "go.trai.ch/dockq/internal/adapters/config"
	_ "go.trai.ch/dockq/internal/adapters/knowledge"
	_ "go.trai.ch/dockq/internal/adapters/logger"
	_ "go.trai.ch/dockq/internal/adapters/metrics"
	_ "go.trai.ch/dockq/internal/adapters/mockscore"
	_ "go.trai.ch/dockq/internal/adapters/shell"
	_ "go.trai.ch/dockq/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/dockq/internal/app"
	_ "go.trai.ch/dockq/internal/engine/dispatcher"
)
