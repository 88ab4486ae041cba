// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/toolup/internal/adapters/config"
	_ "go.trai.ch/toolup/internal/adapters/logger"
	_ "go.trai.ch/toolup/internal/adapters/sdkman"
	_ "go.trai.ch/toolup/internal/adapters/state"
	_ "go.trai.ch/toolup/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/toolup/internal/app"
	_ "go.trai.ch/toolup/internal/engine/provisioner"
)
