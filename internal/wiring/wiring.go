// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cubuild/internal/adapters/config"
	_ "go.trai.ch/cubuild/internal/adapters/envcfg"
	_ "go.trai.ch/cubuild/internal/adapters/fsclean"
	_ "go.trai.ch/cubuild/internal/adapters/logger"
	_ "go.trai.ch/cubuild/internal/adapters/shell"
	_ "go.trai.ch/cubuild/internal/adapters/state"
	_ "go.trai.ch/cubuild/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cubuild/internal/app"
	_ "go.trai.ch/cubuild/internal/engine/runner"
)
