// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mesonic/internal/adapters/collection"
	_ "go.trai.ch/mesonic/internal/adapters/config"
	_ "go.trai.ch/mesonic/internal/adapters/fs"
	_ "go.trai.ch/mesonic/internal/adapters/launch"
	_ "go.trai.ch/mesonic/internal/adapters/linear"
	_ "go.trai.ch/mesonic/internal/adapters/logger"
	_ "go.trai.ch/mesonic/internal/adapters/meson"
	_ "go.trai.ch/mesonic/internal/adapters/notify"
	_ "go.trai.ch/mesonic/internal/adapters/results"
	_ "go.trai.ch/mesonic/internal/adapters/shell"
	_ "go.trai.ch/mesonic/internal/adapters/telemetry"
	_ "go.trai.ch/mesonic/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/mesonic/internal/app"
	_ "go.trai.ch/mesonic/internal/engine/tasks"
	_ "go.trai.ch/mesonic/internal/engine/testrun"
	_ "go.trai.ch/mesonic/internal/engine/testtree"
)
