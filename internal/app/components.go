package app

import "go.trai.ch/mesonic/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	// Renderer shows span progress on the same stream as the App's stderr.
	Renderer ports.Renderer
}
