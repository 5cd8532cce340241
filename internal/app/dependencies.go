package app

import (
	"github.com/liutong011025-cloud/CWriteV5.5/internal/config"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/modules/about"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Config   *config.Config
	Renderer rendering.Renderer
}

// aboutDeps creates the dependency struct for the about module.
func aboutDeps(deps Dependencies) about.Dependencies {
	return about.Dependencies{
		Renderer: deps.Renderer,
		BackHref: deps.Config.BackURL,
	}
}
