package app

import (
	"github.com/liutong011025-cloud/CWriteV5.5/internal/module"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/modules/about"
)

// NewModules creates and returns the list of all active modules for the application.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		about.New(aboutDeps(deps)),
	}
}
