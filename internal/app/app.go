// Package app wires configuration, shared services and modules together.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/do/v2"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/config"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/export"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/module"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/modules/about"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/rendering"
)

// App is a configured application with all modules registered.
type App struct {
	Config   *config.Config
	Injector do.Injector
	Modules  []module.Module
}

// New builds the injector and registers every module with it.
func New(cfg *config.Config) (*App, error) {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.Provide(injector, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	renderer, err := do.Invoke[*rendering.UniversalRenderer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}

	modules := NewModules(Dependencies{Config: cfg, Renderer: renderer})
	for _, m := range modules {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	return &App{Config: cfg, Injector: injector, Modules: modules}, nil
}

// Renderer returns the shared renderer.
func (a *App) Renderer() *rendering.UniversalRenderer {
	return do.MustInvoke[*rendering.UniversalRenderer](a.Injector)
}

// Pages lists the documents written by the static export.
func (a *App) Pages() ([]export.Page, error) {
	h, err := do.Invoke[*about.Handler](a.Injector)
	if err != nil {
		return nil, fmt.Errorf("resolve about handler: %w", err)
	}
	return []export.Page{
		{Path: "index.html", Component: h.Document()},
		{Path: "about.html", Component: h.Document()},
	}, nil
}

// Shutdown stops every module, reporting all failures.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	for _, m := range a.Modules {
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", m.Name(), err))
		}
	}
	return errors.Join(errs...)
}
