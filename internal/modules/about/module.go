package about

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/module"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/rendering"
)

type Dependencies struct {
	Renderer rendering.Renderer
	BackHref string
}

type Module struct {
	module.BaseModule
	deps Dependencies
}

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "about"
}

// Register provides the page handler so the server and the static export
// share one instance.
func (m *Module) Register(i do.Injector) error {
	do.ProvideValue(i, NewHandler(m.deps.Renderer, m.deps.BackHref))
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return fmt.Errorf("resolve about handler: %w", err)
	}
	group.GET("/", h.Get)
	group.GET("/about", h.Get)
	return nil
}
