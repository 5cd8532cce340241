package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/app"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	app *app.App
}

// New creates the HTTP server for a, wires middleware and boots every module.
func New(ctx context.Context, a *app.App) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(middleware.RateLimiter(a.Config.RateLimit))

	setupErrorHandling(e)
	e.Renderer = a.Renderer()

	s := &Server{E: e, app: a}
	s.RegisterRoutes()

	root := e.Group("")
	for _, m := range a.Modules {
		if err := m.Boot(ctx, root, a.Injector); err != nil {
			return nil, fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	return s, nil
}
