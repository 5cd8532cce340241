package about

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/directory"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/middleware"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/rendering"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/view"
	"github.com/liutong011025-cloud/CWriteV5.5/web/src/templates/layouts"
	"github.com/liutong011025-cloud/CWriteV5.5/web/src/templates/pages"
)

// Handler serves the About page.
type Handler struct {
	renderer rendering.Renderer
	opts     pages.Options
}

// NewHandler creates a new Handler.
func NewHandler(renderer rendering.Renderer, backHref string) *Handler {
	return &Handler{
		renderer: renderer,
		opts:     pages.Options{BackHref: backHref},
	}
}

// Document returns the complete About page. Every call yields the same markup.
func (h *Handler) Document() templ.Component {
	content := pages.AboutContent(directory.About(), h.opts)
	return view.AdaptGomponentToTempl(layouts.Document("About", content))
}

// Get renders the About page.
func (h *Handler) Get(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Debug("rendering about page", "path", c.Path())
	return h.renderer.RenderPage(c, http.StatusOK, h.Document())
}
