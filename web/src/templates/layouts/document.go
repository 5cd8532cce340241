package layouts

import (
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"

	"github.com/liutong011025-cloud/CWriteV5.5/web"
)

// Document wraps body in the site's HTML5 shell.
func Document(title string, body ...cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(title),
		Description: "CWrite research lab at The Education University of Hong Kong.",
		Language:    "en",
		Head: []cmp.Node{
			g.Script(g.Src("https://cdn.tailwindcss.com")),
			g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4")),
			g.Link(g.Rel("stylesheet"), g.Href(web.StaticPrefix+"/css/about.css")),
		},
		Body: body,
	})
}
