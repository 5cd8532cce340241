package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/directory"
)

// VisionBanner renders the research vision statement. Paragraphs are shown
// as authored text, one <p> each.
func VisionBanner(banner directory.Banner) cmp.Node {
	return g.Section(
		g.Class("bg-gradient-to-br from-purple-700 via-indigo-700 to-purple-900 text-white rounded-3xl p-10 shadow-2xl"),
		g.H1(g.Class("text-4xl md:text-5xl font-black mb-6"), cmp.Text(banner.Title)),
		g.Div(
			g.Class("vision-prose space-y-4 text-lg leading-relaxed text-purple-50"),
			cmp.Map(banner.Paragraphs, func(p string) cmp.Node {
				return g.P(cmp.Text(p))
			}),
		),
	)
}
