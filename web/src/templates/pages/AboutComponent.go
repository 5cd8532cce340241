package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/directory"
	"github.com/liutong011025-cloud/CWriteV5.5/web/src/templates/components"
)

// Options tunes the About page markup.
type Options struct {
	// BackHref, when set, renders a back link above the vision banner.
	BackHref string
}

// AboutContent is the main content of the About page: the vision banner, one
// grid per team section and the footer.
func AboutContent(page directory.Page, opts Options) cmp.Node {
	return g.Div(
		g.Class("min-h-screen bg-gradient-to-br from-indigo-100 via-purple-50 via-pink-50 to-orange-50 px-4"),
		g.Style("padding-top: 120px; padding-bottom: 120px"),
		g.Div(
			g.Class("max-w-7xl mx-auto space-y-10"),
			components.BackLink(opts.BackHref),
			components.VisionBanner(page.Vision),
			cmp.Map(page.Sections, teamSection),
			components.Footer(page.Footer),
		),
	)
}

func teamSection(section directory.Section) cmp.Node {
	return g.Section(
		g.Class("space-y-6"),
		cmp.If(section.Heading != "",
			g.H2(g.Class("text-3xl md:text-4xl font-black text-purple-800"), cmp.Text(section.Heading)),
		),
		g.Div(
			g.Class(gridClass(section.Columns)),
			cmp.Map(section.Cards, components.MemberCard),
		),
	)
}

func gridClass(columns int) string {
	if columns < 1 {
		columns = 1
	}
	return fmt.Sprintf("grid md:grid-cols-%d gap-6", columns)
}
