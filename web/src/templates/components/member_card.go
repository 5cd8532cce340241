package components

import (
	"path"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/directory"
	"github.com/liutong011025-cloud/CWriteV5.5/web"
)

var cardPalette = map[directory.Variant]string{
	directory.VariantHighlighted: "bg-gradient-to-br from-purple-50 via-pink-50 to-orange-50 border-purple-200",
	directory.VariantDefault:     "bg-white/85 border-amber-200",
}

var actionStyle = map[directory.ActionKind]string{
	directory.ActionEmail:   "inline-flex items-center rounded-md px-4 py-2 text-sm font-medium bg-gradient-to-r from-purple-600 to-pink-600 text-white hover:from-purple-700 hover:to-pink-700",
	directory.ActionScholar: "inline-flex items-center rounded-md px-4 py-2 text-sm font-medium border border-purple-200 text-purple-700 hover:bg-purple-50",
}

// MemberCard renders one formatted member card.
func MemberCard(card directory.Card) cmp.Node {
	return g.Div(
		cmp.If(card.Key != "", g.ID(card.Key)),
		g.Class("relative rounded-3xl p-8 border-4 shadow-2xl backdrop-blur-sm h-full flex flex-col gap-4 "+cardPalette[card.Variant]),
		cmp.Attr("data-variant", string(card.Variant)),
		g.Div(
			g.Class("flex items-start gap-4"),
			g.Div(
				g.Class("relative w-24 h-24 rounded-2xl overflow-hidden border-4 border-purple-300 flex-shrink-0"),
				Photo(card.Image),
			),
			g.Div(
				g.Class("space-y-2"),
				g.H3(g.Class("text-xl font-bold text-purple-800 leading-tight"), cmp.Text(card.Name)),
				g.P(g.Class("text-sm font-semibold text-purple-600"), cmp.Text(card.Role)),
				g.Div(
					g.Class("text-sm text-gray-700 leading-snug"),
					cmp.Map(card.Titles, func(title string) cmp.Node {
						return g.Div(cmp.Text(title))
					}),
				),
			),
		),
		g.Div(
			g.Class("rounded-2xl bg-white/80 border border-purple-100 p-4 shadow-inner"),
			g.P(g.Class("text-sm font-semibold text-purple-700 mb-2"), cmp.Text("Research interests")),
			g.Ul(
				g.Class("text-sm text-gray-700 space-y-1 list-disc pl-4"),
				cmp.Map(card.Interests, func(interest string) cmp.Node {
					return g.Li(cmp.Text(interest))
				}),
			),
		),
		g.Div(
			g.Class("flex flex-wrap gap-3"),
			cmp.Map(card.Actions, actionLink),
		),
	)
}

// Photo renders a member photo. External images keep their source exactly as
// authored; local images are served from the embedded static assets.
func Photo(img directory.Image) cmp.Node {
	if img.External {
		return g.Img(
			g.Src(img.Src),
			g.Alt(img.Alt),
			g.Class("member-photo"),
			cmp.Attr("data-unoptimized", "true"),
		)
	}
	return g.Img(
		g.Src(path.Join(web.StaticPrefix, img.Src)),
		g.Alt(img.Alt),
		g.Class("member-photo"),
		g.Width("96"),
		g.Height("96"),
		cmp.Attr("loading", "lazy"),
		cmp.Attr("decoding", "async"),
	)
}

func actionLink(action directory.Action) cmp.Node {
	return g.A(
		g.Href(action.Href),
		g.Class(actionStyle[action.Kind]),
		cmp.If(action.Target != "", g.Target(action.Target)),
		cmp.If(action.Rel != "", g.Rel(action.Rel)),
		cmp.Text(action.Label),
	)
}
