package components

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// BackLink renders a boosted link back to href. It renders nothing when href
// is empty.
func BackLink(href string) cmp.Node {
	if href == "" {
		return nil
	}
	return g.Nav(
		g.Class("mb-6"),
		g.A(
			g.Href(href),
			hx.Boost("true"),
			g.Class("inline-flex items-center gap-2 text-purple-700 font-semibold hover:underline"),
			cmp.Text("← Back"),
		),
	)
}
