package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the page footer line.
func Footer(text string) cmp.Node {
	return g.Footer(
		g.Class("bg-gradient-to-r from-purple-900 via-indigo-900 to-purple-900 text-white py-6 rounded-2xl text-center shadow-lg"),
		g.P(g.Class("text-purple-200"), cmp.Text(text)),
	)
}
