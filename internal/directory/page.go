package directory

import (
	"slices"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/roster"
)

// Banner is the vision statement at the top of the page.
type Banner struct {
	Title      string
	Paragraphs []string
}

// Section is one group of member cards laid out in a fixed column grid.
type Section struct {
	Heading   string
	Columns   int
	Highlight bool
	Cards     []Card
}

// Page is the complete About page description.
type Page struct {
	Vision   Banner
	Sections []Section
	Footer   string
	// OnBack is handed through for page-level navigation. The page never
	// calls it.
	OnBack func()
}

// Option configures About.
type Option func(*options)

type options struct {
	onBack func()
}

// WithBack attaches a back-navigation callback to the page.
func WithBack(fn func()) Option {
	return func(o *options) {
		o.onBack = fn
	}
}

// About composes the lab's About page from the authored roster.
func About(opts ...Option) Page {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Compose(roster.Default(), o.onBack)
}

// Compose lays out r in authored order: vision, one section per group, then
// the footer. Members are neither sorted, filtered nor deduplicated.
func Compose(r roster.Roster, onBack func()) Page {
	sections := make([]Section, 0, len(r.Groups))
	for _, group := range r.Groups {
		cards := make([]Card, 0, len(group.Members))
		for _, m := range group.Members {
			cards = append(cards, FormatCard(m, group.Highlight))
		}
		sections = append(sections, Section{
			Heading:   group.Heading,
			Columns:   group.Columns,
			Highlight: group.Highlight,
			Cards:     cards,
		})
	}

	return Page{
		Vision: Banner{
			Title:      r.Vision.Title,
			Paragraphs: slices.Clone(r.Vision.Paragraphs),
		},
		Sections: sections,
		Footer:   r.Footer,
		OnBack:   onBack,
	}
}
