// Package directory turns the authored roster into renderer-agnostic
// descriptions of member cards and of the About page.
package directory

import (
	"slices"
	"strings"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/roster"
)

// Variant selects the card palette.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantHighlighted Variant = "highlighted"
)

// ActionKind identifies a card action.
type ActionKind string

const (
	ActionEmail   ActionKind = "email"
	ActionScholar ActionKind = "scholar"
)

const (
	// RelNoOpener keeps a newly opened browsing context from reaching back
	// to the page that opened it.
	RelNoOpener = "noopener"
	// TargetNewContext opens a link in a new browsing context.
	TargetNewContext = "_blank"
)

// Image is the photo shown on a card.
type Image struct {
	Src string
	Alt string
	// External images must be passed to the browser untouched.
	External bool
}

// Action is a link button on a card.
type Action struct {
	Kind   ActionKind
	Label  string
	Href   string
	Target string
	Rel    string
}

// Card is the formatted description of one member.
type Card struct {
	Key       string
	Variant   Variant
	Image     Image
	Name      string
	Role      string
	Titles    []string
	Interests []string
	Actions   []Action
}

// IsExternal reports whether photo points at a network resource rather than
// a local asset.
func IsExternal(photo string) bool {
	return strings.HasPrefix(photo, "http")
}

// FormatCard describes how member m is shown. It never fails: empty fields
// simply produce empty blocks.
func FormatCard(m roster.Member, highlight bool) Card {
	variant := VariantDefault
	if highlight {
		variant = VariantHighlighted
	}

	actions := []Action{{
		Kind:  ActionEmail,
		Label: "✉️ Email",
		Href:  "mailto:" + m.Email,
	}}
	if url, ok := m.ScholarURL(); ok {
		actions = append(actions, Action{
			Kind:   ActionScholar,
			Label:  "🎓 Google Scholar",
			Href:   url,
			Target: TargetNewContext,
			Rel:    RelNoOpener,
		})
	}

	return Card{
		Key:     m.Key(),
		Variant: variant,
		Image: Image{
			Src:      m.Photo,
			Alt:      m.Name,
			External: IsExternal(m.Photo),
		},
		Name:      m.Name,
		Role:      m.Role,
		Titles:    slices.Clone(m.Titles),
		Interests: slices.Clone(m.Interests),
		Actions:   actions,
	}
}
