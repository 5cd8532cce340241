// Package roster holds the authored team data rendered on the About page.
package roster

// Member is one person's profile as authored for the About page.
type Member struct {
	Name      string   `yaml:"name"`
	Role      string   `yaml:"role"`
	Titles    []string `yaml:"titles"`
	Interests []string `yaml:"interests"`
	Email     string   `yaml:"email"`
	// Scholar is the Google Scholar profile URL. Nil when the member has none.
	Scholar *string `yaml:"scholar,omitempty"`
	Photo   string  `yaml:"photo"`
}

// Key returns the stable identity of the member, derived from its name.
func (m Member) Key() string {
	return Slug(m.Name)
}

// ScholarURL returns the scholar profile and whether one is set.
// An empty URL counts as absent.
func (m Member) ScholarURL() (string, bool) {
	if m.Scholar == nil || *m.Scholar == "" {
		return "", false
	}
	return *m.Scholar, true
}

// Group is an ordered set of members sharing one display treatment.
type Group struct {
	Heading   string   `yaml:"heading,omitempty"`
	Highlight bool     `yaml:"highlight"`
	Columns   int      `yaml:"columns"`
	Members   []Member `yaml:"members"`
}

// Vision is the research statement shown above the team.
type Vision struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Roster is everything the About page is built from.
type Roster struct {
	Vision Vision  `yaml:"vision"`
	Groups []Group `yaml:"groups"`
	Footer string  `yaml:"footer"`
}
