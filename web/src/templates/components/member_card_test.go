package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/directory"
	"github.com/liutong011025-cloud/CWriteV5.5/internal/roster"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestMemberCard(t *testing.T) {
	scholar := "https://scholar.example/b"

	tests := []struct {
		name        string
		member      roster.Member
		highlight   bool
		contains    []string
		notContains []string
	}{
		{
			name:     "minimal record",
			member:   roster.Member{Name: "A", Email: "a@x.com", Photo: "/a.png"},
			contains: []string{`href="mailto:a@x.com"`, `data-variant="default"`, `src="/static/a.png"`, `loading="lazy"`, "<ul"},
			notContains: []string{
				"Google Scholar",
				`target="_blank"`,
				"<li>",
				"data-unoptimized",
			},
		},
		{
			name: "scholar and external photo",
			member: roster.Member{
				Name:    "B",
				Email:   "b@x.com",
				Scholar: &scholar,
				Photo:   "http://img/x.png",
			},
			highlight: true,
			contains: []string{
				`href="https://scholar.example/b"`,
				`target="_blank"`,
				`rel="noopener"`,
				`src="http://img/x.png"`,
				`data-unoptimized="true"`,
				`data-variant="highlighted"`,
				"from-purple-50",
			},
			notContains: []string{"/static/http", `loading="lazy"`},
		},
		{
			name: "titles and interests in order",
			member: roster.Member{
				Name:      "C",
				Titles:    []string{"Second", "First"},
				Interests: []string{"b", "a"},
			},
			contains: []string{"<div>Second</div><div>First</div>", "<li>b</li><li>a</li>"},
		},
		{
			name:     "text is escaped",
			member:   roster.Member{Name: "<script>x</script>", Role: "R & D"},
			contains: []string{"&lt;script&gt;x&lt;/script&gt;", "R &amp; D"},
			notContains: []string{
				"<script>",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, MemberCard(directory.FormatCard(tt.member, tt.highlight)))

			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestMemberCard_ActionsOrder(t *testing.T) {
	scholar := "https://scholar.example/b"
	html := render(t, MemberCard(directory.FormatCard(roster.Member{Name: "B", Email: "b@x.com", Scholar: &scholar}, false)))

	email := strings.Index(html, "mailto:b@x.com")
	profile := strings.Index(html, "scholar.example")
	require.NotEqual(t, -1, email)
	require.NotEqual(t, -1, profile)
	assert.Less(t, email, profile)
}

func TestVisionBanner(t *testing.T) {
	tests := []struct {
		name      string
		paragraph string
		want      string
	}{
		{name: "plain", paragraph: "We design learning.", want: "<p>We design learning.</p>"},
		{name: "leading number", paragraph: "2025. We launched.", want: "<p>2025. We launched.</p>"},
		{name: "leading hash", paragraph: "# of learners grew", want: "<p># of learners grew</p>"},
		{name: "markup is text", paragraph: "Learners use <em>and</em> reflect.", want: "<p>Learners use &lt;em&gt;and&lt;/em&gt; reflect.</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, VisionBanner(directory.Banner{Title: "Research Vision", Paragraphs: []string{tt.paragraph}}))

			assert.Contains(t, html, "Research Vision")
			assert.Contains(t, html, tt.want)
			assert.NotContains(t, html, "<ol")
			assert.NotContains(t, html, "<h1>")
		})
	}
}

func TestVisionBanner_ParagraphOrder(t *testing.T) {
	html := render(t, VisionBanner(directory.Banner{Paragraphs: []string{"one", "two"}}))
	assert.Contains(t, html, "<p>one</p><p>two</p>")
}

func TestMemberCard_ID(t *testing.T) {
	assert.Contains(t, render(t, MemberCard(directory.FormatCard(roster.Member{Name: "Dr. Ada Lovelace"}, false))), `id="dr-ada-lovelace"`)

	html := render(t, MemberCard(directory.FormatCard(roster.Member{Name: "..."}, false)))
	assert.NotContains(t, html, "id=")
}

func TestBackLink(t *testing.T) {
	assert.Nil(t, BackLink(""))

	html := render(t, BackLink("/"))
	assert.Contains(t, html, `href="/"`)
	assert.Contains(t, html, `hx-boost="true"`)
}

func TestFooter(t *testing.T) {
	html := render(t, Footer("© 2025 CWrite"))
	assert.Contains(t, html, "<footer")
	assert.Contains(t, html, "© 2025 CWrite")
}
