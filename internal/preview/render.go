package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subham-04/file-hash-checker-site/internal/constants"
	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/site"
)

var toneColors = map[content.Tone]lipgloss.Color{
	content.ToneBlue:   lipgloss.Color("#3B82F6"),
	content.ToneGreen:  lipgloss.Color("#10B981"),
	content.TonePurple: lipgloss.Color("#8B5CF6"),
	content.ToneRed:    lipgloss.Color("#EF4444"),
	content.ToneYellow: lipgloss.Color("#F59E0B"),
	content.ToneOrange: lipgloss.Color("#F97316"),
}

var (
	faintColor = lipgloss.Color("#6B7280")

	badgeStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(faintColor)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginBottom(1)
)

func toneColor(t content.Tone) lipgloss.Color {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return toneColors[content.ToneBlue]
}

// page accumulates the rendered blocks of one page at a fixed width.
type page struct {
	width  int
	blocks []string
}

func (p *page) add(block string) {
	p.blocks = append(p.blocks, block)
}

func (p *page) text(s string) {
	p.add(lipgloss.NewStyle().Width(p.width).Render(s))
}

func (p *page) hero(h content.Hero) {
	color := toneColor(h.Tone)
	if h.Badge != "" {
		p.add(badgeStyle.Foreground(color).Render(h.Badge))
	}
	p.add(headingStyle.Render(h.Heading) + " " + headingStyle.Foreground(color).Render(h.Highlight))
	p.text(h.Lead.Plain())
}

func (p *page) section(s content.Section) {
	p.add("")
	if s.Badge != "" {
		p.add(faintStyle.Render(s.Badge))
	}
	p.add(headingStyle.Underline(true).Render(s.Heading))
	if s.Lead != "" {
		p.text(s.Lead)
	}
	p.add("")
}

func (p *page) card(t content.Tone, title string, lines ...string) {
	body := []string{headingStyle.Foreground(toneColor(t)).Render(title)}
	for _, l := range lines {
		if l != "" {
			body = append(body, l)
		}
	}
	p.add(cardStyle.
		BorderForeground(toneColor(t)).
		Width(max(p.width-2, 10)).
		Render(strings.Join(body, "\n")))
}

func (p *page) callToAction(cta content.CallToAction) {
	p.section(content.Section{Badge: cta.Badge, Heading: cta.Heading, Lead: cta.Lead})
	if cta.IssuesLink {
		p.add("Report Issues: " + constants.IssuesURL)
	} else {
		p.add("Download Now: " + constants.RepositoryURL)
	}
	p.add("View on GitHub: " + constants.RepositoryURL)
	if cta.GuideLink {
		p.add("Installation Guide: press 2")
	}
	if cta.Note != "" {
		p.add(faintStyle.Render(cta.Note))
	}
}

func (p *page) footer(c *content.Catalog) {
	p.add("")
	p.add(faintStyle.Render(strings.Repeat("─", max(p.width, 1))))
	p.add(headingStyle.Render(c.Name) + " " + faintStyle.Render(c.Footer.Tagline))
	p.add(faintStyle.Render(c.Footer.Copyright))
}

func (p *page) String() string {
	return strings.Join(p.blocks, "\n")
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func withIcon(i content.Icon, title string) string {
	if g := i.Glyph(); g != "" {
		return g + " " + title
	}
	return title
}

// renderPage draws the body of p at width columns.
func renderPage(c *content.Catalog, current site.Page, width int) string {
	p := &page{width: max(width, 20)}

	switch current {
	case site.Installation:
		renderInstallation(p, &c.Installation)
	case site.Privacy:
		renderPrivacy(p, &c.Privacy)
	default:
		renderHome(p, &c.Home)
	}

	p.footer(c)
	return p.String()
}

func renderHome(p *page, h *content.HomePage) {
	p.hero(h.Hero)
	p.add("")
	for _, s := range h.Stats {
		p.card(s.Tone, s.Title, headingStyle.Render(s.Value), s.Description, faintStyle.Render(s.Details))
	}

	p.section(h.Features)
	for _, f := range h.FeatureCards {
		p.card(f.Tone, withIcon(f.Icon, f.Title), f.Description)
	}

	p.section(h.UseCases)
	for _, u := range h.UseCaseCards {
		p.card(content.ToneBlue, withIcon(u.Icon, u.Title), u.Description)
	}

	for _, spec := range h.Specs {
		rows := make([]string, 0, len(spec.Rows))
		for _, r := range spec.Rows {
			rows = append(rows, fmt.Sprintf("%s: %s", r.Label, r.Value))
		}
		p.card(spec.Tone, withIcon(spec.Icon, spec.Title), strings.Join(rows, "\n"))
	}

	p.section(h.Security)
	for _, check := range h.Checks {
		p.text("✓ " + headingStyle.Render(check.Title) + " " + check.Detail)
	}

	p.callToAction(h.CallToAction)
}

func renderInstallation(p *page, in *content.InstallationPage) {
	p.hero(in.Hero)

	p.section(in.Requirements)
	for _, r := range in.RequirementCards {
		tone := content.ToneGreen
		if r.Status == content.StatusOptional {
			tone = content.ToneYellow
		}
		p.card(tone, withIcon(r.Icon, r.Title), r.Requirement, faintStyle.Render(r.Status.Label()))
	}

	p.section(in.Steps)
	for _, s := range in.StepCards {
		var command string
		if s.Command != "" {
			command = "$ " + strings.TrimRight(s.Command.Terminal(), "\n")
		}
		p.card(s.Tone, fmt.Sprintf("%d. %s", s.Number, s.Title), s.Description, command)
	}

	p.section(in.Troubleshooting)
	for _, tr := range in.Troubleshoots {
		p.card(tr.Tone, tr.Title, tr.Intro, bullets(tr.Fix))
	}

	p.section(in.VirusTotal)
	for _, s := range in.VirusTotalSetup {
		p.card(s.Tone, fmt.Sprintf("%d. %s", s.Number, s.Title), s.Intro, bullets(s.Notes))
	}

	p.callToAction(in.CallToAction)
}

func renderPrivacy(p *page, pr *content.PrivacyPage) {
	p.hero(pr.Hero)

	p.section(pr.Overview)
	for _, n := range pr.Notices {
		p.card(n.Tone, withIcon(n.Icon, n.Heading), n.Body.Plain())
	}

	p.section(pr.Details)
	for _, d := range pr.DetailCards {
		groups := make([]string, 0, len(d.Groups))
		for _, g := range d.Groups {
			groups = append(groups, headingStyle.Render(g.Heading)+"\n"+bullets(g.Items))
		}
		p.card(content.ToneBlue, withIcon(d.Icon, d.Title), strings.Join(groups, "\n\n"))
	}

	p.section(pr.License)
	for _, s := range pr.LicenseSummaries {
		p.card(s.Tone, s.Mark+" "+s.Heading, bullets(s.Items))
	}
	p.add(headingStyle.Render(pr.LicenseHeading))
	p.text(pr.LicenseText)

	p.callToAction(pr.Contact)
}
