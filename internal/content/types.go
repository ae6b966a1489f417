package content

import "fmt"

// Tone is the accent colour of a presentational element.
type Tone string

const (
	ToneBlue   Tone = "blue"
	ToneGreen  Tone = "green"
	TonePurple Tone = "purple"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneOrange Tone = "orange"
)

// Valid reports whether t is a known tone. The empty tone is valid and means blue.
func (t Tone) Valid() bool {
	switch t {
	case "", ToneBlue, ToneGreen, TonePurple, ToneRed, ToneYellow, ToneOrange:
		return true
	default:
		return false
	}
}

// Class returns the CSS modifier class for the tone.
func (t Tone) Class() string {
	if t == "" {
		return "tone-blue"
	}
	return "tone-" + string(t)
}

// Icon names a glyph shown next to a heading.
type Icon string

var iconGlyphs = map[Icon]string{
	"shield":       "🛡",
	"hash":         "#",
	"upload":       "⇪",
	"check":        "✓",
	"check-circle": "✔",
	"alert-circle": "⚠",
	"lock":         "🔒",
	"database":     "🗄",
	"download":     "⬇",
	"file-text":    "📄",
	"search":       "🔍",
	"cpu":          "🖥",
	"globe":        "🌐",
	"zap":          "⚡",
	"terminal":     "⌨",
	"user-check":   "👤",
	"home":         "⌂",
}

// Valid reports whether i is a known icon. The empty icon is valid and renders nothing.
func (i Icon) Valid() bool {
	if i == "" {
		return true
	}
	_, ok := iconGlyphs[i]
	return ok
}

// Glyph returns the character used to draw the icon.
func (i Icon) Glyph() string {
	return iconGlyphs[i]
}

// RequirementStatus marks a system requirement as required or optional.
type RequirementStatus string

const (
	StatusRequired RequirementStatus = "required"
	StatusOptional RequirementStatus = "optional"
)

// Label returns the badge text for the status.
func (s RequirementStatus) Label() string {
	if s == StatusOptional {
		return "Optional"
	}
	return "Required"
}

// Header is the page header shown above the breadcrumb.
type Header struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Icon     Icon   `yaml:"icon"`
}

// Hero is the large introduction at the top of a page.
type Hero struct {
	Badge     string   `yaml:"badge"`
	Heading   string   `yaml:"heading"`
	Highlight string   `yaml:"highlight"`
	Lead      Markdown `yaml:"lead"`
	Tone      Tone     `yaml:"tone"`
}

// Section is the heading block that introduces a group of cards.
type Section struct {
	Badge   string `yaml:"badge"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
}

// StatCard shows one headline number on the home page.
type StatCard struct {
	Title       string `yaml:"title"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
	Details     string `yaml:"details"`
	Tone        Tone   `yaml:"tone"`
}

// FeatureCard describes one application feature.
type FeatureCard struct {
	Icon        Icon   `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tone        Tone   `yaml:"tone"`
}

// UseCaseCard describes one audience of the application.
type UseCaseCard struct {
	Icon        Icon   `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Fact is one label/value row of a FactCard.
type Fact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// FactCard is a titled table of facts, such as system requirements.
type FactCard struct {
	Icon  Icon   `yaml:"icon"`
	Title string `yaml:"title"`
	Tone  Tone   `yaml:"tone"`
	Rows  []Fact `yaml:"rows"`
}

// Check is one ticked item of the security and privacy list.
type Check struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// CallToAction closes a page with download and repository links.
type CallToAction struct {
	Badge   string `yaml:"badge"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Note    string `yaml:"note"`
	// GuideLink adds a link to the installation guide.
	GuideLink bool `yaml:"guide_link"`
	// IssuesLink replaces the download button with a link to the issue tracker.
	IssuesLink bool `yaml:"issues_link"`
}

// RequirementCard is one system requirement on the installation page.
type RequirementCard struct {
	Icon        Icon              `yaml:"icon"`
	Title       string            `yaml:"title"`
	Requirement string            `yaml:"requirement"`
	Status      RequirementStatus `yaml:"status"`
}

// StepCard is one numbered installation step.
type StepCard struct {
	Number      int     `yaml:"number"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Command     Command `yaml:"command"`
	Tone        Tone    `yaml:"tone"`
}

// Troubleshoot is a known problem and its fix.
type Troubleshoot struct {
	Title string   `yaml:"title"`
	Intro string   `yaml:"intro"`
	Fix   []string `yaml:"fix"`
	Tone  Tone     `yaml:"tone"`
}

// SetupStep is one numbered step of the optional VirusTotal setup.
type SetupStep struct {
	Number int      `yaml:"number"`
	Title  string   `yaml:"title"`
	Intro  string   `yaml:"intro"`
	Notes  []string `yaml:"notes"`
	Tone   Tone     `yaml:"tone"`
}

// Notice is a highlighted statement with a markdown body.
type Notice struct {
	Icon    Icon     `yaml:"icon"`
	Heading string   `yaml:"heading"`
	Body    Markdown `yaml:"body"`
	Tone    Tone     `yaml:"tone"`
}

// ListGroup is a headed bullet list inside a ListCard.
type ListGroup struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

// ListCard groups several bullet lists under one title.
type ListCard struct {
	Icon   Icon        `yaml:"icon"`
	Title  string      `yaml:"title"`
	Groups []ListGroup `yaml:"groups"`
}

// LicenseSummary is one column of the license overview.
type LicenseSummary struct {
	Mark    string   `yaml:"mark"`
	Heading string   `yaml:"heading"`
	Tone    Tone     `yaml:"tone"`
	Items   []string `yaml:"items"`
}

// Footer holds the footer copy shared by every page.
type Footer struct {
	Tagline   string   `yaml:"tagline"`
	Summary   string   `yaml:"summary"`
	Support   []string `yaml:"support"`
	Community string   `yaml:"community"`
	Copyright string   `yaml:"copyright"`
	Badges    []string `yaml:"badges"`
	UsageNote string   `yaml:"usage_note"`
}

// validator accumulates the first validation problem with its field path.
type validator struct {
	err error
}

func (v *validator) required(path, value string) {
	if v.err == nil && value == "" {
		v.err = fmt.Errorf("%s: must not be empty", path)
	}
}

func (v *validator) tone(path string, t Tone) {
	if v.err == nil && !t.Valid() {
		v.err = fmt.Errorf("%s: unknown tone %q", path, t)
	}
}

func (v *validator) icon(path string, i Icon) {
	if v.err == nil && !i.Valid() {
		v.err = fmt.Errorf("%s: unknown icon %q", path, i)
	}
}

func (v *validator) status(path string, s RequirementStatus) {
	if v.err == nil && s != StatusRequired && s != StatusOptional {
		v.err = fmt.Errorf("%s: unknown status %q", path, s)
	}
}

func (v *validator) sequence(path string, got, want int) {
	if v.err == nil && got != want {
		v.err = fmt.Errorf("%s: number %d out of sequence, want %d", path, got, want)
	}
}
