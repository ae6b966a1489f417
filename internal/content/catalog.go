// Package content holds the copy of every page of the site. The copy lives in
// an embedded YAML document and is decoded into one explicit struct per
// presentational element.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

//go:embed content.yaml
var defaultSource []byte

// Catalog is the complete copy of the site.
type Catalog struct {
	Name         string           `yaml:"name"`
	Footer       Footer           `yaml:"footer"`
	Home         HomePage         `yaml:"home"`
	Installation InstallationPage `yaml:"installation"`
	Privacy      PrivacyPage      `yaml:"privacy"`
}

// HomePage is the copy of the landing page.
type HomePage struct {
	Header       Header        `yaml:"header"`
	Hero         Hero          `yaml:"hero"`
	Stats        []StatCard    `yaml:"stats"`
	Features     Section       `yaml:"features"`
	FeatureCards []FeatureCard `yaml:"feature_cards"`
	UseCases     Section       `yaml:"use_cases"`
	UseCaseCards []UseCaseCard `yaml:"use_case_cards"`
	Specs        []FactCard    `yaml:"specs"`
	Security     Section       `yaml:"security"`
	Checks       []Check       `yaml:"checks"`
	CallToAction CallToAction  `yaml:"call_to_action"`
}

// InstallationPage is the copy of the installation guide.
type InstallationPage struct {
	Header           Header            `yaml:"header"`
	Hero             Hero              `yaml:"hero"`
	Requirements     Section           `yaml:"requirements"`
	RequirementCards []RequirementCard `yaml:"requirement_cards"`
	Steps            Section           `yaml:"steps"`
	StepCards        []StepCard        `yaml:"step_cards"`
	Troubleshooting  Section           `yaml:"troubleshooting"`
	Troubleshoots    []Troubleshoot    `yaml:"troubleshoots"`
	VirusTotal       Section           `yaml:"virustotal"`
	VirusTotalSetup  []SetupStep       `yaml:"virustotal_setup"`
	CallToAction     CallToAction      `yaml:"call_to_action"`
}

// PrivacyPage is the copy of the privacy policy and license page.
type PrivacyPage struct {
	Header           Header           `yaml:"header"`
	Hero             Hero             `yaml:"hero"`
	Overview         Section          `yaml:"overview"`
	Notices          []Notice         `yaml:"notices"`
	Details          Section          `yaml:"details"`
	DetailCards      []ListCard       `yaml:"detail_cards"`
	License          Section          `yaml:"license"`
	LicenseSummaries []LicenseSummary `yaml:"license_summaries"`
	LicenseHeading   string           `yaml:"license_heading"`
	LicenseText      string           `yaml:"license_text"`
	Contact          CallToAction     `yaml:"contact"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// Default returns the catalog decoded from the embedded content.yaml. It is
// decoded once and shared; callers must not modify it.
func Default() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = Parse(defaultSource)
	})
	return defaultCatalog, defaultCatalogErr
}

// Parse decodes and validates a catalog. Unknown YAML keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(internalerrors.ErrInvalidContent, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(internalerrors.ErrInvalidContent, err.Error())
	}
	return &c, nil
}

// Validate checks that required copy is present and every enumerated value
// is known.
func (c *Catalog) Validate() error {
	v := &validator{}
	v.required("name", c.Name)
	v.required("footer.copyright", c.Footer.Copyright)

	h := c.Home
	validateHeader(v, "home.header", h.Header)
	validateHero(v, "home.hero", h.Hero)
	for i, s := range h.Stats {
		p := fmt.Sprintf("home.stats[%d]", i)
		v.required(p+".value", s.Value)
		v.tone(p+".tone", s.Tone)
	}
	v.required("home.features.heading", h.Features.Heading)
	for i, f := range h.FeatureCards {
		p := fmt.Sprintf("home.feature_cards[%d]", i)
		v.required(p+".title", f.Title)
		v.icon(p+".icon", f.Icon)
		v.tone(p+".tone", f.Tone)
	}
	for i, u := range h.UseCaseCards {
		p := fmt.Sprintf("home.use_case_cards[%d]", i)
		v.required(p+".title", u.Title)
		v.icon(p+".icon", u.Icon)
	}
	for i, s := range h.Specs {
		p := fmt.Sprintf("home.specs[%d]", i)
		v.required(p+".title", s.Title)
		v.icon(p+".icon", s.Icon)
		v.tone(p+".tone", s.Tone)
	}

	in := c.Installation
	validateHeader(v, "installation.header", in.Header)
	validateHero(v, "installation.hero", in.Hero)
	v.required("installation.steps.heading", in.Steps.Heading)
	for i, r := range in.RequirementCards {
		p := fmt.Sprintf("installation.requirement_cards[%d]", i)
		v.required(p+".title", r.Title)
		v.icon(p+".icon", r.Icon)
		v.status(p+".status", r.Status)
	}
	for i, s := range in.StepCards {
		p := fmt.Sprintf("installation.step_cards[%d]", i)
		v.required(p+".title", s.Title)
		v.sequence(p, s.Number, i+1)
		v.tone(p+".tone", s.Tone)
	}
	for i, tr := range in.Troubleshoots {
		p := fmt.Sprintf("installation.troubleshoots[%d]", i)
		v.required(p+".title", tr.Title)
		v.tone(p+".tone", tr.Tone)
	}
	for i, s := range in.VirusTotalSetup {
		p := fmt.Sprintf("installation.virustotal_setup[%d]", i)
		v.required(p+".title", s.Title)
		v.sequence(p, s.Number, i+1)
		v.tone(p+".tone", s.Tone)
	}

	pr := c.Privacy
	validateHeader(v, "privacy.header", pr.Header)
	validateHero(v, "privacy.hero", pr.Hero)
	v.required("privacy.license.heading", pr.License.Heading)
	v.required("privacy.license_text", pr.LicenseText)
	for i, n := range pr.Notices {
		p := fmt.Sprintf("privacy.notices[%d]", i)
		v.required(p+".heading", n.Heading)
		v.icon(p+".icon", n.Icon)
		v.tone(p+".tone", n.Tone)
	}
	for i, d := range pr.DetailCards {
		p := fmt.Sprintf("privacy.detail_cards[%d]", i)
		v.required(p+".title", d.Title)
		v.icon(p+".icon", d.Icon)
	}
	for i, s := range pr.LicenseSummaries {
		p := fmt.Sprintf("privacy.license_summaries[%d]", i)
		v.required(p+".heading", s.Heading)
		v.tone(p+".tone", s.Tone)
	}

	return v.err
}

func validateHeader(v *validator, path string, h Header) {
	v.required(path+".title", h.Title)
	v.icon(path+".icon", h.Icon)
}

func validateHero(v *validator, path string, h Hero) {
	v.required(path+".heading", h.Heading)
	v.tone(path+".tone", h.Tone)
}
