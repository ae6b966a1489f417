package app

import (
	"bytes"
	"html/template"

	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/app/templates"
	"github.com/subham-04/file-hash-checker-site/internal/constants"
	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/seo"
	"github.com/subham-04/file-hash-checker-site/internal/site"
)

// Links are the outbound and download links shown on every page.
type Links struct {
	Repository    string
	Issues        string
	Documentation string
	Download      string
}

// PageData is passed to the page templates.
type PageData struct {
	Page           site.Page
	Meta           site.Meta
	Header         content.Header
	Crumbs         []site.Crumb
	Catalog        *content.Catalog
	Links          Links
	CanonicalURL   string
	StructuredData template.JS
}

type heroView struct {
	Hero    content.Hero
	Buttons bool
	Links   Links
}

type ctaView struct {
	content.CallToAction
	Links Links
}

// Renderer renders pages from the catalog. It is safe for concurrent use.
type Renderer struct {
	pages          map[site.Page]*template.Template
	catalog        *content.Catalog
	structuredData *seo.StructuredData
	basePath       string
	siteURL        string
	links          Links
}

// NewRenderer parses the embedded templates. basePath prefixes every
// internal link and siteURL is used for canonical URLs.
func NewRenderer(catalog *content.Catalog, sd *seo.StructuredData, basePath, siteURL string) (*Renderer, error) {
	if catalog == nil {
		return nil, errors.New("renderer requires a catalog")
	}

	r := &Renderer{
		pages:          make(map[site.Page]*template.Template),
		catalog:        catalog,
		structuredData: sd,
		basePath:       basePath,
		siteURL:        siteURL,
		links: Links{
			Repository:    constants.RepositoryURL,
			Issues:        constants.IssuesURL,
			Documentation: constants.DocumentationURL,
			Download:      basePath + "/" + constants.DownloadName,
		},
	}

	funcs := template.FuncMap{
		"path":  r.pagePath,
		"asset": r.assetPath,
		"glyph": func(i content.Icon) string { return i.Glyph() },
		"hero": func(d PageData, h content.Hero, buttons bool) heroView {
			return heroView{Hero: h, Buttons: buttons, Links: d.Links}
		},
		"cta": func(d PageData, c content.CallToAction) ctaView {
			return ctaView{CallToAction: c, Links: d.Links}
		},
	}

	base, err := template.New("layout").Funcs(funcs).ParseFS(templates.FS, "layout.html", "partials.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout templates")
	}

	for _, p := range site.Pages() {
		t, err := base.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "clone layout for %s", p)
		}
		if _, err := t.ParseFS(templates.FS, string(p)+".html"); err != nil {
			return nil, errors.Wrapf(err, "parse %s template", p)
		}
		r.pages[p] = t
	}

	return r, nil
}

// Links returns the links rendered into every page.
func (r *Renderer) Links() Links {
	return r.links
}

// Render renders the page currently selected by router. head must be the
// Document the router applies metadata to.
func (r *Renderer) Render(router *site.Router, head *site.Head) ([]byte, error) {
	p := router.Current()
	t, ok := r.pages[p]
	if !ok {
		return nil, errors.Newf("no template for page %q", p)
	}

	data := PageData{
		Page:         p,
		Meta:         head.Meta(),
		Header:       r.header(p),
		Crumbs:       router.Breadcrumb(),
		Catalog:      r.catalog,
		Links:        r.links,
		CanonicalURL: r.canonicalURL(p),
	}
	// Structured data describes the whole site and is only emitted once, on the landing page.
	if p == site.Home {
		data.StructuredData = r.structuredData.JS()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, errors.Wrapf(err, "render %s", p)
	}
	return buf.Bytes(), nil
}

// RenderPage renders p as a fresh visitor navigating to it would see it.
func (r *Renderer) RenderPage(p site.Page) ([]byte, error) {
	head := &site.Head{}
	router := site.NewRouter(head)
	router.Navigate(p)
	return r.Render(router, head)
}

func (r *Renderer) header(p site.Page) content.Header {
	switch p {
	case site.Installation:
		return r.catalog.Installation.Header
	case site.Privacy:
		return r.catalog.Privacy.Header
	default:
		return r.catalog.Home.Header
	}
}

func (r *Renderer) pagePath(p site.Page) string {
	if p == site.Home {
		return r.basePath + "/"
	}
	return r.basePath + p.Path()
}

func (r *Renderer) assetPath(name string) string {
	return r.basePath + "/" + name
}

func (r *Renderer) canonicalURL(p site.Page) string {
	if p == site.Home {
		return r.siteURL + "/"
	}
	return r.siteURL + p.Path()
}
