// Package site defines the three pages of the File Hash Checker site and the
// router that selects between them.
package site

// Page identifies one of the site's top-level pages.
type Page string

const (
	// Home is the landing page and the initial selector.
	Home Page = "home"
	// Installation is the installation guide.
	Installation Page = "installation"
	// Privacy is the privacy policy and license page.
	Privacy Page = "privacy"
)

// pages lists every valid selector in navigation order.
var pages = [...]Page{Home, Installation, Privacy}

// Pages returns every page in navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages[:])
	return out
}

// Parse maps an identifier to a page. Unknown identifiers map to Home.
func Parse(id string) Page {
	p := Page(id)
	if !p.Valid() {
		return Home
	}
	return p
}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	switch p {
	case Home, Installation, Privacy:
		return true
	default:
		return false
	}
}

// String returns the page identifier.
func (p Page) String() string {
	return string(p)
}

// Label returns the breadcrumb label for the page.
func (p Page) Label() string {
	switch p {
	case Installation:
		return "Installation Guide"
	case Privacy:
		return "Privacy & License"
	default:
		return "Home"
	}
}

// Path returns the URL path the page is served at, relative to the site root.
func (p Page) Path() string {
	switch p {
	case Installation:
		return "/installation"
	case Privacy:
		return "/privacy"
	default:
		return "/"
	}
}

// Next returns the page after p in navigation order, wrapping around.
func (p Page) Next() Page {
	return pages[(p.index()+1)%len(pages)]
}

// Prev returns the page before p in navigation order, wrapping around.
func (p Page) Prev() Page {
	return pages[(p.index()+len(pages)-1)%len(pages)]
}

func (p Page) index() int {
	for i, candidate := range pages {
		if candidate == p {
			return i
		}
	}
	return 0
}
