package site

// Meta is the document metadata applied when a page becomes active.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var metaByPage = map[Page]Meta{
	Home: {
		Title:       "File Hash Checker - Free Hash Calculator & Malware Scanner | MD5 SHA1 SHA256",
		Description: "Free file hash calculator with MD5, SHA1, SHA256 algorithms and VirusTotal integration for malware scanning. Download Python desktop app.",
	},
	Installation: {
		Title:       "Installation Guide - File Hash Checker | Setup Instructions",
		Description: "Step-by-step installation guide for File Hash Checker. Download Python desktop application and setup VirusTotal integration.",
	},
	Privacy: {
		Title:       "Privacy Policy & License - File Hash Checker | Terms of Use",
		Description: "Privacy policy and licensing terms for File Hash Checker. Non-commercial use allowed with proper attribution.",
	},
}

// MetaFor returns the static metadata for p. Unknown pages get the home metadata.
func MetaFor(p Page) Meta {
	if m, ok := metaByPage[p]; ok {
		return m
	}
	return metaByPage[Home]
}

// Document receives metadata whenever the active page changes.
type Document interface {
	SetTitle(title string)
	SetDescription(description string)
}

// Head is an in-memory Document used when rendering a page's <head>.
type Head struct {
	Title       string
	Description string
}

// SetTitle implements Document.
func (h *Head) SetTitle(title string) { h.Title = title }

// SetDescription implements Document.
func (h *Head) SetDescription(description string) { h.Description = description }

// Meta returns the metadata currently held by the head.
func (h *Head) Meta() Meta {
	return Meta{Title: h.Title, Description: h.Description}
}

// Apply writes m to doc. A nil doc is ignored.
func Apply(doc Document, m Meta) {
	if doc == nil {
		return
	}
	doc.SetTitle(m.Title)
	doc.SetDescription(m.Description)
}
