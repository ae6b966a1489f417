package site

// Router owns the current page selector. It is not safe for concurrent use;
// each request or UI session owns its own Router.
type Router struct {
	current  Page
	doc      Document
	onChange func(Page)
}

// Option configures a Router.
type Option func(*Router)

// WithOnChange registers a callback invoked after every selector change.
func WithOnChange(fn func(Page)) Option {
	return func(r *Router) {
		r.onChange = fn
	}
}

// NewRouter returns a router positioned at Home with the home metadata
// already applied to doc.
func NewRouter(doc Document, opts ...Option) *Router {
	r := &Router{
		current: Home,
		doc:     doc,
	}
	for _, opt := range opts {
		opt(r)
	}
	Apply(r.doc, MetaFor(r.current))
	return r
}

// Current returns the active page.
func (r *Router) Current() Page {
	return r.current
}

// Meta returns the metadata of the active page.
func (r *Router) Meta() Meta {
	return MetaFor(r.current)
}

// Navigate makes target the active page and applies its metadata.
// Unknown targets fall back to Home. Navigating to the active page is a no-op.
func (r *Router) Navigate(target Page) {
	if !target.Valid() {
		target = Home
	}
	if target == r.current {
		return
	}
	r.current = target
	Apply(r.doc, MetaFor(target))
	if r.onChange != nil {
		r.onChange(target)
	}
}

// NavigateTo parses id and navigates to the resulting page.
func (r *Router) NavigateTo(id string) {
	r.Navigate(Parse(id))
}

// Crumb is one entry of the top-level breadcrumb navigation.
type Crumb struct {
	Page   Page
	Label  string
	Active bool
}

// Breadcrumb returns the top-level navigation entries with the active page marked.
func (r *Router) Breadcrumb() []Crumb {
	return BreadcrumbFor(r.current)
}

// BreadcrumbFor returns the top-level navigation entries for active.
func BreadcrumbFor(active Page) []Crumb {
	crumbs := make([]Crumb, 0, len(pages))
	for _, p := range pages {
		crumbs = append(crumbs, Crumb{
			Page:   p,
			Label:  p.Label(),
			Active: p == active,
		})
	}
	return crumbs
}
