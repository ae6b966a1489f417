// Package templates provides the embedded page templates, stylesheet and favicon.
package templates

import "embed"

// FS contains the HTML templates, the stylesheet and the favicon.
//
//go:embed *.html *.css *.svg
var FS embed.FS
