package content

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown is copy written in CommonMark. Raw HTML in the source is not
// passed through.
type Markdown string

var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
		)
	})
	return markdownInstance
}

// HTML renders the markdown to HTML. A conversion failure falls back to the
// escaped source text.
func (m Markdown) HTML() template.HTML {
	if m == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(m), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(string(m)) + "</p>")
	}
	return template.HTML(buf.String())
}

var markdownStripper = strings.NewReplacer("**", "", "__", "", "`", "")

// Plain returns the text with emphasis markers removed and paragraphs
// collapsed onto single lines.
func (m Markdown) Plain() string {
	paragraphs := strings.Split(strings.TrimSpace(string(m)), "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(markdownStripper.Replace(p)), " ")
	}
	return strings.Join(paragraphs, "\n\n")
}
