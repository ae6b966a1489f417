package content

import (
	"bytes"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

// Command is a shell command shown on the installation page. The commands
// are typed into a Windows Command Prompt.
type Command string

const (
	commandLexer = "batch"
	commandStyle = "github"
)

// HTML returns the command syntax-highlighted with inline styles.
func (c Command) HTML() template.HTML {
	if c == "" {
		return ""
	}

	lexer := lexers.Get(commandLexer)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(commandStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(c))
	if err != nil {
		return plainCommand(c)
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return plainCommand(c)
	}
	return template.HTML(buf.String())
}

// Terminal returns the command highlighted with 256-colour ANSI escapes.
func (c Command) Terminal() string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(c), commandLexer, "terminal256", "monokai"); err != nil {
		return string(c)
	}
	return buf.String()
}

func plainCommand(c Command) template.HTML {
	return template.HTML("<pre><code>" + template.HTMLEscapeString(string(c)) + "</code></pre>")
}
