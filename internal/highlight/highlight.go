package highlight

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Highlighter turns source code into highlighted HTML.
type Highlighter struct {
	// Lexer tokenizes source code fed to [Highlighter.Highlight].
	//
	// Optional if the highlighter is used
	// only to generate style sheets.
	Lexer chroma.Lexer

	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// InlineStyles specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	InlineStyles bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(!h.InlineStyles),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter uses inline styles, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if h.InlineStyles {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.Style))
}

// Highlight renders the given source code into HTML.
// The returned markup is a single <pre> element.
//
// The highlighter must hold a Lexer for Highlight to be usable.
func (h *Highlighter) Highlight(src []byte) (string, error) {
	h.init()

	tokens, err := chroma.Tokenise(h.Lexer, nil, string(src))
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var buf bytes.Buffer
	if h.InlineStyles {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		fmt.Fprintf(&buf, "<pre style=%q>", style)
	} else {
		fmt.Fprintf(&buf, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
	}
	if err := h.formatter.Format(&buf, h.Style, chroma.Literator(tokens...)); err != nil {
		return "", errtrace.Wrap(err)
	}
	buf.WriteString("</pre>")
	return buf.String(), nil
}
