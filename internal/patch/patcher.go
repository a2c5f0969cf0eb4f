package patch

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrPatchFailed is reported by [Patcher.PatchFile]
// when a document could not be patched for any reason.
// The cause is logged, not returned.
var ErrPatchFailed = errors.New("patch failed")

// ParseError indicates that a document
// could not be read or parsed as HTML.
type ParseError struct{ Err error }

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError indicates that a patched document
// could not be serialized or written back to disk.
type SerializeError struct{ Err error }

func (e *SerializeError) Error() string {
	return fmt.Sprintf("write document: %v", e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

var _preBlock = cascadia.MustCompile("pre")

// Patcher rewrites the code blocks of HTML documents in place.
type Patcher struct {
	// Langs are the highlighters available to the patcher,
	// indexed by language key.
	Langs Registry

	// Classify resolves the language key of a code block
	// from its class attribute.
	//
	// Defaults to [DefaultClassifier].
	Classify Classifier

	// Logger to write regular log messages to.
	Log *log.Logger

	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// PatchFile highlights the code blocks
// in the HTML document at the given path,
// overwriting the file in place.
//
// It returns the set of language keys for which blocks were found
// but no highlighter was registered.
// Those blocks are left untouched.
//
// If the document cannot be patched,
// PatchFile logs the cause and reports [ErrPatchFailed]
// without modifying the file.
func (p *Patcher) PatchFile(path string) (Set, error) {
	missing := make(Set)
	if err := p.patchFile(path, missing); err != nil {
		p.Log.Printf("[%v] %v", path, err)
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", path, ErrPatchFailed))
	}
	return missing, nil
}

func (p *Patcher) patchFile(path string, missing Set) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(&ParseError{Err: err})
	}

	doc, err := html.Parse(bytes.NewReader(bs))
	if err != nil {
		return errtrace.Wrap(&ParseError{Err: err})
	}

	// Replacements happen only after all blocks are found
	// so that the traversal never sees substituted markup.
	for _, block := range codeBlocks(doc) {
		if err := p.patchBlock(path, block, missing); err != nil {
			return errtrace.Wrap(err)
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return errtrace.Wrap(&SerializeError{Err: err})
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errtrace.Wrap(&SerializeError{Err: err})
	}
	return nil
}

// codeBlocks finds the outermost pre elements in the document.
// It does not descend into the blocks it finds.
func codeBlocks(doc *html.Node) []*html.Node {
	var (
		blocks []*html.Node
		visit  func(*html.Node)
	)
	visit = func(n *html.Node) {
		if _preBlock.Match(n) {
			blocks = append(blocks, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return blocks
}

func (p *Patcher) patchBlock(path string, block *html.Node, missing Set) error {
	code := block.FirstChild
	if code == nil || code.Type != html.ElementNode {
		return nil // bare text, not a wrapped code block
	}

	key, ok := p.classify(attr(block, "class"))
	if !ok {
		return nil
	}

	hl, ok := p.Langs[key]
	if !ok {
		if p.DebugLog != nil {
			p.DebugLog.Printf("[%v] No %v highlighter. Skipping.", path, key)
		}
		missing.Add(key)
		return nil
	}

	// The parser has already unescaped entities in text nodes,
	// so this is the source exactly as authored.
	src := []byte(allText(code))
	markup, err := hl.Highlight(src)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("highlight %v block %.40q: %w", key, src, err))
	}

	frag, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     block.Parent.Data,
		DataAtom: block.Parent.DataAtom,
	})
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("parse %v block %.40q: %w", key, src, err))
	}

	for _, n := range frag {
		block.Parent.InsertBefore(n, block)
	}
	block.Parent.RemoveChild(block)
	return nil
}

func (p *Patcher) classify(class string) (string, bool) {
	classify := p.Classify
	if classify == nil {
		classify = DefaultClassifier
	}
	return classify(class)
}

// attr returns the value of the named attribute of the node,
// or an empty string if the attribute is absent.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// allText returns the text contents of the subtree rooted at n.
func allText(n *html.Node) string {
	var (
		sb    strings.Builder
		visit func(*html.Node)
	)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for n := n.FirstChild; n != nil; n = n.NextSibling {
			visit(n)
		}
	}
	visit(n)
	return sb.String()
}
