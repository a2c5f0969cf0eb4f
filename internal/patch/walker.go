package patch

import (
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
)

// FilePatcher rewrites the code blocks of a single HTML document,
// reporting the languages for which no highlighter was registered.
type FilePatcher interface {
	PatchFile(path string) (Set, error)
}

var _ FilePatcher = (*Patcher)(nil)

// Walker applies a [FilePatcher] to the HTML documents
// under a directory.
type Walker struct {
	// Patcher invoked for each document.
	Patcher FilePatcher

	// Logger to write regular log messages to.
	Log *log.Logger

	// Ext is the file extension of HTML documents.
	//
	// Defaults to ".html".
	Ext string

	// Recurse specifies whether subdirectories are visited.
	Recurse bool
}

// Walk patches every HTML document under dir,
// returning the union of the missing-language sets
// reported for the documents.
//
// The first document that fails to patch stops the walk.
// Documents already patched stay patched.
func (w *Walker) Walk(dir string) (Set, error) {
	ext := w.Ext
	if ext == "" {
		ext = ".html"
	}

	missing := make(Set)
	if err := w.walk(dir, ext, missing); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return missing, nil
}

func (w *Walker) walk(dir, ext string, missing Set) error {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return errtrace.Wrap(err)
	}

	for _, ent := range ents {
		path := filepath.Join(dir, ent.Name())
		switch {
		case ent.IsDir():
			if !w.Recurse {
				continue
			}
			if err := w.walk(path, ext, missing); err != nil {
				return errtrace.Wrap(err)
			}

		case filepath.Ext(ent.Name()) == ext:
			w.Log.Printf("Patching %v", path)
			m, err := w.Patcher.PatchFile(path)
			if err != nil {
				return errtrace.Wrap(err)
			}
			missing.Union(m)
		}
	}
	return nil
}
