package main

import (
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/prelight/internal/errdefer"
	"go.abhg.dev/prelight/internal/highlight"
	"go.abhg.dev/prelight/internal/patch"
)

// Walker patches the HTML documents under a directory,
// reporting the languages for which no grammar was registered.
type Walker interface {
	Walk(dir string) (patch.Set, error)
}

var _ Walker = (*patch.Walker)(nil)

// Styler writes the style sheet for a color theme.
type Styler interface {
	WriteCSS(io.Writer) error
}

var _ Styler = (*highlight.Highlighter)(nil)

// Runner patches the documents under a user-specified directory.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log     *log.Logger
	Walker  Walker
	Styler  Styler
	CSSFile string
}

// Run writes the style sheet, if requested,
// and patches the documents under dir.
func (r *Runner) Run(dir string) error {
	if f := r.CSSFile; len(f) > 0 {
		if err := r.writeCSS(f); err != nil {
			return errtrace.Wrap(err)
		}
	}

	missing, err := r.Walker.Walk(dir)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if len(missing) > 0 {
		r.Log.Printf("No grammars registered for: %v",
			strings.Join(missing.Sorted(), ", "))
	}
	return nil
}

func (r *Runner) writeCSS(path string) (err error) {
	r.Log.Printf("Writing style sheet %v", path)

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(r.Styler.WriteCSS(f))
}
