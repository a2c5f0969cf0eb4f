package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/prelight/internal/errdefer"
	"go.abhg.dev/prelight/internal/highlight"
	"go.abhg.dev/prelight/internal/patch"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("prelight: %v", err)
		return 1
	}
	return 0
}

var _ patch.Highlighter = (*highlight.Highlighter)(nil)

func (cmd *mainCmd) run(opts *params) (err error) {
	style, err := highlight.LoadTheme(opts.Theme)
	if err != nil {
		return errtrace.Wrap(err)
	}

	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugw, "", 0)
	}

	langs := make(patch.Registry)
	addLang := func(lang string, hl *highlight.Highlighter) error {
		if len(lang) == 0 {
			return errtrace.New("empty language name")
		}
		if _, ok := langs[lang]; ok {
			return errtrace.Errorf("duplicate language %q", lang)
		}
		langs[lang] = hl
		return nil
	}

	for _, lang := range splitList(opts.Langs) {
		lexer, err := highlight.Builtin(lang)
		if err != nil {
			return errtrace.Wrap(err)
		}
		err = addLang(lang, &highlight.Highlighter{
			Lexer:        lexer,
			Style:        style,
			InlineStyles: opts.InlineStyles,
		})
		if err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, lg := range opts.Grammars {
		lexer, err := highlight.LoadGrammar(lg.Path)
		if err != nil {
			return errtrace.Wrap(err)
		}
		err = addLang(lg.Lang, &highlight.Highlighter{
			Lexer:        lexer,
			Style:        style,
			InlineStyles: opts.InlineStyles,
		})
		if err != nil {
			return errtrace.Wrap(err)
		}
	}

	classify := patch.DefaultClassifier
	if prefixes := splitList(opts.ClassPrefixes); len(prefixes) > 0 {
		classify = patch.PrefixClassifier(prefixes...)
	}

	runner := Runner{
		Log: cmd.log,
		Walker: &patch.Walker{
			Patcher: &patch.Patcher{
				Langs:    langs,
				Classify: classify,
				Log:      cmd.log,
				DebugLog: debugLog,
			},
			Log:     cmd.log,
			Ext:     opts.Ext,
			Recurse: !opts.NoRecurse,
		},
		Styler: &highlight.Highlighter{
			Style:        style,
			InlineStyles: opts.InlineStyles,
		},
		CSSFile: opts.CSSFile,
	}

	return errtrace.Wrap(runner.Run(opts.Dir))
}

// splitList splits a comma-separated flag value,
// treating an empty value as an empty list.
func splitList(s string) []string {
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, ",")
}
