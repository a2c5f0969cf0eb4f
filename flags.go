package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/prelight/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for prelight.
type params struct {
	version bool
	help    Help

	Theme        string
	InlineStyles bool
	CSSFile      string

	Langs    string
	Grammars []langGrammar

	ClassPrefixes string
	Ext           string
	NoRecurse     bool

	Config string
	Debug  flagvalue.FileSwitch

	Dir string
}

// cliParser parses the command line arguments for prelight.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("prelight", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Highlighting:
	flag.StringVar(&p.Langs, "lang", "", "")
	flag.Var(flagvalue.ListOf(&p.Grammars), "grammar", "")
	flag.StringVar(&p.Theme, "theme", "plain", "")
	flag.BoolVar(&p.InlineStyles, "inline-styles", false, "")
	flag.StringVar(&p.CSSFile, "css", "", "")

	// Document discovery:
	flag.StringVar(&p.ClassPrefixes, "class-prefix", "", "")
	flag.StringVar(&p.Ext, "ext", ".html", "")
	flag.BoolVar(&p.NoRecurse, "no-recurse", false, "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		// Errors from the command line have already been printed.
		// Errors from the config file have not.
		if len(p.Config) > 0 && !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "prelight", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.InlineStyles && len(p.CSSFile) > 0 {
		fmt.Fprintln(cmd.Stderr, "Cannot use -css with -inline-styles.")
		return nil, errInvalidArguments
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.Dir = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args[1:])
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// langGrammar pairs a language name
// with the path to its grammar definition.
type langGrammar struct {
	Lang string
	Path string
}

var _ flag.Getter = (*langGrammar)(nil)

func (lg *langGrammar) Get() any { return lg }

func (lg *langGrammar) String() string {
	return fmt.Sprintf("%s=%s", lg.Lang, lg.Path)
}

func (lg *langGrammar) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return fmt.Errorf("expected form 'lang=grammar.xml'")
	}

	lg.Lang = s[:idx]
	lg.Path = s[idx+1:]
	return nil
}
