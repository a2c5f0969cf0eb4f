package highlight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// GrammarLoadError indicates that a syntax grammar
// could not be loaded or compiled.
type GrammarLoadError struct {
	// Name or path of the grammar.
	Grammar string

	Err error
}

func (e *GrammarLoadError) Error() string {
	return fmt.Sprintf("load grammar %q: %v", e.Grammar, e.Err)
}

func (e *GrammarLoadError) Unwrap() error { return e.Err }

// ThemeLoadError indicates that a color theme
// could not be resolved from a name or a file.
type ThemeLoadError struct {
	// Name or path of the theme.
	Theme string

	Err error
}

func (e *ThemeLoadError) Error() string {
	return fmt.Sprintf("load theme %q: %v", e.Theme, e.Err)
}

func (e *ThemeLoadError) Unwrap() error { return e.Err }

// LoadGrammar loads a syntax grammar from a Chroma lexer definition
// in XML format at the given path.
func LoadGrammar(path string) (chroma.Lexer, error) {
	lexer, err := chroma.NewXMLLexer(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, errtrace.Wrap(&GrammarLoadError{Grammar: path, Err: err})
	}
	return chroma.Coalesce(lexer), nil
}

// Builtin resolves one of the syntax grammars bundled with Chroma
// by language name or alias.
func Builtin(name string) (chroma.Lexer, error) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, errtrace.Wrap(&GrammarLoadError{
			Grammar: name,
			Err:     errors.New("unknown language"),
		})
	}
	return chroma.Coalesce(lexer), nil
}

// LoadTheme resolves a color theme from the Chroma style registry,
// falling back to reading name as the path
// to a Chroma style definition in XML format.
func LoadTheme(name string) (*chroma.Style, error) {
	if style, ok := styles.Registry[name]; ok {
		return style, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errtrace.Wrap(&ThemeLoadError{Theme: name, Err: err})
	}
	defer f.Close()

	style, err := chroma.NewXMLStyle(f)
	if err != nil {
		return nil, errtrace.Wrap(&ThemeLoadError{Theme: name, Err: err})
	}
	return style, nil
}
