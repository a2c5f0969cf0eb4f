// Package highlight provides support to highlight source code blocks.
// It uses the Chroma library to do this work.
//
// Syntax grammars are Chroma lexers,
// loaded from XML definitions on disk with [LoadGrammar]
// or picked from the lexers bundled with Chroma with [Builtin].
// Color themes are Chroma styles, resolved with [LoadTheme].
// A [Highlighter] binds one grammar and one theme together.
package highlight
