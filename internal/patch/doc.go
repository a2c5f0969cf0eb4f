// Package patch rewrites code blocks in static HTML documents,
// replacing their plain text with syntax-highlighted markup.
//
// A [Patcher] handles one document at a time:
// it finds <pre> blocks that wrap a code element,
// decides the language of each block with a [Classifier],
// and hands the block's source to the matching [Highlighter]
// from its [Registry].
// Blocks whose language has no highlighter are left alone
// and their keys are collected into a [Set].
// A [Walker] applies a Patcher to a whole directory tree.
package patch
