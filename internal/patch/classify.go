package patch

import "strings"

// Classifier decides which language a code block is written in
// based on the block's class attribute.
// It reports false if the attribute names no language at all.
//
// A Classifier must be a pure function,
// and must never report ok with an empty key.
type Classifier func(class string) (key string, ok bool)

// DefaultClassifier recognizes the "language-" and "lang-" prefixes
// conventionally used to mark up code blocks, as in:
//
//	<pre class="lang-go"><code>...</code></pre>
var DefaultClassifier = PrefixClassifier("language-", "lang-")

// PrefixClassifier builds a Classifier that scans the class attribute
// for a token starting with one of the given prefixes,
// reporting whatever follows the prefix as the language key.
//
// Tokens are inspected left to right,
// and for each token, prefixes are tried in the order given.
func PrefixClassifier(prefixes ...string) Classifier {
	return func(class string) (string, bool) {
		for _, token := range strings.Fields(class) {
			for _, prefix := range prefixes {
				if key, ok := strings.CutPrefix(token, prefix); ok {
					if len(key) > 0 {
						return key, true
					}
					break // bare prefix names no language
				}
			}
		}
		return "", false
	}
}
