// Package docs generates documentation for prelight.
//
// The Go package exists just to isolate the documentation
// from the actual code,
// and to add any dependencies needed for documentation generation.
package docs

import _ "github.com/fluhus/godoc-tricks"
