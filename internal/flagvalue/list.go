// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Getter is a constraint satisfied by pointers to types
// that implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// List is a generic flag.Getter for flags that may be repeated,
// gathering the parsed occurrences into a slice.
type List[T any, PT Getter[T]] []T

// ListOf wraps a slice of flag.Getter values
// so that each occurrence of the flag appends to it:
//
//	flag.Var(flagvalue.ListOf(&grammars), "grammar", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values gathered so far
// as a slice of the underlying type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns the values gathered so far,
// separated by semicolons.
func (lv *List[T, PT]) String() string {
	var sb strings.Builder
	for i, v := range *lv {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Set parses a single occurrence of the flag
// and appends it to the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
