// Package errdefer provides functions for cleanup operations
// that run in a defer statement,
// but whose failures still belong in the function's returned error.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// joining any error it returns with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	Run(err, closer.Close)
}

// Run calls the given function,
// joining any error it returns with the given error.
//
// Use it inside a defer statement with a named return
// for cleanup that is a plain function rather than an [io.Closer].
func Run(err *error, f func() error) {
	*err = errors.Join(*err, f())
}
