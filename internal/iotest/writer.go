package iotest

import (
	"bytes"
	"io"
	"testing"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB,
// logging each line of the input as its own entry.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

// Prefixed is a variant of [Writer] that opens every logged line
// with the given prefix.
// Use it to tell apart streams that share a test log.
func Prefixed(t testing.TB, prefix string) io.Writer {
	return &writer{t: t, prefix: prefix}
}

type writer struct {
	t      testing.TB
	prefix string
}

func (w *writer) Write(b []byte) (int, error) {
	// Anything less than the full length
	// becomes an ErrShortWrite when io.Copy feeds this writer.
	n := len(b)
	for _, line := range bytes.Split(bytes.TrimSuffix(b, _newline), _newline) {
		w.t.Logf("%s%s", w.prefix, line)
	}
	return n, nil
}
