package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=value" forms.
// A value names a file to create;
// no value selects a fallback writer instead.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name for this flag,
// or "-" if the flag was passed without a value.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the file name for this flag,
// or "-" if the flag was passed without a value.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	// The flag package feeds "true" for a value-less occurrence.
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was passed at all.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination selected by this flag,
// returning a writer to it and a function that releases it.
//
//   - the flag wasn't passed: returns [io.Discard]
//   - the flag was passed without a value: returns the fallback
//   - the flag was passed with a value: creates the named file
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
