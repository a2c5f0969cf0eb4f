package flagvalue

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFileSwitch(t *testing.T, args ...string) *FileSwitch {
	t.Helper()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	var fs FileSwitch
	fset.Var(&fs, "debug", "")
	require.NoError(t, fset.Parse(args))
	return &fs
}

func TestFileSwitch_parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string

		wantValue string
		wantBool  bool
	}{
		{desc: "not passed"},
		{
			desc:      "no value",
			give:      []string{"-debug"},
			wantValue: "-",
			wantBool:  true,
		},
		{
			desc:      "file name",
			give:      []string{"-debug=log.txt"},
			wantValue: "log.txt",
			wantBool:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fs := parseFileSwitch(t, tt.give...)
			assert.Equal(t, tt.wantValue, fs.Get())
			assert.Equal(t, tt.wantValue, fs.String())
			assert.Equal(t, tt.wantBool, fs.Bool())
		})
	}
}

func TestFileSwitch_Create(t *testing.T) {
	t.Parallel()

	t.Run("not passed", func(t *testing.T) {
		t.Parallel()

		fs := parseFileSwitch(t)

		w, done, err := fs.Create(new(bytes.Buffer))
		require.NoError(t, err)
		assert.True(t, w == io.Discard, "want io.Discard, got %v", w)
		require.NoError(t, done())
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		fs := parseFileSwitch(t, "-debug")
		fallback := new(bytes.Buffer)

		w, done, err := fs.Create(fallback)
		require.NoError(t, err)
		assert.True(t, w == fallback, "want the fallback, got %v", w)
		require.NoError(t, done())
	})

	t.Run("file name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "log.txt")
		fs := parseFileSwitch(t, "-debug="+path)

		w, done, err := fs.Create(new(bytes.Buffer))
		require.NoError(t, err)

		_, err = io.WriteString(w, "No elm highlighter. Skipping.")
		require.NoError(t, err)
		require.NoError(t, done())

		body, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "No elm highlighter. Skipping.", string(body))
	})

	t.Run("unwritable path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "log.txt")
		fs := parseFileSwitch(t, "-debug="+path)

		_, _, err := fs.Create(new(bytes.Buffer))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
