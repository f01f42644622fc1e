package wordlist_test

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/swalign/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_LinePolicy covers trailing newlines, CRLF and blank lines.
func TestRead_LinePolicy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty input", in: "", want: nil},
		{name: "no trailing newline", in: "alpha\nbeta", want: []string{"alpha", "beta"}},
		{name: "trailing newline adds nothing", in: "alpha\nbeta\n", want: []string{"alpha", "beta"}},
		{name: "crlf", in: "alpha\r\nbeta\r\n", want: []string{"alpha", "beta"}},
		{name: "interior blank kept", in: "alpha\n\nbeta\n", want: []string{"alpha", "", "beta"}},
		{name: "trailing blank line kept", in: "alpha\n\n", want: []string{"alpha", ""}},
		{name: "lone newline", in: "\n", want: []string{""}},
		{name: "spaces are symbols", in: " a \n", want: []string{" a "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wordlist.Read(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestRead_SkipBlank drops every empty line.
func TestRead_SkipBlank(t *testing.T) {
	got, err := wordlist.Read(strings.NewReader("\nalpha\n\r\n\nbeta\n\n"), wordlist.WithSkipBlank())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, got)
}

// TestRead_LongLine accepts lines far beyond bufio.Scanner's default limit.
func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("A", 200_000)
	got, err := wordlist.Read(strings.NewReader(long + "\nB\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 200_000)
}

// TestRead_Error wraps reader failures with ErrRead.
func TestRead_Error(t *testing.T) {
	_, err := wordlist.Read(iotest.ErrReader(errors.New("boom")))
	assert.ErrorIs(t, err, wordlist.ErrRead)
}

// TestReadFile_Plain reads a plain file from disk.
func TestReadFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("beta\nalpha\n"), 0o644))

	got, err := wordlist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, got)
}

// TestReadFile_Gzip reads a gzip file, by suffix and by magic bytes.
func TestReadFile_Gzip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"words.txt.gz", "words.bin"} {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := gzip.NewWriter(f)
		_, err = zw.Write([]byte("GATTACA\nGCATGCU\n"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		got, err := wordlist.ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, []string{"GATTACA", "GCATGCU"}, got, name)
	}
}

// TestReadFile_Missing reports ErrOpen for an unreadable path.
func TestReadFile_Missing(t *testing.T) {
	_, err := wordlist.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, wordlist.ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestReadFile_BadGzip reports ErrOpen for a .gz file that is not gzip.
func TestReadFile_BadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.gz")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := wordlist.ReadFile(path)
	assert.ErrorIs(t, err, wordlist.ErrOpen)
}
