package wordlist

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// gzipMagic is the two-byte gzip header.
var gzipMagic = []byte{0x1f, 0x8b}

// Option tunes Read / ReadFile.
type Option func(*options)

type options struct {
	skipBlank bool
}

// WithSkipBlank drops empty lines instead of keeping them as empty words.
func WithSkipBlank() Option { return func(o *options) { o.skipBlank = true } }

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Read returns one word per line of r, in input order.
// bufio.Reader is used rather than bufio.Scanner so arbitrarily long lines
// are accepted.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	o := gather(opts)
	br := bufio.NewReader(r)

	var words []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		eof := err == io.EOF
		if eof && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" || !o.skipBlank {
			words = append(words, line)
		}
		if eof {
			break
		}
	}

	return words, nil
}

// ReadFile opens path (plain or gzip) and reads it with Read.
//
// Errors:
//   - ErrOpen when the file cannot be opened or its gzip header is bad.
//   - ErrRead on I/O failures after opening.
func ReadFile(path string, opts ...Option) ([]string, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	words, err := Read(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// open returns a reader over path, decompressing gzip when the name or the
// first two bytes say so.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	br := bufio.NewReader(f)
	head, _ := br.Peek(len(gzipMagic))
	if !strings.HasSuffix(path, ".gz") && !bytes.Equal(head, gzipMagic) {
		return readCloser{Reader: br, closer: f}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}

	return readCloser{Reader: zr, closer: multiCloser{zr, f}}, nil
}

type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r readCloser) Close() error { return r.closer.Close() }

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
