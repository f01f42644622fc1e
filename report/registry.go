package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/swalign/smithwaterman"
)

// ErrUnknownFormat indicates that no writer is registered under a name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Writer serializes one aligned pair at a time. Output may be buffered until Flush.
// Writers are not safe for concurrent use.
type Writer interface {
	Write(a, b string, res smithwaterman.Result) error
	Flush() error
}

// Factory builds a Writer over w.
type Factory func(w io.Writer) Writer

// Format names.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// writers is the format → factory registry; entries are added in init blocks.
var writers = map[string]Factory{} //nolint: gochecknoglobals

// Register adds or replaces a format (last wins).
func Register(format string, f Factory) { writers[format] = f }

// Lookup returns the factory registered under format.
func Lookup(format string) (Factory, error) {
	f, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownFormat, format, Formats())
	}

	return f, nil
}

// New returns the writer registered under format.
func New(format string, w io.Writer) (Writer, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}

	return f(w), nil
}

// Formats lists registered format names in ascending order.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
