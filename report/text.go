package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/swalign/smithwaterman"
)

func init() { Register(FormatText, NewText) }

// ---------- Formatting literals ----------
const (
	_pairSep   = " - "
	_scoreHead = "Score: "
	_seqHead   = " Sequence(s):"
)

// textWriter emits the two-line block format.
type textWriter struct {
	bw *bufio.Writer
}

// NewText returns the "text" writer.
func NewText(w io.Writer) Writer { return &textWriter{bw: bufio.NewWriter(w)} }

// Write appends the block for (a, b). Sequences are listed only when the
// score is positive, each wrapped in double quotes and preceded by a space.
func (t *textWriter) Write(a, b string, res smithwaterman.Result) error {
	t.bw.WriteString(a)
	t.bw.WriteString(_pairSep)
	t.bw.WriteString(b)
	t.bw.WriteByte('\n')

	t.bw.WriteString(_scoreHead)
	t.bw.WriteString(strconv.Itoa(res.Score))
	t.bw.WriteString(_seqHead)
	if res.Score != 0 {
		for _, s := range res.Sequences {
			t.bw.WriteString(" \"")
			t.bw.WriteString(s)
			t.bw.WriteByte('"')
		}
	}
	// bufio.Writer keeps the first error; surface it here.
	return t.bw.WriteByte('\n')
}

func (t *textWriter) Flush() error { return t.bw.Flush() }

// FormatBlock renders one text block as a string.
func FormatBlock(a, b string, res smithwaterman.Result) string {
	var sb strings.Builder
	w := NewText(&sb)
	_ = w.Write(a, b, res)
	_ = w.Flush()

	return sb.String()
}
