package report

import (
	"bufio"
	"io"

	"github.com/go-faster/jx"

	"github.com/katalvlaran/swalign/smithwaterman"
)

func init() { Register(FormatJSONL, NewJSONL) }

// jsonlWriter emits one compact JSON object per line:
//
//	{"a":"AB","b":"AB","score":2,"sequences":["AB"]}
//
// "sequences" is always an array, empty when the score is 0.
type jsonlWriter struct {
	bw  *bufio.Writer
	enc jx.Encoder
}

// NewJSONL returns the "jsonl" writer.
func NewJSONL(w io.Writer) Writer { return &jsonlWriter{bw: bufio.NewWriter(w)} }

func (j *jsonlWriter) Write(a, b string, res smithwaterman.Result) error {
	e := &j.enc
	e.Reset()
	e.ObjStart()
	e.FieldStart("a")
	e.Str(a)
	e.FieldStart("b")
	e.Str(b)
	e.FieldStart("score")
	e.Int(res.Score)
	e.FieldStart("sequences")
	e.ArrStart()
	if res.Score != 0 {
		for _, s := range res.Sequences {
			e.Str(s)
		}
	}
	e.ArrEnd()
	e.ObjEnd()

	if _, err := j.bw.Write(e.Bytes()); err != nil {
		return err
	}

	return j.bw.WriteByte('\n')
}

func (j *jsonlWriter) Flush() error { return j.bw.Flush() }
