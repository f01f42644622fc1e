package smithwaterman

import "github.com/katalvlaran/swalign/scoring"

// Align computes the local alignment of a and b.
// The scheme is scoring.DefaultScheme with opts applied on top.
//
// Example:
//
//	res, err := Align("AAAA", "AAAA")
//	// res.Score == 4, res.Sequences == []string{"AAAA"}
//
// Errors:
//   - scoring.ErrInvalidScheme when opts produce an unusable scheme.
func Align(a, b string, opts ...scoring.Option) (Result, error) {
	scheme, err := scoring.NewScheme(opts...)
	if err != nil {
		return Result{}, err
	}

	return AlignWith(a, b, scheme)
}

// AlignWith is Align with a ready-made scheme; the table is dropped on return.
func AlignWith(a, b string, scheme scoring.Scheme) (Result, error) {
	sm, err := NewScoringMatrix(a, b, scheme)
	if err != nil {
		return Result{}, err
	}
	sm.Fill()

	return Traceback(sm), nil
}
