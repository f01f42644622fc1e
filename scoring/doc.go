// Package scoring defines the substitution and gap scores used by local
// alignment.
//
// A Scheme is a plain value: {Match, Mismatch, Gap}. The default scheme is
// {+1, -5, -10}. Schemes are built from DefaultScheme plus functional options
// and validated once, so the alignment recurrence never has to check them.
//
//	s, err := scoring.NewScheme(scoring.WithGap(-2))
//	if err != nil {
//	  // errors.Is(err, scoring.ErrInvalidScheme)
//	}
//	s.Substitution('A', 'A') // 1
package scoring
