package scoring

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMatch is added when two aligned symbols are equal.
	DefaultMatch = 1

	// DefaultMismatch is added when two aligned symbols differ.
	DefaultMismatch = -5

	// DefaultGap is added for a symbol aligned against nothing.
	DefaultGap = -10
)

// Scheme holds the three scores of a linear-gap local alignment.
//
// Fields:
//   - Match    — score for equal symbols (> 0).
//   - Mismatch — score for differing symbols (≤ 0).
//   - Gap      — score for a gap in either sequence (≤ 0).
type Scheme struct {
	Match    int `json:"match" yaml:"match"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Gap      int `json:"gap" yaml:"gap"`
}

// Option mutates a Scheme under construction. Last writer wins.
type Option func(*Scheme)

// DefaultScheme returns {Match: +1, Mismatch: -5, Gap: -10}.
func DefaultScheme() Scheme {
	return Scheme{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// WithMatch sets the match score.
func WithMatch(v int) Option { return func(s *Scheme) { s.Match = v } }

// WithMismatch sets the mismatch score.
func WithMismatch(v int) Option { return func(s *Scheme) { s.Mismatch = v } }

// WithGap sets the gap score.
func WithGap(v int) Option { return func(s *Scheme) { s.Gap = v } }

// NewScheme applies opts on top of DefaultScheme and validates the result.
// Implementation:
//   - Stage 1: start from DefaultScheme.
//   - Stage 2: apply options in order (last writer wins).
//   - Stage 3: Validate.
//
// Errors:
//   - ErrInvalidScheme (wrapped with the offending values).
func NewScheme(opts ...Option) (Scheme, error) {
	s := DefaultScheme()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}

	return s, nil
}

// Validate reports whether s can drive a local alignment.
// A non-positive Match would make every cell collapse to the zero floor, and a
// positive Mismatch or Gap would let scores grow without aligning anything.
func (s Scheme) Validate() error {
	if s.Match <= 0 || s.Mismatch > 0 || s.Gap > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScheme, s)
	}

	return nil
}

// Substitution returns Match if a == b and Mismatch otherwise.
func (s Scheme) Substitution(a, b byte) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// String renders the scheme as "match=+1 mismatch=-5 gap=-10".
func (s Scheme) String() string {
	return fmt.Sprintf("match=%+d mismatch=%+d gap=%+d", s.Match, s.Mismatch, s.Gap)
}

// Max4 returns the greatest of diag, up and left, floored at zero.
// It is the local-alignment reset: a cell never carries a negative score.
func Max4(diag, up, left int) int {
	best := 0
	if diag > best {
		best = diag
	}
	if up > best {
		best = up
	}
	if left > best {
		best = left
	}

	return best
}
