package smithwaterman

import (
	"github.com/katalvlaran/swalign/matrix"
	"github.com/katalvlaran/swalign/scoring"
)

// ScoringMatrix — Smith–Waterman dynamic-programming table
//
// Description:
//
//	Holds, for one pair (a, b), the best local-alignment score ending at
//	every position pair. Cell (i,j) for i,j ≥ 1 scores alignments that end
//	at a[i-1] and b[j-1].
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Allocate (m+1)x(n+1) table H, all zero.
//  2. Row 0 and column 0 stay 0 forever (empty prefix boundary).
//  3. For i = 1..m:
//     For j = 1..n:
//     sub  = Match if a[i-1] == b[j-1] else Mismatch
//     H[i][j] = max(H[i-1][j-1] + sub,
//     H[i-1][j]   + Gap,
//     H[i][j-1]   + Gap,
//     0)
//
// Invariants:
//   - every cell is ≥ 0;
//   - boundary cells are 0;
//   - (i-1,j) and (i,j-1) are computed before (i,j) (row-major order).
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n), one contiguous buffer
type ScoringMatrix struct {
	a, b   string
	scheme scoring.Scheme
	grid   *matrix.Dense
	filled bool
}

// NewScoringMatrix allocates the zeroed (len(a)+1)×(len(b)+1) table for a and b.
// Empty sequences are legal. The only error is an invalid scheme
// (scoring.ErrInvalidScheme).
func NewScoringMatrix(a, b string, scheme scoring.Scheme) (*ScoringMatrix, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	// Dimensions are always ≥ 1, so NewDense cannot fail here.
	grid, err := matrix.NewDense(len(a)+1, len(b)+1)
	if err != nil {
		return nil, err
	}

	return &ScoringMatrix{a: a, b: b, scheme: scheme, grid: grid}, nil
}

// Fill computes every interior cell with the Smith–Waterman recurrence.
// Calling Fill again is a no-op.
func (sm *ScoringMatrix) Fill() {
	if sm.filled {
		return
	}
	cols := sm.grid.Cols()
	h := sm.grid.Data()
	gap := sm.scheme.Gap

	for i := 1; i <= len(sm.a); i++ {
		prev := (i - 1) * cols // offset of row i-1
		curr := i * cols       // offset of row i
		ai := sm.a[i-1]
		for j := 1; j <= len(sm.b); j++ {
			h[curr+j] = scoring.Max4(
				h[prev+j-1]+sm.scheme.Substitution(ai, sm.b[j-1]), // diagonal
				h[prev+j]+gap,   // gap in b
				h[curr+j-1]+gap, // gap in a
			)
		}
	}
	sm.filled = true
}

// Filled reports whether Fill has run.
func (sm *ScoringMatrix) Filled() bool { return sm.filled }

// Rows returns len(a)+1.
func (sm *ScoringMatrix) Rows() int { return sm.grid.Rows() }

// Cols returns len(b)+1.
func (sm *ScoringMatrix) Cols() int { return sm.grid.Cols() }

// At returns H[i][j] or a wrapped matrix.ErrOutOfRange.
func (sm *ScoringMatrix) At(i, j int) (int, error) { return sm.grid.At(i, j) }

// Scheme returns the scores the table was built with.
func (sm *ScoringMatrix) Scheme() scoring.Scheme { return sm.scheme }

// Sequences returns the pair the table was built for.
func (sm *ScoringMatrix) Sequences() (a, b string) { return sm.a, sm.b }

// String dumps the table one row per line, e.g. "[0, 0]\n[0, 1]\n".
func (sm *ScoringMatrix) String() string { return sm.grid.String() }

// at is the unchecked accessor used by traceback; callers stay in bounds.
func (sm *ScoringMatrix) at(i, j int) int {
	return sm.grid.Data()[sm.grid.Offset(i, j)]
}
