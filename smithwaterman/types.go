// Package smithwaterman defines result and traceback types.
package smithwaterman

// MismatchSymbol marks a traceback step whose aligned symbols differ.
const MismatchSymbol = '?'

// Cell addresses one scoring-matrix entry. I indexes the first sequence
// (rows), J the second (columns); row 0 and column 0 are the zero boundary.
type Cell struct {
	I, J int
}

// Result is the outcome of aligning one pair.
//
// Fields:
//   - Score     — best local score in the matrix (≥ 0).
//   - Sequences — distinct reconstructed substrings in ascending order.
//     Nil whenever Score is 0.
type Result struct {
	Score     int
	Sequences []string
}

// Direction is a traceback move from a cell to one of its predecessors.
//
//   - Diagonal — (i-1, j-1): both symbols consumed.
//   - Up       — (i-1, j):   gap in the second sequence.
//   - Left     — (i, j-1):   gap in the first sequence.
type Direction int

const (
	// Diagonal moves to (i-1, j-1).
	Diagonal Direction = iota

	// Up moves to (i-1, j).
	Up

	// Left moves to (i, j-1).
	Left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
