package smithwaterman

import "sort"

// Traceback recovers every optimal local alignment from a filled table.
//
// Algorithm Outline:
//  1. Optima: scan cells (1..m, 1..n) row-major, tracking the running maximum
//     (initially 0). A strictly greater cell replaces the candidate list, an
//     equal one is appended.
//  2. If the maximum is 0, return Result{Score: 0}: zero cells are not traced.
//  3. From each candidate, walk back until the current cell holds 0:
//     - a[i-1] == b[j-1]: prepend the symbol and move diagonally;
//     - otherwise prepend MismatchSymbol and move to the predecessor chosen
//     by NextStep (greatest value, ties diagonal > up > left).
//  4. Collect the substrings into a set and emit them in ascending order.
//
// A table that has not been filled yet is filled first.
//
// Complexity:
//
//	Time   = O(m·n + k·(m+n)) for k optimal cells
//	Memory = O(k·(m+n)) for the substrings
func Traceback(sm *ScoringMatrix) Result {
	sm.Fill()

	best, cells := Optima(sm)
	if best == 0 {
		return Result{}
	}

	seen := make(map[string]struct{}, len(cells))
	for _, c := range cells {
		seen[sm.walk(c)] = struct{}{}
	}

	seqs := make([]string, 0, len(seen))
	for s := range seen {
		seqs = append(seqs, s)
	}
	sort.Strings(seqs)

	return Result{Score: best, Sequences: seqs}
}

// Optima returns the maximum interior score and every cell holding it, in
// row-major order. When the maximum is 0 the cell list is nil.
func Optima(sm *ScoringMatrix) (best int, cells []Cell) {
	rows, cols := sm.Rows(), sm.Cols()
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			v := sm.at(i, j)
			switch {
			case v > best:
				best = v
				cells = append(cells[:0], Cell{I: i, J: j})
			case v == best && best > 0:
				cells = append(cells, Cell{I: i, J: j})
			}
		}
	}

	return best, cells
}

// NextStep picks the predecessor with the greatest value.
// Ties go to Diagonal first, then Up, then Left.
func NextStep(diag, up, left int) Direction {
	if diag >= up && diag >= left {
		return Diagonal
	}
	if up >= left {
		return Up
	}

	return Left
}

// walk rebuilds the substring that ends at start. Symbols are collected in
// reverse and flipped once at the end.
func (sm *ScoringMatrix) walk(start Cell) string {
	i, j := start.I, start.J
	rev := make([]byte, 0, i+j)
	for sm.at(i, j) != 0 {
		if sm.a[i-1] == sm.b[j-1] {
			rev = append(rev, sm.a[i-1])
			i, j = i-1, j-1

			continue
		}

		rev = append(rev, MismatchSymbol)
		switch NextStep(sm.at(i-1, j-1), sm.at(i-1, j), sm.at(i, j-1)) {
		case Diagonal:
			i, j = i-1, j-1
		case Up:
			i--
		case Left:
			j--
		}
	}

	// reverse in-place
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return string(rev)
}
