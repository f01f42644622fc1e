// Package smithwaterman computes Smith–Waterman local alignments between two
// symbol sequences and recovers every optimal aligned substring.
//
// 🚀 What is Smith–Waterman?
//
//	A dynamic-programming local alignment: it finds the best-scoring pair of
//	contiguous stretches of two sequences, without forcing either sequence to
//	align end to end. Scores never drop below zero; a zero restarts the
//	alignment. It is widely used in:
//	  • Sequence similarity search
//	  • Fuzzy substring matching between words and identifiers
//	  • Plagiarism and near-duplicate detection
//
// ✨ Key features:
//   - explicit scoring.Scheme (default match +1, mismatch -5, gap -10)
//   - single contiguous (m+1)×(n+1) matrix, released with the job
//   - all optimal end cells are traced, not only the first one
//   - deterministic predecessor tie-break: diagonal > up > left
//   - distinct substrings, ascending order, '?' marks a mismatch step
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/swalign/smithwaterman"
//
//	res, err := smithwaterman.Align("GATTACA", "GCATGCU")
//	// res.Score == 2, res.Sequences == []string{"AT", "CA"}
//
//	// step by step:
//	sm, _ := smithwaterman.NewScoringMatrix(a, b, scoring.DefaultScheme())
//	sm.Fill()
//	res = smithwaterman.Traceback(sm)
//
// Performance:
//
//   - Fill:      O(m·n) time, O(m·n) memory
//   - Traceback: O(m·n + k·(m+n)) for k optimal cells
//
// Symbols are bytes; inputs are opaque and carry no alphabet semantics.
package smithwaterman
