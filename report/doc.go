// Package report turns alignment results into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (text blocks, JSON Lines).
//   - The alignment core stays domain-only; pipeline stays orchestration-only.
//   - Formats are looked up by name through a small registry (New, Formats).
//
// The "text" format is one two-line block per pair:
//
//	GATTACA - GCATGCU
//	Score: 2 Sequence(s): "AT" "CA"
//
// With score 0 the second line stops right after "Sequence(s):".
package report
