// Package swalign aligns every pair of words in a list with the
// Smith–Waterman local alignment algorithm and reports, per pair, the best
// local score and every distinct optimal aligned substring.
//
// 🚀 What is swalign?
//
//	A small toolkit plus a CLI that brings together:
//		• Scoring: match / mismatch / gap scheme with validated defaults
//		• Matrix: a single contiguous row-major int grid per alignment
//		• Alignment: fill, find all optimal cells, trace back each one
//		• Word lists: plain or gzip input, sorted, all (i<j) pairs
//		• Pipeline: a bounded worker pool that delivers results in pair order
//		• Reports: the two-line text block format and JSON Lines
//
// ✨ Why swalign?
//
//   - Deterministic – fixed tie-break, sorted output, same bytes for any worker count
//   - Pure algorithms – the core packages never log and never touch the filesystem
//   - Extensible – register extra report formats, hook into every aligned pair
//
// Under the hood, everything is organized under these subpackages:
//
//	scoring/       — Scheme, defaults, substitution score, the zero-floored max
//	matrix/        — Dense: flat (rows×cols) int buffer with checked accessors
//	smithwaterman/ — ScoringMatrix (fill) + Traceback / Optima / NextStep
//	wordlist/      — Read / ReadFile, Sorted, Pairs / EachPair
//	pipeline/      — Run / Collect over an errgroup worker pool
//	report/        — Writer registry: "text" (default) and "jsonl"
//	internal/      — config (cleanenv), logger (zap), metrics (prometheus)
//	cmd/swalign/   — the CLI: swalign <input> <output> [flags]
//
// Quick example:
//
//	GATTACA vs GCATGCU → Score: 2 Sequence(s): "AT" "CA"
//
//	go install github.com/katalvlaran/swalign/cmd/swalign@latest
package swalign
