// Package pipeline aligns every unordered pair of a word list.
//
// Design:
//   - Single concurrency point: only this layer runs goroutines; the
//     alignment core is synchronous and shares nothing between pairs.
//   - Ordered delivery: results reach the visitor in pair order
//     (0,1), (0,2), ..., (1,2), ... whatever the worker count, so output
//     is identical to a sequential run.
//   - First error wins: a visitor error or context cancellation stops the
//     run; workers drain and Run returns that error.
package pipeline
