// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer grid that backs dynamic-programming
// tables in swalign.
//
// The grid is a single contiguous row-major buffer addressed as i*cols + j.
// It is owned by whoever created it and released with it; there is no
// per-row allocation and nothing to free by hand.
//
// The package provides:
//
//   - NewDense: zero-initialized r×c grid (r, c ≥ 1).
//   - At/Set: bounds-checked accessors returning ErrOutOfRange instead of panicking.
//   - Row/Offset: no-copy access for hot loops that already own their bounds.
//   - Clone/String: deep copy and a readable dump for tests and logs.
//
// Complexity:
//
//	NewDense O(r*c); At/Set/Offset O(1); Row O(1); Clone O(r*c); String O(r*c).
package matrix
