// SPDX-License-Identifier: MIT

// Package lattice treats an n×n square of spins with periodic boundary
// conditions as an Ising lattice and evaluates configuration energies.
//
// What:
//
//   - Lattice fixes the side length n and maps between row-major site
//     indices and (row, col) coordinates.
//   - Right and Down return the periodic neighbors of a site: the last column
//     wraps to the first, the last row wraps to the first.
//   - Energy counts matching neighbor pairs: for every site, +1 when its right
//     neighbor has the same spin and +1 when its bottom neighbor does.
//
// Energy range:
//
//   - Uniform configurations reach the maximum 2n² (every pair matches).
//   - The checkerboard reaches the minimum: 0 for even n, 2n for odd n, where
//     each row and each column keeps one matching seam across the wrap.
//   - For n = 1 and n = 2 a site is its own (or its double) neighbor, so
//     pairs are counted once per direction exactly as the rule states.
//
// Complexity:
//
//   - New, Index, Coordinate, Right, Down: O(1).
//   - Energy, Uniform, Checkerboard: O(n²) time.
//
// Errors:
//
//   - ErrInvalidSide: side < 1.
//   - ErrSideTooLarge: side > MaxSide.
//   - ErrLengthMismatch: configuration length differs from n².
package lattice
