// SPDX-License-Identifier: MIT

package lattice

// MaxSide is the largest supported side. 7×7 = 49 sites keeps both the
// configuration count 2^49 and the packed class key within uint64.
const MaxSide = 7

// Lattice is an immutable n×n periodic square lattice.
// Sites are numbered row-major: idx = row*side + col.
type Lattice struct {
	side  int
	sites int
}
