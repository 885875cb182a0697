// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/isingdos/spin"
)

// New constructs a Lattice with the given side length.
// Returns ErrInvalidSide if side < 1, ErrSideTooLarge if side > MaxSide.
func New(side int) (*Lattice, error) {
	if side < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	if side > MaxSide {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrSideTooLarge, side, MaxSide)
	}

	return &Lattice{side: side, sites: side * side}, nil
}

// Side returns n.
func (l *Lattice) Side() int { return l.side }

// Sites returns n², the length of every configuration on l.
func (l *Lattice) Sites() int { return l.sites }

// Bonds returns the number of directed neighbor pairs, 2n². This is also
// the maximum energy.
func (l *Lattice) Bonds() int { return 2 * l.sites }

// MaxEnergy returns the energy of a uniform configuration.
func (l *Lattice) MaxEnergy() int { return l.Bonds() }

// MinEnergy returns the lowest reachable energy: 0 for even n, 2n for odd n.
func (l *Lattice) MinEnergy() int {
	if l.side%2 == 0 {
		return 0
	}

	return 2 * l.side
}

// Index maps (row, col) to a row-major site index. Coordinates wrap.
func (l *Lattice) Index(row, col int) int {
	return l.wrap(row)*l.side + l.wrap(col)
}

// Coordinate converts a row-major index back to (row, col).
func (l *Lattice) Coordinate(idx int) (row, col int) {
	return idx / l.side, idx % l.side
}

// Right returns the site to the right of idx, wrapping to column 0.
func (l *Lattice) Right(idx int) int {
	row, col := l.Coordinate(idx)

	return row*l.side + (col+1)%l.side
}

// Down returns the site below idx, wrapping to row 0.
func (l *Lattice) Down(idx int) int {
	return (idx + l.side) % l.sites
}

// Neighbors returns the right and bottom neighbors of idx, in that order.
func (l *Lattice) Neighbors(idx int) [2]int {
	return [2]int{l.Right(idx), l.Down(idx)}
}

// wrap reduces v into [0, side).
func (l *Lattice) wrap(v int) int {
	v %= l.side
	if v < 0 {
		v += l.side
	}

	return v
}

// Uniform returns the configuration with every site set to s.
func (l *Lattice) Uniform(s spin.Spin) spin.Configuration {
	c := make(spin.Configuration, l.sites)
	for i := range c {
		c[i] = s
	}

	return c
}

// Checkerboard returns the alternating configuration with Down at (0,0).
func (l *Lattice) Checkerboard() spin.Configuration {
	c := make(spin.Configuration, l.sites)
	for idx := range c {
		row, col := l.Coordinate(idx)
		if (row+col)%2 == 0 {
			c[idx] = spin.Down
		} else {
			c[idx] = spin.Up
		}
	}

	return c
}
