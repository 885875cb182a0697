// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/isingdos/spin"
)

// Energy returns the number of matching neighbor pairs in c: for every site,
// one for an equal right neighbor and one for an equal bottom neighbor.
// The result lies in [MinEnergy(), MaxEnergy()].
// Returns ErrLengthMismatch if len(c) != Sites(), or spin.ErrInvalidSpin.
// Complexity: O(n²).
func (l *Lattice) Energy(c spin.Configuration) (int, error) {
	if len(c) != l.sites {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(c), l.sites)
	}
	if err := spin.Validate(c); err != nil {
		return 0, err
	}

	return l.energy(c), nil
}

// energy assumes c has already been validated against l.
func (l *Lattice) energy(c spin.Configuration) int {
	e := 0
	for idx, s := range c {
		if c[l.Right(idx)] == s {
			e++
		}
		if c[l.Down(idx)] == s {
			e++
		}
	}

	return e
}
