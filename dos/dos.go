// SPDX-License-Identifier: MIT

package dos

import (
	"fmt"
	"time"

	"github.com/katalvlaran/isingdos/enumerate"
	"github.com/katalvlaran/isingdos/lattice"
	"github.com/katalvlaran/isingdos/spin"
)

// Enumerate computes the density of states of the side×side periodic lattice.
//
// Steps:
//  1. Validate side via lattice.New.
//  2. BuildClasses over every configuration (one pass).
//  3. FoldClasses: one energy evaluation per class, weighted by class size.
//
// Errors: lattice.ErrInvalidSide, lattice.ErrSideTooLarge.
// Complexity: O(n² · 2^(n²)) time, O(2^(n²-1)) memory.
func Enumerate(side int, opts ...Option) (*Histogram, error) {
	lat, err := lattice.New(side)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	if side > FeasibleSide {
		o.logger.Warn("lattice exceeds practical enumeration capacity; run may exhaust memory or time",
			"side", side,
			"feasible_side", FeasibleSide,
			"configurations", fmt.Sprintf("2^%d", lat.Sites()),
		)
	}

	gen, err := enumerate.New(lat.Sites())
	if err != nil {
		return nil, err
	}
	o.logger.Info("enumerating configurations", "side", side, "configurations", gen.Total())

	classes, err := BuildClasses(gen, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	h, err := FoldClasses(lat, classes)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("energies folded",
		"classes", h.Classes(),
		"levels", len(h.counts),
		"elapsed", time.Since(start),
	)

	return h, nil
}

// FoldClasses evaluates the energy of each class representative and adds the
// class count to that energy. Returns ErrNilLattice, ErrNilClassTable or ErrSitesMismatch.
func FoldClasses(lat *lattice.Lattice, classes *ClassTable) (*Histogram, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	if classes == nil {
		return nil, ErrNilClassTable
	}
	if classes.Sites() != lat.Sites() {
		return nil, fmt.Errorf("%w: table %d, lattice %d", ErrSitesMismatch, classes.Sites(), lat.Sites())
	}

	h := &Histogram{
		side:    lat.Side(),
		classes: classes.Len(),
		counts:  make(map[int]uint64, lat.Bonds()+1),
	}
	var foldErr error
	classes.Each(func(rep spin.Configuration, count uint64) bool {
		e, err := lat.Energy(rep)
		if err != nil {
			foldErr = err
			return false
		}
		h.counts[e] += count

		return true
	})
	if foldErr != nil {
		return nil, foldErr
	}

	return h, nil
}
