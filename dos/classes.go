// SPDX-License-Identifier: MIT

package dos

import (
	"fmt"
	"time"

	"github.com/katalvlaran/isingdos/enumerate"
	"github.com/katalvlaran/isingdos/spin"
)

// ClassTable counts how often each canonical configuration was seen.
// Keys are spin.Pack encodings of the representatives.
type ClassTable struct {
	sites  int
	counts map[uint64]uint64
}

// NewClassTable returns an empty table for configurations of the given length.
func NewClassTable(sites int) *ClassTable {
	return &ClassTable{sites: sites, counts: make(map[uint64]uint64)}
}

// Add canonicalizes c and increments its class.
func (t *ClassTable) Add(c spin.Configuration) error {
	if len(c) != t.sites {
		return fmt.Errorf("%w: got %d, want %d", ErrSitesMismatch, len(c), t.sites)
	}
	key, err := spin.Pack(spin.Canonical(c))
	if err != nil {
		return err
	}
	t.counts[key]++

	return nil
}

// Sites returns the configuration length the table was built for.
func (t *ClassTable) Sites() int { return t.sites }

// Len returns the number of distinct classes.
func (t *ClassTable) Len() int { return len(t.counts) }

// Count returns how many configurations fell into c's class.
func (t *ClassTable) Count(c spin.Configuration) uint64 {
	key, err := spin.Pack(spin.Canonical(c))
	if err != nil {
		return 0
	}

	return t.counts[key]
}

// Total returns the number of configurations added.
func (t *ClassTable) Total() uint64 {
	var sum uint64
	for _, n := range t.counts {
		sum += n
	}

	return sum
}

// Each calls fn for every class in unspecified order until fn returns false.
func (t *ClassTable) Each(fn func(rep spin.Configuration, count uint64) bool) {
	for key, n := range t.counts {
		if !fn(spin.Unpack(key, t.sites), n) {
			return
		}
	}
}

// BuildClasses consumes g from the start and tallies every configuration's
// canonical form. This is the single enumeration pass; progress is reported
// every WithProgressStep configurations and once at the end.
func BuildClasses(g *enumerate.Generator, opts ...Option) (*ClassTable, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	o := gatherOptions(opts)

	start := time.Now()
	total := g.Total()
	table := NewClassTable(g.Sites())

	g.Reset()
	o.report(0, total)
	for g.Next() {
		if err := table.Add(g.Config()); err != nil {
			return nil, fmt.Errorf("dos: configuration %d: %w", g.Index(), err)
		}
		if done := g.Done(); done%o.step == 0 || done == total {
			o.report(done, total)
		}
	}

	o.logger.Debug("class table built",
		"sites", g.Sites(),
		"configurations", total,
		"classes", table.Len(),
		"elapsed", time.Since(start),
	)

	return table, nil
}
