// SPDX-License-Identifier: MIT

package enumerate

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/isingdos/spin"
)

// MaxSites keeps Total() representable as a uint64.
const MaxSites = 63

// Generator is a lazy, finite, restartable source of configurations.
// It is not safe for concurrent use.
//
// Usage:
//
//	g, _ := enumerate.New(9)
//	for g.Next() {
//		c := g.Config()
//		...
//	}
type Generator struct {
	sites   int
	total   uint64
	next    uint64
	started bool
	cur     spin.Configuration
}

// New returns a Generator over all 2^sites configurations.
func New(sites int) (*Generator, error) {
	if sites < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSites, sites)
	}
	if sites > MaxSites {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManySites, sites, MaxSites)
	}

	return &Generator{
		sites: sites,
		total: uint64(1) << uint(sites),
	}, nil
}

// Sites returns the configuration length.
func (g *Generator) Sites() int { return g.sites }

// Total returns 2^sites.
func (g *Generator) Total() uint64 { return g.total }

// Next advances to the next configuration and reports whether one exists.
func (g *Generator) Next() bool {
	if g.next >= g.total {
		g.cur = nil
		return false
	}
	g.cur = Decode(g.next, g.sites)
	g.next++
	g.started = true

	return true
}

// Config returns the current configuration. It is only valid after Next
// returned true. Each call to Next allocates a new configuration, so callers
// may keep the returned slice.
func (g *Generator) Config() spin.Configuration { return g.cur }

// Index returns the position of the current configuration in the sequence.
// Before the first call to Next it returns 0.
func (g *Generator) Index() uint64 {
	if !g.started {
		return 0
	}

	return g.next - 1
}

// Done returns how many configurations have been produced so far.
func (g *Generator) Done() uint64 { return g.next }

// Reset rewinds g to the beginning of the sequence.
func (g *Generator) Reset() {
	g.next = 0
	g.started = false
	g.cur = nil
}

// Decode maps an index in [0, 2^sites) to its configuration.
// Site 0 takes the most significant bit, so the last site varies fastest.
func Decode(index uint64, sites int) spin.Configuration {
	return spin.Unpack(index, sites)
}

// All returns the full sequence for the given site count as an iterator of
// (index, configuration) pairs. It yields nothing when sites is out of range.
func All(sites int) iter.Seq2[uint64, spin.Configuration] {
	return func(yield func(uint64, spin.Configuration) bool) {
		g, err := New(sites)
		if err != nil {
			return
		}
		for g.Next() {
			if !yield(g.Index(), g.Config()) {
				return
			}
		}
	}
}
