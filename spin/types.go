// SPDX-License-Identifier: MIT

package spin

// Spin is the value of a single lattice site.
type Spin int8

const (
	// Down is the spin value -1. It sorts before Up.
	Down Spin = -1
	// Up is the spin value +1.
	Up Spin = 1
)

// MaxPackedSites is the largest configuration Pack can encode.
const MaxPackedSites = 64

// Flip returns the opposite spin.
func (s Spin) Flip() Spin {
	return -s
}

// Valid reports whether s is Down or Up.
func (s Spin) Valid() bool {
	return s == Down || s == Up
}

// Configuration is a full assignment of spins to lattice sites in
// row-major order. Functions in this module never mutate a Configuration
// they receive; derived configurations are freshly allocated.
type Configuration []Spin

// Sites returns the number of sites in c.
func (c Configuration) Sites() int {
	return len(c)
}

// Clone returns a copy of c.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)

	return out
}

// Equal reports whether c and o hold the same spins in the same order.
func (c Configuration) Equal(o Configuration) bool {
	return Compare(c, o) == 0
}
