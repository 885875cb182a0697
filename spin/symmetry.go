// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"strings"
)

// Validate checks that c is non-empty and holds only Down or Up values.
func Validate(c Configuration) error {
	if len(c) == 0 {
		return ErrEmptyConfiguration
	}
	for i, s := range c {
		if !s.Valid() {
			return fmt.Errorf("%w: site %d holds %d", ErrInvalidSpin, i, s)
		}
	}

	return nil
}

// Negate returns the global spin reversal of c.
// Complexity: O(len(c)).
func Negate(c Configuration) Configuration {
	out := make(Configuration, len(c))
	for i, s := range c {
		out[i] = s.Flip()
	}

	return out
}

// Compare orders a and b lexicographically, site by site, with Down < Up.
// A proper prefix sorts first. The result is -1, 0 or +1.
func Compare(a, b Configuration) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Canonical returns the representative of c's spin-reversal class: the
// lexicographically smaller of c and Negate(c).
// The result is always a fresh slice.
// Complexity: O(len(c)).
func Canonical(c Configuration) Configuration {
	neg := Negate(c)
	if Compare(neg, c) < 0 {
		return neg
	}

	return c.Clone()
}

// IsCanonical reports whether c is already the representative of its class.
// c and its negation first differ at site 0, so the smaller one starts with Down.
func IsCanonical(c Configuration) bool {
	return len(c) > 0 && c[0] == Down
}

// Pack encodes c into a uint64 key. Site 0 is the most significant of the
// len(c) low bits; Up is 1 and Down is 0.
func Pack(c Configuration) (uint64, error) {
	if err := Validate(c); err != nil {
		return 0, err
	}
	if len(c) > MaxPackedSites {
		return 0, ErrTooManySites
	}
	var key uint64
	for _, s := range c {
		key <<= 1
		if s == Up {
			key |= 1
		}
	}

	return key, nil
}

// Unpack is the inverse of Pack for a configuration of the given length.
func Unpack(key uint64, sites int) Configuration {
	out := make(Configuration, sites)
	for i := sites - 1; i >= 0; i-- {
		if key&1 == 1 {
			out[i] = Up
		} else {
			out[i] = Down
		}
		key >>= 1
	}

	return out
}

// String renders c as a compact run of '+' and '-' characters.
func (c Configuration) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, s := range c {
		b.WriteByte(spinRune(s))
	}

	return b.String()
}

// Grid renders c as side rows of side characters separated by newlines.
// Sites beyond side*side are ignored; missing sites render as '?'.
func (c Configuration) Grid(side int) string {
	var b strings.Builder
	for row := 0; row < side; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < side; col++ {
			idx := row*side + col
			if idx >= len(c) {
				b.WriteByte('?')
				continue
			}
			b.WriteByte(spinRune(c[idx]))
		}
	}

	return b.String()
}

func spinRune(s Spin) byte {
	switch s {
	case Up:
		return '+'
	case Down:
		return '-'
	default:
		return '?'
	}
}
