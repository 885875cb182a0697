// SPDX-License-Identifier: MIT

package spin

import "errors"

var (
	// ErrEmptyConfiguration indicates a configuration with zero sites.
	ErrEmptyConfiguration = errors.New("spin: configuration must have at least one site")
	// ErrInvalidSpin indicates a site value other than -1 or +1.
	ErrInvalidSpin = errors.New("spin: site value must be -1 or +1")
	// ErrTooManySites indicates a configuration too long to pack into 64 bits.
	ErrTooManySites = errors.New("spin: configuration exceeds 64 sites")
)
