// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrInvalidSide indicates a side length below one.
	ErrInvalidSide = errors.New("lattice: side must be at least 1")
	// ErrSideTooLarge indicates a side whose configuration space overflows uint64.
	ErrSideTooLarge = errors.New("lattice: side exceeds MaxSide")
	// ErrLengthMismatch indicates a configuration that does not cover the lattice.
	ErrLengthMismatch = errors.New("lattice: configuration length must equal side*side")
)
