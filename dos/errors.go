// SPDX-License-Identifier: MIT

package dos

import "errors"

var (
	// ErrNilGenerator indicates BuildClasses received no generator.
	ErrNilGenerator = errors.New("dos: generator is nil")
	// ErrNilLattice indicates FoldClasses received no lattice.
	ErrNilLattice = errors.New("dos: lattice is nil")
	// ErrNilClassTable indicates FoldClasses received no class table.
	ErrNilClassTable = errors.New("dos: class table is nil")
	// ErrSitesMismatch indicates a class table built for a different lattice.
	ErrSitesMismatch = errors.New("dos: class table sites differ from lattice sites")
)
