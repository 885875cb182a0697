// SPDX-License-Identifier: MIT

package enumerate

import "errors"

var (
	// ErrInvalidSites indicates a site count below one.
	ErrInvalidSites = errors.New("enumerate: sites must be at least 1")
	// ErrTooManySites indicates a configuration space that overflows the index counter.
	ErrTooManySites = errors.New("enumerate: sites exceeds MaxSites")
)
