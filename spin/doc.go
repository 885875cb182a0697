// SPDX-License-Identifier: MIT

// Package spin models Ising spin configurations and their spin-reversal
// symmetry classes.
//
// What:
//
//   - Spin is a single site value, Down (-1) or Up (+1).
//   - Configuration is a flat, row-major sequence of spins for a whole lattice.
//   - Canonical maps a configuration to the representative of its
//     spin-reversal class: the lexicographically smaller of the configuration
//     and its global negation.
//   - Pack / Unpack encode a configuration into a uint64 so that classes can be
//     tallied in an ordinary map.
//
// Invariants:
//
//   - A configuration never equals its negation, so every class has exactly
//     two members.
//   - Canonical is idempotent and Canonical(c) == Canonical(Negate(c)).
//   - Every canonical form starts with Down.
//
// Complexity:
//
//   - Negate, Compare, Canonical, Pack, Unpack: O(len(c)) time.
//
// Errors:
//
//   - ErrEmptyConfiguration: configuration has no sites.
//   - ErrInvalidSpin: a site holds a value other than -1 or +1.
//   - ErrTooManySites: configuration does not fit into a 64-bit key.
package spin
