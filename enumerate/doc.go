// SPDX-License-Identifier: MIT

// Package enumerate produces every spin configuration of a fixed number of
// sites, one at a time.
//
// What:
//
//   - Generator walks the indices 0 .. 2^sites-1 and decodes each index into a
//     configuration. Nothing beyond the current configuration is held in memory.
//   - The order is the Cartesian product over (Down, Up) with the last site
//     varying fastest: index bit (sites-1-k) drives site k, 0 → Down, 1 → Up.
//   - Reset restarts the sequence; All exposes it as an iter.Seq2.
//
// Complexity:
//
//   - Next: O(sites) per configuration. A full pass is O(sites · 2^sites).
//
// Capacity:
//
//   - 2^sites grows fast: 25 sites is ~3.4e7 configurations, 36 sites is
//     ~6.9e10. The generator does not shortcut large inputs.
//
// Errors:
//
//   - ErrInvalidSites: sites < 1.
//   - ErrTooManySites: sites > MaxSites.
package enumerate
