// SPDX-License-Identifier: MIT

// Package dos computes the exact density of states of an n×n periodic Ising
// lattice by exhaustive enumeration with spin-reversal symmetry reduction.
//
// 🚀 Pipeline:
//
//  1. enumerate.Generator yields all 2^(n²) configurations, one at a time.
//  2. spin.Canonical maps each to its class representative, and BuildClasses
//     tallies the representatives in a ClassTable.
//  3. FoldClasses evaluates lattice energy once per class and adds the class
//     size to that energy's bucket, producing a Histogram.
//
// Every class holds a configuration and its reversal, so the fold evaluates
// 2^(n²-1) energies instead of 2^(n²). The price is memory: the whole
// ClassTable lives in memory until the fold finishes.
//
// ⚠️ Capacity:
//
//	Enumeration is exponential. Side 5 (2^25 configurations) completes in
//	seconds; side 6 (2^36) needs ~2^35 table entries and is not practical on
//	commodity hardware. Sides above FeasibleSide are logged as a warning and
//	then attempted anyway; running out of memory or time is fatal and not
//	handled.
//
// ⚙️ Usage:
//
//	h, err := dos.Enumerate(4, dos.WithProgress(report))
//	if err != nil {
//		return err
//	}
//	_, _ = h.WriteTo(os.Stdout)
//
// Output lines have the form "Energy: <e>, Count: <c>", ascending by energy.
package dos
