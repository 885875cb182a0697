// SPDX-License-Identifier: MIT

// Package isingdos computes the exact density of states of small square
// Ising lattices by exhaustive enumeration.
//
// 🚀 What is isingdos?
//
//	A brute-force, single-threaded pipeline over every spin configuration
//	of an n×n lattice with periodic boundaries:
//		• spin/       configurations, spin reversal, canonical forms, packing
//		• lattice/    periodic geometry and the matching-pair energy
//		• enumerate/  lazy, restartable generator of all 2^(n²) configurations
//		• dos/        class tally, energy fold, histogram and moments
//		• progress/   cosmetic console progress bar
//
// ⚠️ Scope:
//
//	The algorithm is exponential by construction. Sides up to 5 finish
//	quickly; side 6 (2^36 configurations) is beyond commodity memory and
//	time and is reported, not optimized away.
//
// Quick ASCII example (2×2, periodic):
//
//	- +
//	+ -
//
// is a checkerboard with energy 0; all four spins equal gives 8.
//
//	go run github.com/katalvlaran/isingdos/cmd/isingdos --side 4
package isingdos
