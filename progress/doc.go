// SPDX-License-Identifier: MIT

// Package progress draws a console progress bar for long enumerations.
//
// Progress is cosmetic: a Reporter receives (done, total) counts and never
// influences the computation. Bar renders a single, carriage-return
// refreshed line through the bubbles progress model and only redraws when the
// completed fraction has advanced by at least its threshold.
package progress
