// SPDX-License-Identifier: MIT

package dos

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Level is one line of the density of states.
type Level struct {
	Energy int
	Count  uint64
}

// Histogram maps energy to the number of raw configurations at that energy.
// It is immutable once returned by FoldClasses or Enumerate.
type Histogram struct {
	side    int
	classes int
	counts  map[int]uint64
}

// Side returns the lattice side the histogram was computed for.
func (h *Histogram) Side() int { return h.side }

// Classes returns the number of spin-reversal classes that were folded.
func (h *Histogram) Classes() int { return h.classes }

// Count returns the number of configurations at energy e.
func (h *Histogram) Count(e int) uint64 { return h.counts[e] }

// Levels returns every populated energy level in ascending order.
func (h *Histogram) Levels() []Level {
	out := make([]Level, 0, len(h.counts))
	for e, n := range h.counts {
		out = append(out, Level{Energy: e, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Energy < out[j].Energy })

	return out
}

// Total returns the number of configurations across all levels. After a
// complete enumeration this is exactly 2^(n²).
func (h *Histogram) Total() uint64 {
	var sum uint64
	for _, n := range h.counts {
		sum += n
	}

	return sum
}

// WriteTo prints one "Energy: <e>, Count: <c>" line per level, ascending.
func (h *Histogram) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, lv := range h.Levels() {
		n, err := fmt.Fprintf(w, "Energy: %d, Count: %d\n", lv.Energy, lv.Count)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// Summary holds configuration-weighted moments of the energy distribution.
type Summary struct {
	Total     uint64
	Levels    int
	MinEnergy int
	MaxEnergy int
	Mean      float64
	Variance  float64
	StdDev    float64

	// Degeneracy is the number of configurations at MaxEnergy, the fully
	// aligned (lowest physical energy) states.
	Degeneracy uint64
}

// Summary computes the weighted mean and population variance of energy.
// An empty histogram yields the zero Summary.
func (h *Histogram) Summary() Summary {
	levels := h.Levels()
	if len(levels) == 0 {
		return Summary{}
	}
	energies := make([]float64, len(levels))
	weights := make([]float64, len(levels))
	for i, lv := range levels {
		energies[i] = float64(lv.Energy)
		weights[i] = float64(lv.Count)
	}
	mean, variance := stat.PopMeanVariance(energies, weights)
	last := levels[len(levels)-1]

	return Summary{
		Total:      h.Total(),
		Levels:     len(levels),
		MinEnergy:  levels[0].Energy,
		MaxEnergy:  last.Energy,
		Mean:       mean,
		Variance:   variance,
		StdDev:     math.Sqrt(variance),
		Degeneracy: last.Count,
	}
}
