// SPDX-License-Identifier: MIT

package dos_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingdos/dos"
)

func TestHistogram_WriteTo(t *testing.T) {
	h, err := dos.Enumerate(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)

	want := "Energy: 0, Count: 2\nEnergy: 4, Count: 12\nEnergy: 8, Count: 2\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHistogram_WriteToError(t *testing.T) {
	h, err := dos.Enumerate(1)
	require.NoError(t, err)

	_, err = h.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestHistogram_Summary(t *testing.T) {
	cases := []struct {
		side int
		want dos.Summary
	}{
		{1, dos.Summary{Total: 2, Levels: 1, MinEnergy: 2, MaxEnergy: 2, Mean: 2, Variance: 0, StdDev: 0, Degeneracy: 2}},
		{2, dos.Summary{Total: 16, Levels: 3, MinEnergy: 0, MaxEnergy: 8, Mean: 4, Variance: 4, StdDev: 2, Degeneracy: 2}},
	}
	for _, tc := range cases {
		h, err := dos.Enumerate(tc.side)
		require.NoError(t, err)

		got := h.Summary()
		assert.Equal(t, tc.want.Total, got.Total)
		assert.Equal(t, tc.want.Levels, got.Levels)
		assert.Equal(t, tc.want.MinEnergy, got.MinEnergy)
		assert.Equal(t, tc.want.MaxEnergy, got.MaxEnergy)
		assert.Equal(t, tc.want.Degeneracy, got.Degeneracy)
		assert.InDelta(t, tc.want.Mean, got.Mean, 1e-12)
		assert.InDelta(t, tc.want.Variance, got.Variance, 1e-12)
		assert.InDelta(t, tc.want.StdDev, got.StdDev, 1e-12)
	}
}

// TestHistogram_SummaryMeanIsHalfTheBonds relies on each pair of distinct
// sites matching in exactly half of all configurations. Side 1 pairs a site
// with itself and is excluded.
func TestHistogram_SummaryMeanIsHalfTheBonds(t *testing.T) {
	for side := 2; side <= 4; side++ {
		h, err := dos.Enumerate(side)
		require.NoError(t, err)
		assert.InDelta(t, float64(side*side), h.Summary().Mean, 1e-9, "side=%d", side)
	}
}

func TestHistogram_EmptySummary(t *testing.T) {
	var h dos.Histogram
	assert.Equal(t, dos.Summary{}, h.Summary())
	assert.Empty(t, h.Levels())
	assert.Zero(t, h.Total())
}
