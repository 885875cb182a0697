// SPDX-License-Identifier: MIT

package dos_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isingdos/dos"
	"github.com/katalvlaran/isingdos/enumerate"
	"github.com/katalvlaran/isingdos/lattice"
	"github.com/katalvlaran/isingdos/spin"
)

// knownDensities holds exact densities of states checked against an
// independent direct count over all configurations.
var knownDensities = map[int]map[int]uint64{
	1: {2: 2},
	2: {0: 2, 4: 12, 8: 2},
	3: {6: 102, 8: 144, 10: 198, 12: 48, 14: 18, 18: 2},
	4: {
		0: 2, 4: 32, 6: 64, 8: 424, 10: 1728, 12: 6688, 14: 13568, 16: 20524,
		18: 13568, 20: 6688, 22: 1728, 24: 424, 26: 64, 28: 32, 32: 2,
	},
}

// EnumerateSuite runs Enumerate once per small side and checks invariants.
type EnumerateSuite struct {
	suite.Suite
	results map[int]*dos.Histogram
}

func (s *EnumerateSuite) SetupSuite() {
	s.results = make(map[int]*dos.Histogram)
	for side := range knownDensities {
		h, err := dos.Enumerate(side)
		s.Require().NoError(err, "side=%d", side)
		s.results[side] = h
	}
}

func (s *EnumerateSuite) TestMatchesKnownDensities() {
	for side, want := range knownDensities {
		h := s.results[side]
		s.Equal(side, h.Side())
		s.Len(h.Levels(), len(want), "side=%d", side)
		for e, n := range want {
			s.Equal(n, h.Count(e), "side=%d energy=%d", side, e)
		}
	}
}

func (s *EnumerateSuite) TestTotalIsFullConfigurationSpace() {
	for side, h := range s.results {
		s.Equal(uint64(1)<<uint(side*side), h.Total(), "side=%d", side)
		s.Equal(1<<uint(side*side-1), h.Classes(), "side=%d", side)
	}
}

func (s *EnumerateSuite) TestLevelsAscendingAndInRange() {
	for side, h := range s.results {
		levels := h.Levels()
		for i, lv := range levels {
			s.GreaterOrEqual(lv.Energy, 0)
			s.LessOrEqual(lv.Energy, 2*side*side)
			s.Positive(lv.Count)
			if i > 0 {
				s.Less(levels[i-1].Energy, lv.Energy)
			}
		}
		// Uniform configurations always sit alone at the top.
		s.Equal(uint64(2), h.Count(2*side*side), "side=%d", side)
	}
}

func TestEnumerateSuite(t *testing.T) {
	suite.Run(t, new(EnumerateSuite))
}

//----------------------------------------------------------------------------//
// Enumerate errors and options
//----------------------------------------------------------------------------//

func TestEnumerate_InvalidSide(t *testing.T) {
	_, err := dos.Enumerate(0)
	require.ErrorIs(t, err, lattice.ErrInvalidSide)

	_, err = dos.Enumerate(lattice.MaxSide + 1)
	require.ErrorIs(t, err, lattice.ErrSideTooLarge)
}

func TestEnumerate_SingleSite(t *testing.T) {
	h, err := dos.Enumerate(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = h.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Energy: 2, Count: 2\n", buf.String())
	assert.Equal(t, 1, h.Classes())
}

func TestEnumerate_Progress(t *testing.T) {
	type call struct{ done, total uint64 }
	var calls []call

	_, err := dos.Enumerate(2,
		dos.WithProgress(func(done, total uint64) { calls = append(calls, call{done, total}) }),
		dos.WithProgressStep(4),
	)
	require.NoError(t, err)

	assert.Equal(t, []call{{0, 16}, {4, 16}, {8, 16}, {12, 16}, {16, 16}}, calls)
}

func TestEnumerate_NilOptionsIgnored(t *testing.T) {
	h, err := dos.Enumerate(2, nil, dos.WithProgress(nil), dos.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(16), h.Total())
}

func TestEnumerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dos.Enumerate(2, dos.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"enumerating configurations"`)
	assert.Contains(t, out, `"msg":"class table built"`)
	assert.Contains(t, out, `"msg":"energies folded"`)
	assert.NotContains(t, out, `"level":"WARN"`)
}

func TestWithProgressStep_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dos.WithProgressStep(0) })
}

//----------------------------------------------------------------------------//
// ClassTable / BuildClasses / FoldClasses
//----------------------------------------------------------------------------//

func TestBuildClasses_EveryClassHasTwoMembers(t *testing.T) {
	g, err := enumerate.New(9)
	require.NoError(t, err)

	table, err := dos.BuildClasses(g)
	require.NoError(t, err)

	assert.Equal(t, 256, table.Len())
	assert.Equal(t, uint64(512), table.Total())
	table.Each(func(rep spin.Configuration, count uint64) bool {
		assert.True(t, spin.IsCanonical(rep), "representative %s", rep)
		assert.Equal(t, uint64(2), count, "class %s", rep)
		return true
	})
}

func TestBuildClasses_RestartsGenerator(t *testing.T) {
	g, err := enumerate.New(4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		g.Next()
	}

	table, err := dos.BuildClasses(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), table.Total())
}

func TestBuildClasses_NilGenerator(t *testing.T) {
	_, err := dos.BuildClasses(nil)
	require.ErrorIs(t, err, dos.ErrNilGenerator)
}

func TestClassTable_AddAndCount(t *testing.T) {
	table := dos.NewClassTable(3)
	c := spin.Configuration{spin.Up, spin.Down, spin.Up}

	require.NoError(t, table.Add(c))
	require.NoError(t, table.Add(spin.Negate(c)))
	assert.Equal(t, uint64(2), table.Count(c))
	assert.Equal(t, uint64(2), table.Count(spin.Negate(c)))
	assert.Equal(t, 1, table.Len())

	require.ErrorIs(t, table.Add(spin.Configuration{spin.Up}), dos.ErrSitesMismatch)
	require.ErrorIs(t, table.Add(spin.Configuration{spin.Up, 0, spin.Up}), spin.ErrInvalidSpin)
}

func TestClassTable_EachStops(t *testing.T) {
	g, err := enumerate.New(4)
	require.NoError(t, err)
	table, err := dos.BuildClasses(g)
	require.NoError(t, err)

	visited := 0
	table.Each(func(spin.Configuration, uint64) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestFoldClasses_Errors(t *testing.T) {
	lat, err := lattice.New(2)
	require.NoError(t, err)

	_, err = dos.FoldClasses(nil, dos.NewClassTable(4))
	require.ErrorIs(t, err, dos.ErrNilLattice)

	_, err = dos.FoldClasses(lat, nil)
	require.ErrorIs(t, err, dos.ErrNilClassTable)

	_, err = dos.FoldClasses(lat, dos.NewClassTable(9))
	require.ErrorIs(t, err, dos.ErrSitesMismatch)
}

// TestFoldClasses_MatchesDirectCount compares the two-pass result with
// evaluating every raw configuration directly.
func TestFoldClasses_MatchesDirectCount(t *testing.T) {
	lat, err := lattice.New(3)
	require.NoError(t, err)
	g, err := enumerate.New(lat.Sites())
	require.NoError(t, err)

	direct := make(map[int]uint64)
	for g.Next() {
		e, err := lat.Energy(g.Config())
		require.NoError(t, err)
		direct[e]++
	}

	table, err := dos.BuildClasses(g)
	require.NoError(t, err)
	h, err := dos.FoldClasses(lat, table)
	require.NoError(t, err)

	for e, n := range direct {
		assert.Equal(t, n, h.Count(e), "energy=%d", e)
	}
	assert.Len(t, h.Levels(), len(direct))
}
