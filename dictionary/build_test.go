package dictionary_test

import (
	"testing"

	"github.com/katalvlaran/markerdict/dictionary"
	"github.com/katalvlaran/markerdict/marker"
	"github.com/katalvlaran/markerdict/pattern"
	"github.com/stretchr/testify/require"
)

var bothStrategies = []dictionary.Strategy{dictionary.StrategyLinear, dictionary.StrategyCanonical}

func TestBuild_Zero(t *testing.T) {
	d, err := dictionary.Build(0)
	require.NoError(t, err)
	require.Equal(t, 0, d.Count())
	_, err = d.At(0)
	require.ErrorIs(t, err, dictionary.ErrIndexOutOfRange)
}

func TestBuild_OneBitIsEmpty(t *testing.T) {
	// Every 1×1 marker equals its own rotations.
	d, rep, err := dictionary.BuildWithReport(1)
	require.NoError(t, err)
	require.Equal(t, 0, d.Count())
	require.Equal(t, 2, rep.Evaluated)
	require.Equal(t, 2, rep.RejectedSymmetry)
}

func TestBuild_TwoByTwo(t *testing.T) {
	// 16 patterns; 4 are 180°-symmetric (both uniform grids among them);
	// the remaining 12 fall into 3 classes of 4.
	want := []string{
		"* *\n* _",
		"* *\n_ _",
		"* _\n_ _",
	}
	for _, s := range bothStrategies {
		d, rep, err := dictionary.BuildWithReport(4, dictionary.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, 2, rep.Dim)
		require.Equal(t, len(want), d.Count(), "strategy %s", s)
		for i, w := range want {
			m, err := d.At(i)
			require.NoError(t, err)
			require.Equal(t, w, m.String(), "entry %d, strategy %s", i, s)
		}
		require.Equal(t, dictionary.Report{
			Dim:               2,
			Evaluated:         16,
			RejectedSymmetry:  4,
			RejectedDuplicate: 9,
			Accepted:          3,
		}, rep)
	}
}

func TestBuild_UniformRejected(t *testing.T) {
	d, err := dictionary.Build(4)
	require.NoError(t, err)
	black := marker.MustFromCells(2, []marker.Cell{marker.Black, marker.Black, marker.Black, marker.Black})
	white, _ := marker.NewEmpty(2)
	require.False(t, d.Contains(black))
	require.False(t, d.Contains(white))
}

func TestBuild_ThreeByThree(t *testing.T) {
	d, rep, err := dictionary.BuildWithReport(9)
	require.NoError(t, err)
	require.Equal(t, 120, d.Count())
	require.Equal(t, 512, rep.Evaluated)
	require.Equal(t, 32, rep.RejectedSymmetry)
	require.Equal(t, 360, rep.RejectedDuplicate)

	first, err := d.At(0)
	require.NoError(t, err)
	require.Equal(t, "* * *\n* * *\n* * _", first.String())
}

func TestBuild_NoSelfSymmetry(t *testing.T) {
	for _, n := range []int{4, 9} {
		d, err := dictionary.Build(n)
		require.NoError(t, err)
		for _, a := range d.Markers() {
			require.False(t, a.Equal(a.Rotate90()))
			require.False(t, a.Equal(a.Rotate180()))
			require.False(t, a.Equal(a.Rotate270()))
		}
	}
}

func TestBuild_PairwiseRotationDistinct(t *testing.T) {
	d, err := dictionary.Build(9)
	require.NoError(t, err)
	all := d.Markers()
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, a.Equal(b))
			require.False(t, a.Equal(b.Rotate90()))
			require.False(t, a.Equal(b.Rotate180()))
			require.False(t, a.Equal(b.Rotate270()))
		}
	}
}

func TestBuild_CoversEveryAsymmetricClass(t *testing.T) {
	d, err := dictionary.Build(9)
	require.NoError(t, err)
	rows, err := pattern.EnumerateAll(9)
	require.NoError(t, err)
	for _, p := range rows {
		m := marker.MustFromCells(3, p)
		if m.IsRotationSymmetric() {
			continue
		}
		require.True(t, d.Contains(m), "missing class of\n%s", m)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := dictionary.Build(9)
	require.NoError(t, err)
	b, err := dictionary.Build(9)
	require.NoError(t, err)
	require.Equal(t, a.Count(), b.Count())
	for i := 0; i < a.Count(); i++ {
		x, err := a.At(i)
		require.NoError(t, err)
		y, err := b.At(i)
		require.NoError(t, err)
		require.True(t, x.Equal(y), "entry %d", i)
	}
}

func TestBuild_StrategiesAgree(t *testing.T) {
	for _, n := range []int{1, 4, 9} {
		lin, err := dictionary.Build(n, dictionary.WithStrategy(dictionary.StrategyLinear))
		require.NoError(t, err)
		can, err := dictionary.Build(n, dictionary.WithStrategy(dictionary.StrategyCanonical))
		require.NoError(t, err)
		require.Equal(t, lin.Count(), can.Count(), "n=%d", n)
		for i := 0; i < lin.Count(); i++ {
			x, err := lin.At(i)
			require.NoError(t, err)
			y, err := can.At(i)
			require.NoError(t, err)
			require.True(t, x.Equal(y), "n=%d entry %d", n, i)
		}
	}
}

func TestBuild_FourByFour(t *testing.T) {
	if testing.Short() {
		t.Skip("65536 candidates")
	}
	// 2^16 patterns, 2^8 are 180°-symmetric: (65536-256)/4 classes.
	d, err := dictionary.Build(16, dictionary.WithStrategy(dictionary.StrategyCanonical))
	require.NoError(t, err)
	require.Equal(t, 16320, d.Count())
}

func TestBuild_NonSquareBits(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8, 10} {
		_, err := dictionary.Build(n)
		require.ErrorIs(t, err, dictionary.ErrNonSquareBits, "n=%d", n)
	}
	_, err := dictionary.Build(-4)
	require.ErrorIs(t, err, dictionary.ErrNonSquareBits)
}

func TestBuild_TooManyBits(t *testing.T) {
	_, err := dictionary.Build(25)
	require.ErrorIs(t, err, pattern.ErrTooManyBits)
}

func TestBuild_Limit(t *testing.T) {
	full, err := dictionary.Build(9)
	require.NoError(t, err)
	d, rep, err := dictionary.BuildWithReport(9, dictionary.WithLimit(5))
	require.NoError(t, err)
	require.Equal(t, 5, d.Count())
	require.Equal(t, 5, rep.Accepted)
	require.Equal(t, rep.Evaluated, rep.Accepted+rep.RejectedSymmetry+rep.RejectedDuplicate+rep.RejectedFilter)
	for i := 0; i < 5; i++ {
		x, _ := full.At(i)
		y, _ := d.At(i)
		require.True(t, x.Equal(y))
	}
}

func TestBuild_Filter(t *testing.T) {
	heavy := func(m marker.Marker) bool { return m.BlackCount() >= 5 }
	d, rep, err := dictionary.BuildWithReport(9, dictionary.WithFilter(heavy))
	require.NoError(t, err)
	require.Greater(t, rep.RejectedFilter, 0)
	require.Equal(t, 512, rep.Evaluated)
	require.Equal(t, rep.Evaluated, rep.Accepted+rep.RejectedSymmetry+rep.RejectedDuplicate+rep.RejectedFilter)
	for _, m := range d.Markers() {
		require.GreaterOrEqual(t, m.BlackCount(), 5)
	}
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { dictionary.WithLimit(-1) })
	require.Panics(t, func() { dictionary.WithStrategy(dictionary.Strategy(42)) })
	require.Panics(t, func() { dictionary.WithFilter(nil) })
}

func TestParseStrategy(t *testing.T) {
	s, ok := dictionary.ParseStrategy("canonical")
	require.True(t, ok)
	require.Equal(t, dictionary.StrategyCanonical, s)
	require.Equal(t, "canonical", s.String())

	_, ok = dictionary.ParseStrategy("hash")
	require.False(t, ok)
}
