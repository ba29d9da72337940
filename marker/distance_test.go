package marker_test

import (
	"testing"

	"github.com/katalvlaran/markerdict/marker"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a, _ := marker.NewEmpty(3)
	b := a.Clone()
	d, err := marker.Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	b.SetBlack(1, 1)
	b.SetBlack(3, 2)
	d, err = marker.Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	c, _ := marker.NewEmpty(2)
	_, err = marker.Distance(a, c)
	require.ErrorIs(t, err, marker.ErrDimensionMismatch)
}

func TestRotationDistance(t *testing.T) {
	a := marker.MustFromCells(2, []marker.Cell{marker.Black, marker.White, marker.White, marker.White})
	b := a.Rotate90()

	plain, err := marker.Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, plain)

	rot, err := marker.RotationDistance(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, rot)

	c := marker.MustFromCells(2, []marker.Cell{marker.Black, marker.Black, marker.White, marker.White})
	rot, err = marker.RotationDistance(a, c)
	require.NoError(t, err)
	require.Equal(t, 1, rot)

	e, _ := marker.NewEmpty(3)
	_, err = marker.RotationDistance(a, e)
	require.ErrorIs(t, err, marker.ErrDimensionMismatch)
}
