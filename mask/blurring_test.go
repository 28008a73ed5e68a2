package mask_test

import (
	"testing"

	"github.com/katalvlaran/lensgrid/mask"
	"github.com/stretchr/testify/require"
)

// centreOnly returns an n×n mask with only the central pixel unmasked.
func centreOnly(t *testing.T, n int) *mask.Mask {
	t.Helper()
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
		for j := range cells[i] {
			cells[i][j] = !(i == n/2 && j == n/2)
		}
	}
	m, err := mask.New(cells, 1)
	require.NoError(t, err)
	return m
}

// TestBlurringMask_Neighbourhood checks the region around a single pixel.
func TestBlurringMask_Neighbourhood(t *testing.T) {
	m := centreOnly(t, 5)

	b, err := m.BlurringMask(3, 3)
	require.NoError(t, err)
	require.Equal(t, 8, b.PixelsInMask())
	require.True(t, b.At(2, 2), "the unmasked pixel itself is not in the blurring region")
	require.False(t, b.At(1, 1))
	require.False(t, b.At(3, 2))
	require.True(t, b.At(0, 0))

	b, err = m.BlurringMask(5, 5)
	require.NoError(t, err)
	require.Equal(t, 24, b.PixelsInMask())

	b, err = m.BlurringMask(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, b.PixelsInMask())
	require.Equal(t, [][2]int{{2, 1}, {2, 3}}, b.GridToPixel())
}

// TestBlurringMask_ShapeRejection checks even kernels fail and odd succeed.
func TestBlurringMask_ShapeRejection(t *testing.T) {
	m := centreOnly(t, 5)

	for _, k := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {0, 3}, {-1, -1}} {
		_, err := m.BlurringMask(k[0], k[1])
		require.ErrorIs(t, err, mask.ErrMaskShape, "kernel %v", k)
	}
	_, err := m.BlurringMask(3, 3)
	require.NoError(t, err)
}

// TestBlurringMask_Boundary requires padding when the kernel leaves the array.
func TestBlurringMask_Boundary(t *testing.T) {
	m := centreOnly(t, 5)
	_, err := m.BlurringMask(7, 7)
	require.ErrorIs(t, err, mask.ErrBoundary)

	u, err := mask.Unmasked([2]float64{3, 3}, 1)
	require.NoError(t, err)
	_, err = u.BlurringMask(3, 3)
	require.ErrorIs(t, err, mask.ErrBoundary)

	// the clipped variant keeps only in-bounds pixels
	c, err := m.ClippedBlurringMask(7, 7)
	require.NoError(t, err)
	require.Equal(t, 24, c.PixelsInMask())

	c, err = u.ClippedBlurringMask(3, 3)
	require.NoError(t, err)
	require.Equal(t, 0, c.PixelsInMask())
}

// TestBlurringMask_ForSimulate shows the padded margin is exactly the region.
func TestBlurringMask_ForSimulate(t *testing.T) {
	m, err := mask.ForSimulate([2]float64{3, 3}, 1, 3, 3)
	require.NoError(t, err)

	b, err := m.BlurringMask(3, 3)
	require.NoError(t, err)
	require.Equal(t, 16, b.PixelsInMask())

	clipped, err := m.ClippedBlurringMask(3, 3)
	require.NoError(t, err)
	require.Equal(t, b.Cells(), clipped.Cells())
}

// TestBlurringMask_Memoized checks the same instance is returned per shape.
func TestBlurringMask_Memoized(t *testing.T) {
	m := centreOnly(t, 7)
	a, err := m.BlurringMask(3, 3)
	require.NoError(t, err)
	b, err := m.BlurringMask(3, 3)
	require.NoError(t, err)
	require.Same(t, a, b)

	c, err := m.BlurringMask(5, 5)
	require.NoError(t, err)
	require.NotSame(t, a, c)

	// a different mask with identical cells keeps its own cache
	other := centreOnly(t, 7)
	d, err := other.BlurringMask(3, 3)
	require.NoError(t, err)
	require.NotSame(t, a, d)
	require.Equal(t, a.Cells(), d.Cells())
}

// TestCollection builds all three grids together.
func TestCollection(t *testing.T) {
	m, err := mask.ForSimulate([2]float64{3, 3}, 1, 3, 3)
	require.NoError(t, err)

	c, err := m.Collection(2, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, c.Image.Len())
	require.Equal(t, 36, c.SubPixels())
	require.Equal(t, 16, c.Blurring.Len())

	_, err = m.Collection(2, 4, 4)
	require.ErrorIs(t, err, mask.ErrMaskShape)
	_, err = m.Collection(0, 3, 3)
	require.ErrorIs(t, err, mask.ErrSubSize)
}
