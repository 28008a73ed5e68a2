package mask

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lensgrid/grids"
	"github.com/katalvlaran/lensgrid/scaled"
)

// CoordinateGrid returns the arc-second centre of every unmasked pixel in
// raster order. Its length is PixelsInMask.
func (m *Mask) CoordinateGrid() *grids.Grid {
	data := make([]float64, 2*m.pixels)
	m.forEachUnmasked(func(i, j, idx int) {
		data[2*idx], data[2*idx+1] = m.geom.PixelToArcsec(i, j)
	})
	g, _ := grids.FromFlat(data, m.geom.PixelScale)

	return g
}

// SubCoordinateGrid splits every unmasked pixel into a subSize×subSize grid
// of sub-pixel centres. Pixel blocks follow CoordinateGrid order; each block
// is in raster order over its sub-pixels.
// Errors:
//   - ErrSubSize when subSize < 1.
func (m *Mask) SubCoordinateGrid(subSize int) (*grids.SubGrid, error) {
	if subSize < 1 {
		return nil, fmt.Errorf("Mask.SubCoordinateGrid(%d): %w", subSize, ErrSubSize)
	}
	n := subSize * subSize
	data := make([]float64, 2*m.pixels*n)
	m.forEachUnmasked(func(i, j, idx int) {
		k := idx * n
		for si := 0; si < subSize; si++ {
			for sj := 0; sj < subSize; sj++ {
				data[2*k], data[2*k+1] = m.geom.SubPixelToArcsec(i, j, si, sj, subSize)
				k++
			}
		}
	})

	return grids.SubFromFlat(data, subSize, m.geom.PixelScale)
}

// GridToPixel returns the 2D position of every unmasked pixel in raster order.
func (m *Mask) GridToPixel() [][2]int {
	out := make([][2]int, m.pixels)
	m.forEachUnmasked(func(i, j, idx int) { out[idx] = [2]int{i, j} })

	return out
}

// Masked1D gathers the values of a 2D array at the unmasked pixels, in
// raster order.
// Errors:
//   - ErrShapeMismatch when the array shape differs from the mask.
func (m *Mask) Masked1D(a *scaled.Array) ([]float64, error) {
	rows, cols := a.Shape()
	if rows != m.geom.Rows || cols != m.geom.Cols {
		return nil, maskErrorf("Masked1D", rows, cols, ErrShapeMismatch)
	}
	values := a.Values()
	out := make([]float64, m.pixels)
	m.forEachUnmasked(func(i, j, idx int) { out[idx] = values[i*cols+j] })

	return out, nil
}

// Map2D scatters a 1D masked array back to a full 2D array; masked pixels
// are zero. It is the inverse of Masked1D on every unmasked pixel.
// Errors:
//   - ErrLengthMismatch when len(data) != PixelsInMask.
func (m *Mask) Map2D(data []float64) (*scaled.Array, error) {
	if len(data) != m.pixels {
		return nil, maskErrorf("Map2D", len(data), m.pixels, ErrLengthMismatch)
	}
	out, err := scaled.NewArray(m.geom.Rows, m.geom.Cols, m.geom.PixelScale)
	if err != nil {
		return nil, err
	}
	var setErr error
	m.forEachUnmasked(func(i, j, idx int) {
		if setErr == nil {
			setErr = out.Set(i, j, data[idx])
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	return out, nil
}

// BorderPixelIndices returns the 1D indices of unmasked pixels with at least
// one masked 8-neighbour. Neighbours past the array edge count as masked.
// The result is computed once per Mask.
func (m *Mask) BorderPixelIndices() []int {
	idx, _ := m.border.Get(struct{}{}, func() ([]int, error) {
		var out []int
		m.forEachUnmasked(func(i, j, k int) {
			for _, d := range neighborOffsets {
				if m.At(i+d[0], j+d[1]) {
					out = append(out, k)
					return
				}
			}
		})
		return out, nil
	})

	return slices.Clone(idx)
}

// BlurringMask returns the mask of pixels that are masked here but lie within
// a kRows×kCols kernel of an unmasked pixel: the pixels whose light a PSF of
// that shape spreads into the mask. Those pixels are false in the result;
// every other pixel is true. The result is memoized per kernel shape.
// Errors:
//   - ErrMaskShape when either kernel dimension is not a positive odd number.
//   - ErrBoundary when the region would extend past the array edge.
func (m *Mask) BlurringMask(kRows, kCols int) (*Mask, error) {
	return m.blurring.Get(blurKey{rows: kRows, cols: kCols}, func() (*Mask, error) {
		return m.blurringMask(kRows, kCols, false)
	})
}

// ClippedBlurringMask is BlurringMask with the region clipped at the array
// edge instead of failing. For a sufficiently padded mask both are equal.
func (m *Mask) ClippedBlurringMask(kRows, kCols int) (*Mask, error) {
	return m.blurring.Get(blurKey{rows: kRows, cols: kCols, clipped: true}, func() (*Mask, error) {
		return m.blurringMask(kRows, kCols, true)
	})
}

func (m *Mask) blurringMask(kRows, kCols int, clip bool) (*Mask, error) {
	if kRows <= 0 || kCols <= 0 || kRows%2 == 0 || kCols%2 == 0 {
		return nil, maskErrorf("BlurringMask", kRows, kCols, ErrMaskShape)
	}
	hr, hc := kRows/2, kCols/2
	region := make([]bool, m.geom.Size())
	var err error
	m.forEachUnmasked(func(i, j, _ int) {
		if err != nil {
			return
		}
		for di := -hr; di <= hr; di++ {
			for dj := -hc; dj <= hc; dj++ {
				ni, nj := i+di, j+dj
				if !m.geom.InBounds(ni, nj) {
					if clip {
						continue
					}
					err = fmt.Errorf("pixel (%d,%d) with kernel %dx%d: %w", i, j, kRows, kCols, ErrBoundary)
					return
				}
				if m.cells[ni*m.geom.Cols+nj] {
					region[ni*m.geom.Cols+nj] = true
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return fromGeometry(m.geom, func(i, j int) bool { return !region[i*m.geom.Cols+j] }), nil
}

// Collection builds the image grid, the sub-grid and the blurring-region grid
// for a kRows×kCols PSF in one call.
func (m *Mask) Collection(subSize, kRows, kCols int) (grids.Collection, error) {
	sub, err := m.SubCoordinateGrid(subSize)
	if err != nil {
		return grids.Collection{}, err
	}
	blurring, err := m.BlurringMask(kRows, kCols)
	if err != nil {
		return grids.Collection{}, err
	}

	return grids.Collection{
		Image:    m.CoordinateGrid(),
		Sub:      sub,
		Blurring: blurring.CoordinateGrid(),
	}, nil
}
