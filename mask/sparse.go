package mask

import (
	"fmt"

	"github.com/katalvlaran/lensgrid/memo"
)

// MaxSearchRadius caps the expanding-ring search of ImageToSparse. Radii
// 0..MaxSearchRadius are probed (at most MaxSearchRadius+1 rings).
const MaxSearchRadius = 99

// Sparse is a coarser mask keeping only the unmasked pixels of a base mask
// whose row and column are multiples of the stride. The embedded *Mask holds
// the sparse cells; Base is the full-resolution mask it was derived from.
type Sparse struct {
	*Mask
	base   *Mask
	stride int

	indexImage    memo.Cache[struct{}, []int]
	sparseToImage memo.Cache[struct{}, []int]
	imageToSparse memo.Cache[struct{}, []int]
}

// NewSparse derives the sparse mask of base with the given stride.
// Errors:
//   - ErrSparseStride when stride < 1.
func NewSparse(base *Mask, stride int) (*Sparse, error) {
	if stride < 1 {
		return nil, fmt.Errorf("NewSparse(%d): %w", stride, ErrSparseStride)
	}
	sparse := fromGeometry(base.geom, func(i, j int) bool {
		return base.At(i, j) || i%stride != 0 || j%stride != 0
	})

	return &Sparse{Mask: sparse, base: base, stride: stride}, nil
}

// Base returns the full-resolution mask.
func (s *Sparse) Base() *Mask { return s.base }

// Stride returns the sparse grid stride.
func (s *Sparse) Stride() int { return s.stride }

// Pixels returns the number of sparse pixels.
func (s *Sparse) Pixels() int { return s.PixelsInMask() }

// flatIndexImage holds, per 2D pixel, the 1-based sparse index (0 elsewhere).
func (s *Sparse) flatIndexImage() []int {
	idx, _ := s.indexImage.Get(struct{}{}, func() ([]int, error) {
		out := make([]int, s.geom.Size())
		for off, k := range s.index {
			if k != NoPixel {
				out[off] = k + 1
			}
		}
		return out, nil
	})

	return idx
}

// IndexImage returns a 2D array holding, for every sparse pixel, its
// 1-based sparse index and 0 everywhere else.
func (s *Sparse) IndexImage() [][]int {
	flat := s.flatIndexImage()
	out := make([][]int, s.geom.Rows)
	for i := range out {
		out[i] = make([]int, s.geom.Cols)
		copy(out[i], flat[i*s.geom.Cols:(i+1)*s.geom.Cols])
	}

	return out
}

// SparseToImage returns, for every sparse pixel in raster order, the 1D
// index of the same pixel in the base mask enumeration.
func (s *Sparse) SparseToImage() []int {
	out, _ := s.sparseToImage.Get(struct{}{}, func() ([]int, error) {
		idx := make([]int, 0, s.pixels)
		s.forEachUnmasked(func(i, j, _ int) {
			idx = append(idx, s.base.PixelIndex(i, j))
		})
		return idx, nil
	})

	return append([]int(nil), out...)
}

// ImageToSparse pairs every base pixel with its nearest sparse pixel. The
// search probes square rings of radius 0, 1, 2, ... around the pixel and
// takes the first sparse pixel met in raster order. The radius is capped at
// min(MaxSearchRadius, max(rows, cols)-1), beyond which the whole array has
// been covered.
// Errors:
//   - ErrSearchExhausted (wrapped with the pixel) when a base pixel has no
//     sparse pixel within the capped radius.
func (s *Sparse) ImageToSparse() ([]int, error) {
	out, err := s.imageToSparse.Get(struct{}{}, s.computeImageToSparse)
	if err != nil {
		return nil, err
	}

	return append([]int(nil), out...), nil
}

func (s *Sparse) computeImageToSparse() ([]int, error) {
	flat := s.flatIndexImage()
	maxR := min(MaxSearchRadius, max(s.geom.Rows, s.geom.Cols)-1)
	out := make([]int, s.base.pixels)
	var err error
	s.base.forEachUnmasked(func(i, j, idx int) {
		if err != nil {
			return
		}
		k, ok := s.nearestSparse(flat, i, j, maxR)
		if !ok {
			err = fmt.Errorf("pixel (%d,%d), radius %d: %w", i, j, maxR, ErrSearchExhausted)
			return
		}
		out[idx] = k
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// nearestSparse returns the 0-based sparse index found on the smallest ring
// around (i,j), or false if none lies within maxR.
func (s *Sparse) nearestSparse(flat []int, i, j, maxR int) (int, bool) {
	for r := 0; r <= maxR; r++ {
		for ni := i - r; ni <= i+r; ni++ {
			edgeRow := ni == i-r || ni == i+r
			step := 1
			if !edgeRow {
				step = 2 * r
			}
			for nj := j - r; nj <= j+r; nj += step {
				if !s.geom.InBounds(ni, nj) {
					continue
				}
				if k := flat[ni*s.geom.Cols+nj]; k > 0 {
					return k - 1, true
				}
			}
		}
	}

	return 0, false
}
