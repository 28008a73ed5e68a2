package grids

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lensgrid/memo"
	"gonum.org/v1/gonum/floats"
)

// SubGrid holds subSize² coordinates per image pixel, laid out in the same
// pixel order as the parent Grid. Each pixel's block is contiguous and in
// raster order over its own sub-grid.
type SubGrid struct {
	data       []float64 // interleaved x,y
	subSize    int
	pixelScale float64

	subToImage memo.Cache[struct{}, []int]
}

// NewSub copies coords into a SubGrid. len(coords) must be a multiple of
// subSize².
func NewSub(coords [][2]float64, subSize int, pixelScale float64) (*SubGrid, error) {
	data := make([]float64, 2*len(coords))
	for i, c := range coords {
		data[2*i], data[2*i+1] = c[0], c[1]
	}

	return SubFromFlat(data, subSize, pixelScale)
}

// SubFromFlat wraps an interleaved x,y buffer without copying. The caller
// hands over ownership of data.
func SubFromFlat(data []float64, subSize int, pixelScale float64) (*SubGrid, error) {
	if subSize < 1 {
		return nil, fmt.Errorf("SubFromFlat(%d): %w", subSize, ErrSubSize)
	}
	if len(data)%(2*subSize*subSize) != 0 {
		return nil, fmt.Errorf("SubFromFlat: %d values for sub size %d: %w", len(data), subSize, ErrLengthMismatch)
	}

	return &SubGrid{data: data, subSize: subSize, pixelScale: pixelScale}, nil
}

// Len returns the number of sub-coordinates.
func (s *SubGrid) Len() int { return len(s.data) / 2 }

// Pixels returns the number of parent image pixels.
func (s *SubGrid) Pixels() int { return s.Len() / s.SubLength() }

// SubSize returns the per-axis subdivision.
func (s *SubGrid) SubSize() int { return s.subSize }

// SubLength returns subSize², the number of sub-pixels per pixel.
func (s *SubGrid) SubLength() int { return s.subSize * s.subSize }

// SubFraction returns 1/subSize², the area weight of one sub-pixel.
func (s *SubGrid) SubFraction() float64 { return 1 / float64(s.SubLength()) }

// PixelScale returns the pixel scale of the originating mask.
func (s *SubGrid) PixelScale() float64 { return s.pixelScale }

// At returns sub-coordinate i.
func (s *SubGrid) At(i int) (x, y float64) { return s.data[2*i], s.data[2*i+1] }

// Coordinates returns a copy of all sub-coordinates as pairs.
func (s *SubGrid) Coordinates() [][2]float64 {
	out := make([][2]float64, s.Len())
	for i := range out {
		out[i] = [2]float64{s.data[2*i], s.data[2*i+1]}
	}

	return out
}

// Block returns the sub-coordinates of one image pixel.
func (s *SubGrid) Block(pixel int) ([][2]float64, error) {
	if pixel < 0 || pixel >= s.Pixels() {
		return nil, fmt.Errorf("SubGrid.Block(%d): %w", pixel, ErrIndex)
	}
	n := s.SubLength()
	out := make([][2]float64, n)
	base := pixel * n
	for k := 0; k < n; k++ {
		out[k] = [2]float64{s.data[2*(base+k)], s.data[2*(base+k)+1]}
	}

	return out, nil
}

// Map applies t to every sub-coordinate.
func (s *SubGrid) Map(t Transform) *SubGrid {
	return &SubGrid{data: mapFlat(s.data, t), subSize: s.subSize, pixelScale: s.pixelScale}
}

// Deflect ray-traces every sub-coordinate through d.
func (s *SubGrid) Deflect(d Deflector) *SubGrid { return s.Map(rayTrace(d)) }

// Evaluate returns p evaluated at every sub-coordinate.
func (s *SubGrid) Evaluate(p Profile) []float64 { return evaluateFlat(s.data, p) }

// SubToImage returns, for every sub-pixel, the index of its parent pixel.
// The mapping is computed once per SubGrid; every call returns a fresh copy.
func (s *SubGrid) SubToImage() []int {
	out, _ := s.subToImage.Get(struct{}{}, func() ([]int, error) {
		n := s.SubLength()
		idx := make([]int, s.Len())
		for k := range idx {
			idx[k] = k / n
		}
		return idx, nil
	})

	return slices.Clone(out)
}

// SubDataToImage bins one value per sub-pixel into one value per pixel by
// averaging each contiguous block of subSize² entries.
// Errors:
//   - ErrLengthMismatch when len(data) != Len().
func (s *SubGrid) SubDataToImage(data []float64) ([]float64, error) {
	if len(data) != s.Len() {
		return nil, fmt.Errorf("SubGrid.SubDataToImage: got %d values, want %d: %w", len(data), s.Len(), ErrLengthMismatch)
	}
	n := s.SubLength()
	frac := s.SubFraction()
	out := make([]float64, s.Pixels())
	for p := range out {
		out[p] = frac * floats.Sum(data[p*n:(p+1)*n])
	}

	return out, nil
}
