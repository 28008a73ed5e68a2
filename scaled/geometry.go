// SPDX-License-Identifier: MIT

// Package scaled - pixel geometry shared by arrays, masks and grids.
//
// Purpose:
//   - Convert between 2D pixel indices and arc-second sky coordinates.
//   - Keep one convention for every derived grid: pixel (i,j) maps to
//     x = (i - c0)·scale, y = (j - c1)·scale, where (c0,c1) is the
//     (possibly half-integer) central pixel.
//   - Subdivide a pixel footprint into a uniform sub×sub grid of sub-pixel
//     centres, symmetric about the parent centre.
//
// Complexity quicksheet:
//   - every conversion is O(1) and allocation-free.

package scaled

import (
	"fmt"
	"math"
)

// arcsecGuard absorbs float error when converting an arc-second extent into
// a pixel count (4.0/0.05 == 79.99999999999999).
const arcsecGuard = 1e-9

// Geometry describes the pixel layout of a 2D image on the sky.
// It is a plain value; copying it is cheap and safe.
type Geometry struct {
	Rows, Cols int     // pixel counts along axis 0 and axis 1
	PixelScale float64 // arc-seconds per pixel (>0)
}

// NewGeometry validates and returns a Geometry.
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
//   - ErrPixelScale when pixelScale is not finite and positive.
func NewGeometry(rows, cols int, pixelScale float64) (Geometry, error) {
	if rows <= 0 || cols <= 0 {
		return Geometry{}, fmt.Errorf("NewGeometry(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if err := validatePixelScale(pixelScale); err != nil {
		return Geometry{}, err
	}

	return Geometry{Rows: rows, Cols: cols, PixelScale: pixelScale}, nil
}

// GeometryFromArcsec converts an arc-second extent into a pixel Geometry.
// Pixel counts are truncated: int(extent / pixelScale).
func GeometryFromArcsec(shapeArcsec [2]float64, pixelScale float64) (Geometry, error) {
	if err := validatePixelScale(pixelScale); err != nil {
		return Geometry{}, err
	}
	rows := int(shapeArcsec[0]/pixelScale + arcsecGuard)
	cols := int(shapeArcsec[1]/pixelScale + arcsecGuard)

	return NewGeometry(rows, cols, pixelScale)
}

func validatePixelScale(pixelScale float64) error {
	if math.IsNaN(pixelScale) || math.IsInf(pixelScale, 0) || pixelScale <= 0 {
		return fmt.Errorf("pixel scale %g: %w", pixelScale, ErrPixelScale)
	}

	return nil
}

// Shape returns (Rows, Cols).
func (g Geometry) Shape() (rows, cols int) { return g.Rows, g.Cols }

// Size returns Rows*Cols.
func (g Geometry) Size() int { return g.Rows * g.Cols }

// InBounds reports whether (i,j) lies within the pixel grid.
// Complexity: O(1).
func (g Geometry) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

// ShapeArcsec returns the arc-second extent of the grid.
func (g Geometry) ShapeArcsec() [2]float64 {
	return [2]float64{float64(g.Rows) * g.PixelScale, float64(g.Cols) * g.PixelScale}
}

// CentralPixel returns the pixel-space centre of the grid. For an even axis
// the centre falls between two pixels.
func (g Geometry) CentralPixel() (c0, c1 float64) {
	return float64(g.Rows-1) / 2, float64(g.Cols-1) / 2
}

// PixelToArcsec converts pixel indices to the arc-second coordinate of the
// pixel centre. Indices outside the grid are converted with the same linear
// law; no bounds check is applied.
func (g Geometry) PixelToArcsec(i, j int) (x, y float64) {
	c0, c1 := g.CentralPixel()

	return (float64(i) - c0) * g.PixelScale, (float64(j) - c1) * g.PixelScale
}

// SubPixelToArcsec returns the centre of sub-pixel (si,sj) when pixel (i,j)
// is split into a uniform subSize×subSize grid. The sub-pixel centres are
// symmetric about the parent centre, so their mean is exactly PixelToArcsec(i,j).
func (g Geometry) SubPixelToArcsec(i, j, si, sj, subSize int) (x, y float64) {
	x, y = g.PixelToArcsec(i, j)
	half := g.PixelScale / 2
	step := g.PixelScale / float64(subSize)

	return subCoordinate(x, half, step, si), subCoordinate(y, half, step, sj)
}

func subCoordinate(centre, half, step float64, k int) float64 {
	return centre - half + (float64(k)+0.5)*step
}
