// SPDX-License-Identifier: MIT

package border

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lensgrid/grids"
)

// GridBorder holds the border pixel indices of a coordinate grid and the
// configuration of the radius(θ) fit. It carries no fitted state: every
// relocation refits the polynomial to the grid it is given.
type GridBorder struct {
	pixels []int
	degree int
	centre [2]float64
}

// New returns a GridBorder over the given border pixel indices, typically
// mask.BorderPixelIndices().
func New(borderPixels []int, opts ...Option) *GridBorder {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &GridBorder{
		pixels: append([]int(nil), borderPixels...),
		degree: o.degree,
		centre: o.centre,
	}
}

// BorderPixels returns a copy of the border pixel indices.
func (b *GridBorder) BorderPixels() []int { return append([]int(nil), b.pixels...) }

// Degree returns the polynomial degree.
func (b *GridBorder) Degree() int { return b.degree }

// Centre returns the polar origin.
func (b *GridBorder) Centre() (x, y float64) { return b.centre[0], b.centre[1] }

// ThetaFromX returns the counter-clockwise angle in degrees between the
// positive x-axis and (x, y) measured from the centre, in [0, 360).
func (b *GridBorder) ThetaFromX(x, y float64) float64 {
	theta := math.Atan2(y-b.centre[1], x-b.centre[0]) * 180 / math.Pi
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		theta -= 360
	}

	return theta
}

// Radius returns the distance of (x, y) from the centre.
func (b *GridBorder) Radius(x, y float64) float64 {
	return math.Hypot(x-b.centre[0], y-b.centre[1])
}

// PolynomialFit fits the border radius as a polynomial in angle, using the
// border pixels of grid.
// Errors:
//   - ErrBorderIndex, ErrTooFewBorderPixels, ErrSingularFit.
func (b *GridBorder) PolynomialFit(grid *grids.Grid) (Polynomial, error) {
	n := grid.Len()
	thetas := make([]float64, len(b.pixels))
	radii := make([]float64, len(b.pixels))
	for k, idx := range b.pixels {
		if idx < 0 || idx >= n {
			return Polynomial{}, fmt.Errorf("GridBorder.PolynomialFit: index %d of %d: %w", idx, n, ErrBorderIndex)
		}
		x, y := grid.At(idx)
		thetas[k] = b.ThetaFromX(x, y)
		radii[k] = b.Radius(x, y)
	}

	return fitPolynomial(thetas, radii, b.degree)
}

// MoveFactor returns how far (x, y) must be scaled towards the centre to
// lie on the border described by p: borderRadius/radius when it lies
// outside, exactly 1.0 otherwise.
func (b *GridBorder) MoveFactor(p Polynomial, x, y float64) float64 {
	radius := b.Radius(x, y)
	borderRadius := p.Eval(b.ThetaFromX(x, y))
	if radius > borderRadius {
		return borderRadius / radius
	}

	return 1.0
}

// relocator returns the Transform that moves coordinates onto the border.
func (b *GridBorder) relocator(p Polynomial) grids.Transform {
	return func(x, y float64) (float64, float64) {
		f := b.MoveFactor(p, x, y)
		if f == 1.0 {
			return x, y
		}
		return b.centre[0] + (x-b.centre[0])*f, b.centre[1] + (y-b.centre[1])*f
	}
}

// RelocateCoordinates fits the border to grid and returns a new grid in
// which every coordinate outside the border has been moved onto it.
func (b *GridBorder) RelocateCoordinates(grid *grids.Grid) (*grids.Grid, error) {
	p, err := b.PolynomialFit(grid)
	if err != nil {
		return nil, err
	}

	return grid.Map(b.relocator(p)), nil
}

// RelocateSubCoordinates fits the border to grid (the parent pixels) and
// applies that fit to every sub-coordinate of sub, so sub-pixels move
// consistently with their parent's border.
// Errors:
//   - ErrPixelMismatch when sub.Pixels() != grid.Len(); fit errors as above.
func (b *GridBorder) RelocateSubCoordinates(grid *grids.Grid, sub *grids.SubGrid) (*grids.SubGrid, error) {
	if sub.Pixels() != grid.Len() {
		return nil, fmt.Errorf("GridBorder.RelocateSubCoordinates: %d sub pixels, %d pixels: %w", sub.Pixels(), grid.Len(), ErrPixelMismatch)
	}
	p, err := b.PolynomialFit(grid)
	if err != nil {
		return nil, err
	}

	return sub.Map(b.relocator(p)), nil
}
