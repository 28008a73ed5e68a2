package mask

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lensgrid/scaled"
)

// Empty returns a fully masked grid covering shapeArcsec at pixelScale.
func Empty(shapeArcsec [2]float64, pixelScale float64) (*Mask, error) {
	g, err := scaled.GeometryFromArcsec(shapeArcsec, pixelScale)
	if err != nil {
		return nil, err
	}

	return fromGeometry(g, func(int, int) bool { return true }), nil
}

// Unmasked returns a grid with every pixel included.
func Unmasked(shapeArcsec [2]float64, pixelScale float64) (*Mask, error) {
	g, err := scaled.GeometryFromArcsec(shapeArcsec, pixelScale)
	if err != nil {
		return nil, err
	}

	return fromGeometry(g, func(int, int) bool { return false }), nil
}

// Circular masks every pixel whose centre lies further than radius
// arc-seconds from the centre (origin unless WithCentre is given).
// Errors:
//   - ErrRadius when radius is negative or not finite.
//   - scaled.ErrBadShape, scaled.ErrPixelScale for a bad geometry.
func Circular(shapeArcsec [2]float64, pixelScale, radius float64, opts ...Option) (*Mask, error) {
	if !validRadius(radius) {
		return nil, fmt.Errorf("Circular(radius=%g): %w", radius, ErrRadius)
	}
	g, err := scaled.GeometryFromArcsec(shapeArcsec, pixelScale)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	return fromGeometry(g, func(i, j int) bool {
		return radiusFromCentre(g, i, j, o.centre) > radius
	}), nil
}

// Annular masks every pixel whose centre lies outside the ring
// inner ≤ r ≤ outer.
// Errors:
//   - ErrRadius when a radius is negative, not finite, or inner > outer.
func Annular(shapeArcsec [2]float64, pixelScale, inner, outer float64, opts ...Option) (*Mask, error) {
	if !validRadius(inner) || !validRadius(outer) || inner > outer {
		return nil, fmt.Errorf("Annular(inner=%g, outer=%g): %w", inner, outer, ErrRadius)
	}
	g, err := scaled.GeometryFromArcsec(shapeArcsec, pixelScale)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	return fromGeometry(g, func(i, j int) bool {
		r := radiusFromCentre(g, i, j, o.centre)
		return r > outer || r < inner
	}), nil
}

// ForSimulate returns an unmasked grid surrounded by a masked margin of
// (psf-1)/2 pixels on every side: the head-room a PSF of that size needs
// when simulating an image.
// Errors:
//   - ErrKernelShape unless psfRows == psfCols and both are odd.
func ForSimulate(shapeArcsec [2]float64, pixelScale float64, psfRows, psfCols int) (*Mask, error) {
	if psfRows <= 0 || psfRows%2 == 0 || psfCols%2 == 0 || psfRows != psfCols {
		return nil, maskErrorf("ForSimulate", psfRows, psfCols, ErrKernelShape)
	}
	inner, err := scaled.GeometryFromArcsec(shapeArcsec, pixelScale)
	if err != nil {
		return nil, err
	}
	pr, pc := (psfRows-1)/2, (psfCols-1)/2
	g, err := scaled.NewGeometry(inner.Rows+psfRows-1, inner.Cols+psfCols-1, pixelScale)
	if err != nil {
		return nil, err
	}

	return fromGeometry(g, func(i, j int) bool {
		return i < pr || i >= pr+inner.Rows || j < pc || j >= pc+inner.Cols
	}), nil
}

func validRadius(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r >= 0
}

func radiusFromCentre(g scaled.Geometry, i, j int, centre [2]float64) float64 {
	x, y := g.PixelToArcsec(i, j)

	return math.Hypot(x-centre[0], y-centre[1])
}
