// SPDX-License-Identifier: MIT

package border

import "errors"

var (
	// ErrBorderIndex indicates a border pixel index outside the coordinate grid.
	ErrBorderIndex = errors.New("border: border pixel index out of range")
	// ErrTooFewBorderPixels indicates fewer border pixels than polynomial coefficients.
	ErrTooFewBorderPixels = errors.New("border: too few border pixels for polynomial degree")
	// ErrSingularFit indicates the least-squares system is rank deficient.
	ErrSingularFit = errors.New("border: polynomial fit is singular")
	// ErrPixelMismatch indicates a sub-grid whose pixel count differs from the grid.
	ErrPixelMismatch = errors.New("border: sub-grid pixel count does not match grid")
)
