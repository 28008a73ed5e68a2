// Package grids holds the compact 1D coordinate sets derived from a mask:
// one arc-second (x,y) pair per unmasked pixel (Grid), and sub×sub pairs per
// unmasked pixel for oversampled evaluation (SubGrid).
//
// What:
//
//   - Grid and SubGrid wrap a contiguous []float64 of interleaved x,y values
//     plus the metadata they were derived with (pixel scale, sub size).
//     Every derived value (Map, Deflect, Subset) carries that metadata forward.
//   - Profiles and deflectors are consumed through the Profile and Deflector
//     interfaces; Evaluate turns a grid into a same-length slice of values.
//   - SubDataToImage bins oversampled values back to one value per pixel.
//   - Collection bundles the image, sub and blurring grids that travel
//     together through ray-tracing.
//
// Layout:
//
//	Grid:    [x0 y0 x1 y1 ... x(n-1) y(n-1)]            n = pixels in mask
//	SubGrid: [pixel 0: s×s pairs][pixel 1: s×s pairs]...  s = sub size
//
// Within a pixel block the sub-pixels are in raster order, so sub-pixel k of
// the whole grid belongs to pixel k / (s·s).
//
// Errors:
//
//   - ErrLengthMismatch: data length does not match the grid.
//   - ErrSubSize: sub size < 1.
//   - ErrIndex: a subset index is out of range.
package grids
