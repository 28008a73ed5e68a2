// Package mask defines the boolean exclusion grid laid over an image and
// everything derived from it: the compact coordinate grids, the 1D↔2D pixel
// mappings, border pixels, blurring masks and sparse masks.
//
// What:
//
//   - Mask wraps a row-major []bool (true = masked/excluded) with its pixel
//     Geometry. It is immutable once built.
//   - Indexing outside the grid returns true: neighbour searches can probe
//     past the edge without bounds checks, and pixels on the array edge are
//     border pixels.
//   - Unmasked pixels are enumerated in raster order (axis 0 outer, axis 1
//     inner). That enumeration defines the 1D index used by every grid,
//     masked array and convolution frame.
//   - Derived structures that are expensive or reused (border indices,
//     blurring masks, sparse mappings) are memoized per instance.
//
// Factories:
//
//   - New, Empty, Unmasked, Circular, Annular, ForSimulate.
//
// Complexity:
//
//   - Factories, CoordinateGrid, Masked1D, Map2D, BorderPixelIndices: O(W×H).
//   - SubCoordinateGrid: O(W×H×s²).
//   - BlurringMask: O(W×H×kr×kc).
//   - Sparse.ImageToSparse: O(P×R²) worst case, P unmasked pixels, R the
//     capped search radius.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed explicit cells.
//   - ErrKernelShape: PSF for ForSimulate is not odd and square.
//   - ErrMaskShape: blurring kernel shape is not odd.
//   - ErrBoundary: the blurring region leaves the array; pad the image first.
//   - ErrShapeMismatch, ErrLengthMismatch: data does not match the mask.
//   - ErrSubSize, ErrRadius, ErrSparseStride: invalid parameters.
//   - ErrSearchExhausted: a sparse neighbour search found nothing in range.
package mask
