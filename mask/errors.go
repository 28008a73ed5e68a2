package mask

import "errors"

// Sentinel errors for mask operations.
var (
	// ErrEmptyGrid indicates the input cells have no rows or no columns.
	ErrEmptyGrid = errors.New("mask: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mask: all rows must have the same length")
	// ErrKernelShape indicates a PSF shape that is not odd and square.
	ErrKernelShape = errors.New("mask: PSF kernel must be odd and square")
	// ErrMaskShape indicates a blurring kernel shape that is not odd in both dimensions.
	ErrMaskShape = errors.New("mask: kernel shape of the blurring region must be odd")
	// ErrBoundary indicates the blurring region extends beyond the array.
	ErrBoundary = errors.New("mask: blurring region extends beyond the array - pad the image before masking")
	// ErrShapeMismatch indicates a 2D array whose shape differs from the mask.
	ErrShapeMismatch = errors.New("mask: array shape does not match mask shape")
	// ErrLengthMismatch indicates a 1D array whose length differs from PixelsInMask.
	ErrLengthMismatch = errors.New("mask: data length does not match pixels in mask")
	// ErrSubSize indicates a sub-grid size smaller than 1.
	ErrSubSize = errors.New("mask: sub grid size must be >= 1")
	// ErrRadius indicates a negative, non-finite, or inverted mask radius.
	ErrRadius = errors.New("mask: invalid radius")
	// ErrSparseStride indicates a sparse grid stride smaller than 1.
	ErrSparseStride = errors.New("mask: sparse grid stride must be >= 1")
	// ErrSearchExhausted indicates no sparse pixel was found within the search radius.
	ErrSearchExhausted = errors.New("mask: sparse neighbour search exhausted")
)
