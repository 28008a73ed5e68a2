// SPDX-License-Identifier: MIT

package convolve

import "errors"

var (
	// ErrKernelShape indicates an empty, ragged, non-finite or even-sized kernel.
	ErrKernelShape = errors.New("convolve: kernel must be rectangular, finite and odd in both dimensions")
	// ErrKernelMismatch indicates a kernel whose shape differs from the frames.
	ErrKernelMismatch = errors.New("convolve: kernel shape does not match convolver frames")
	// ErrLengthMismatch indicates an image length that differs from the pixel count.
	ErrLengthMismatch = errors.New("convolve: image length does not match pixels")
	// ErrOutOfRange indicates a kernel cell or frame index outside its bounds.
	ErrOutOfRange = errors.New("convolve: index out of range")
	// ErrZeroSum indicates a kernel that cannot be normalized.
	ErrZeroSum = errors.New("convolve: kernel sums to zero")
)
