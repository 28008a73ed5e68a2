// Package convolve blurs masked 1D images with a point-spread function
// without ever leaving the masked representation.
//
// A FrameMaker precomputes, for one mask and one kernel shape, the target
// 1D index of every kernel cell around every unmasked pixel (a frame), plus
// the same for every pixel of the blurring region just outside the mask.
// Convolution then reduces to a scatter over those frames:
//
//	out[frame[q][c]] += image[q] * kernel[c]   for frame[q][c] != NoTarget
//
// Zero-valued sources are skipped, which makes sparse model images cheap.
//
// FFTConvolve computes the same 2D convolution on a full array through
// gonum's FFT. It is the reference the frame convolver is tested against.
//
// Kernel layout and orientation:
//   - Kernels are odd in both dimensions, centre at (kRows/2, kCols/2).
//   - Cell (a,b) of a source at (i,j) lands on (i+a-kRows/2, j+b-kCols/2),
//     which is a true (flipped) convolution, not a correlation.
package convolve
