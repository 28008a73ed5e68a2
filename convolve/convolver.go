// SPDX-License-Identifier: MIT

package convolve

import "fmt"

// KernelConvolver is a Convolver bound to one kernel.
type KernelConvolver struct {
	*Convolver
	kernel []float64
}

// Convolve blurs a masked 1D image. Light scattered onto masked pixels or
// off the array is dropped.
// Errors:
//   - ErrLengthMismatch when len(image) != Pixels().
//
// Complexity:
//   - O(nz·kRows·kCols) for nz non-zero pixels.
func (kc *KernelConvolver) Convolve(image []float64) ([]float64, error) {
	if len(image) != kc.pixels {
		return nil, fmt.Errorf("KernelConvolver.Convolve: %d values, %d pixels: %w", len(image), kc.pixels, ErrLengthMismatch)
	}
	out := make([]float64, kc.pixels)
	kc.scatter(out, image, kc.frames)

	return out, nil
}

// ConvolveWithBlurring blurs image as Convolve does and adds the light that
// the blurring-region values spread into the mask.
// Errors:
//   - ErrLengthMismatch for either input of the wrong length.
func (kc *KernelConvolver) ConvolveWithBlurring(image, blurring []float64) ([]float64, error) {
	if n := kc.BlurringPixels(); len(blurring) != n {
		return nil, fmt.Errorf("KernelConvolver.ConvolveWithBlurring: %d blurring values, %d pixels: %w", len(blurring), n, ErrLengthMismatch)
	}
	out, err := kc.Convolve(image)
	if err != nil {
		return nil, err
	}
	kc.scatter(out, blurring, kc.blurringFrames)

	return out, nil
}

func (kc *KernelConvolver) scatter(out, values []float64, frames []int) {
	size := len(kc.kernel)
	for q, v := range values {
		if v == 0 {
			continue
		}
		frame := frames[q*size : (q+1)*size]
		for c, t := range frame {
			if t != NoTarget {
				out[t] += v * kc.kernel[c]
			}
		}
	}
}
