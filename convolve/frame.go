// SPDX-License-Identifier: MIT

package convolve

import (
	"fmt"

	"github.com/katalvlaran/lensgrid/mask"
	"github.com/katalvlaran/lensgrid/memo"
)

// NoTarget marks a kernel cell whose target pixel is masked or off the array.
const NoTarget = -1

// FrameMaker builds Convolvers for one mask. Each kernel shape is computed
// once and shared.
type FrameMaker struct {
	mask       *mask.Mask
	convolvers memo.Cache[[2]int, *Convolver]
}

// NewFrameMaker returns a FrameMaker over m.
func NewFrameMaker(m *mask.Mask) *FrameMaker {
	return &FrameMaker{mask: m}
}

// Mask returns the mask the frames are built over.
func (fm *FrameMaker) Mask() *mask.Mask { return fm.mask }

// ConvolverForKernelShape returns the frames for a kRows×kCols kernel.
// Errors:
//   - ErrKernelShape when either dimension is not a positive odd number.
//
// Complexity:
//   - First call per shape O((P+B)·kRows·kCols), P pixels in mask and B in
//     the blurring region; later calls O(1).
func (fm *FrameMaker) ConvolverForKernelShape(kRows, kCols int) (*Convolver, error) {
	if kRows <= 0 || kCols <= 0 || kRows%2 == 0 || kCols%2 == 0 {
		return nil, fmt.Errorf("FrameMaker.ConvolverForKernelShape(%d,%d): %w", kRows, kCols, ErrKernelShape)
	}

	return fm.convolvers.Get([2]int{kRows, kCols}, func() (*Convolver, error) {
		return fm.build(kRows, kCols)
	})
}

func (fm *FrameMaker) build(kRows, kCols int) (*Convolver, error) {
	blurring, err := fm.mask.ClippedBlurringMask(kRows, kCols)
	if err != nil {
		return nil, err
	}
	c := &Convolver{
		kRows:    kRows,
		kCols:    kCols,
		pixels:   fm.mask.PixelsInMask(),
		blurring: blurring,
	}
	c.frames = fm.framesFor(fm.mask.GridToPixel(), kRows, kCols)
	c.blurringFrames = fm.framesFor(blurring.GridToPixel(), kRows, kCols)

	return c, nil
}

// framesFor lays out one frame per source position, back to back.
func (fm *FrameMaker) framesFor(sources [][2]int, kRows, kCols int) []int {
	hr, hc := kRows/2, kCols/2
	size := kRows * kCols
	frames := make([]int, len(sources)*size)
	for q, src := range sources {
		frame := frames[q*size : (q+1)*size]
		for a := 0; a < kRows; a++ {
			for b := 0; b < kCols; b++ {
				frame[a*kCols+b] = fm.mask.PixelIndex(src[0]+a-hr, src[1]+b-hc)
			}
		}
	}

	return frames
}

// Convolver holds the frames of one mask for one kernel shape. It is
// immutable and safe for concurrent use.
type Convolver struct {
	kRows, kCols   int
	pixels         int
	frames         []int
	blurring       *mask.Mask
	blurringFrames []int
}

// KernelShape returns the kernel dimensions the frames were built for.
func (c *Convolver) KernelShape() (rows, cols int) { return c.kRows, c.kCols }

// Pixels returns the number of unmasked pixels, the length of Convolve input.
func (c *Convolver) Pixels() int { return c.pixels }

// BlurringPixels returns the number of blurring-region pixels.
func (c *Convolver) BlurringPixels() int { return c.blurring.PixelsInMask() }

// BlurringMask returns the (clipped) blurring mask the blurring frames index.
func (c *Convolver) BlurringMask() *mask.Mask { return c.blurring }

// Frame returns a copy of the frame of mask pixel i: for every flattened
// kernel cell, the 1D index it scatters to or NoTarget.
func (c *Convolver) Frame(i int) ([]int, error) {
	return frameAt(c.frames, c.pixels, c.kRows*c.kCols, i)
}

// BlurringFrame returns a copy of the frame of blurring pixel i.
func (c *Convolver) BlurringFrame(i int) ([]int, error) {
	return frameAt(c.blurringFrames, c.BlurringPixels(), c.kRows*c.kCols, i)
}

func frameAt(frames []int, n, size, i int) ([]int, error) {
	if i < 0 || i >= n {
		return nil, fmt.Errorf("Convolver.Frame(%d) of %d: %w", i, n, ErrOutOfRange)
	}

	return append([]int(nil), frames[i*size:(i+1)*size]...), nil
}

// ForKernel binds a kernel of the matching shape.
// Errors:
//   - ErrKernelMismatch when k's shape differs from KernelShape.
func (c *Convolver) ForKernel(k *Kernel) (*KernelConvolver, error) {
	if k.rows != c.kRows || k.cols != c.kCols {
		return nil, fmt.Errorf("Convolver.ForKernel: kernel %dx%d, frames %dx%d: %w", k.rows, k.cols, c.kRows, c.kCols, ErrKernelMismatch)
	}

	return &KernelConvolver{Convolver: c, kernel: append([]float64(nil), k.data...)}, nil
}
