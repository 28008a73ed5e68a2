// SPDX-License-Identifier: MIT

package convolve

import (
	"fmt"

	"github.com/katalvlaran/lensgrid/scaled"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTConvolve returns the "same"-size 2D convolution of a with k, treating
// everything outside a as zero.
// MAIN DESCRIPTION:
//   - Zero-pad a and k to (H+kr-1)×(W+kc-1) so the circular convolution
//     equals the linear one.
//   - Forward 2D FFT of both, pointwise product, inverse FFT, divide by the
//     padded size (gonum leaves the transform unnormalized).
//   - Crop the window starting at (kr/2, kc/2).
//
// Errors:
//   - scaled.ErrNaNInf when the product overflows float64.
//
// Complexity:
//   - O(N log N) for N padded cells.
func FFTConvolve(a *scaled.Array, k *Kernel) (*scaled.Array, error) {
	h, w := a.Shape()
	ph, pw := h+k.rows-1, w+k.cols-1

	img := make([][]complex128, ph)
	ker := make([][]complex128, ph)
	for y := 0; y < ph; y++ {
		img[y] = make([]complex128, pw)
		ker[y] = make([]complex128, pw)
	}
	for y, row := range a.Rows2D() {
		for x, v := range row {
			img[y][x] = complex(v, 0)
		}
	}
	for y := 0; y < k.rows; y++ {
		for x := 0; x < k.cols; x++ {
			ker[y][x] = complex(k.data[y*k.cols+x], 0)
		}
	}

	fft2(img, true)
	fft2(ker, true)
	for y := range img {
		for x := range img[y] {
			img[y][x] *= ker[y][x]
		}
	}
	fft2(img, false)

	norm := float64(ph * pw)
	oy, ox := k.rows/2, k.cols/2
	values := make([][]float64, h)
	for y := range values {
		values[y] = make([]float64, w)
		for x := range values[y] {
			values[y][x] = real(img[y+oy][x+ox]) / norm
		}
	}
	out, err := scaled.FromRows(values, a.PixelScale())
	if err != nil {
		return nil, fmt.Errorf("FFTConvolve: %w", err)
	}

	return out, nil
}

// fft2 transforms a in place, rows then columns.
func fft2(a [][]complex128, forward bool) {
	h, w := len(a), len(a[0])
	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	for y := 0; y < h; y++ {
		if forward {
			rowFFT.Coefficients(a[y], a[y])
		} else {
			rowFFT.Sequence(a[y], a[y])
		}
	}
	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y][x]
		}
		if forward {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := 0; y < h; y++ {
			a[y][x] = col[y]
		}
	}
}
