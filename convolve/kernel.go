// SPDX-License-Identifier: MIT

package convolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel is an odd-sized PSF stored row-major.
type Kernel struct {
	rows, cols int
	data       []float64
}

// NewKernel deep-copies values into a Kernel.
// Errors:
//   - ErrKernelShape for an empty or ragged input, an even dimension, or a
//     NaN/Inf entry.
func NewKernel(values [][]float64) (*Kernel, error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("NewKernel: empty: %w", ErrKernelShape)
	}
	cols := len(values[0])
	if rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("NewKernel: %dx%d: %w", rows, cols, ErrKernelShape)
	}
	data := make([]float64, 0, rows*cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("NewKernel: row %d has %d values, want %d: %w", i, len(row), cols, ErrKernelShape)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewKernel: (%d,%d)=%v: %w", i, j, v, ErrKernelShape)
			}
		}
		data = append(data, row...)
	}

	return &Kernel{rows: rows, cols: cols, data: data}, nil
}

// Shape returns the kernel dimensions.
func (k *Kernel) Shape() (rows, cols int) { return k.rows, k.cols }

// At returns cell (a,b).
func (k *Kernel) At(a, b int) (float64, error) {
	if a < 0 || a >= k.rows || b < 0 || b >= k.cols {
		return 0, fmt.Errorf("Kernel.At(%d,%d): %w", a, b, ErrOutOfRange)
	}

	return k.data[a*k.cols+b], nil
}

// Sum returns the sum of all cells.
func (k *Kernel) Sum() float64 { return floats.Sum(k.data) }

// Normalized returns a copy scaled to unit sum.
// Errors:
//   - ErrZeroSum when Sum is zero.
func (k *Kernel) Normalized() (*Kernel, error) {
	s := k.Sum()
	if s == 0 {
		return nil, fmt.Errorf("Kernel.Normalized: %w", ErrZeroSum)
	}
	data := make([]float64, len(k.data))
	floats.ScaleTo(data, 1/s, k.data)

	return &Kernel{rows: k.rows, cols: k.cols, data: data}, nil
}

// Rows2D returns a copy of the kernel as [][]float64.
func (k *Kernel) Rows2D() [][]float64 {
	out := make([][]float64, k.rows)
	for a := range out {
		out[a] = append([]float64(nil), k.data[a*k.cols:(a+1)*k.cols]...)
	}

	return out
}
