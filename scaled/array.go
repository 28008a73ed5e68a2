// SPDX-License-Identifier: MIT

// Package scaled - Array: row-major image storage with an attached pixel scale.
//
// Purpose:
//   - Provide the 2D array exchanged with image I/O (data, noise, PSF images).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry the Geometry explicitly through every derived value (Clone, Pad, Trim).
//
// Complexity quicksheet:
//   - NewArray: O(r*c) zero-init; At/Set: O(1); Clone/Pad/Trim: O(r*c).

package scaled

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxPad  = "Pad"
	ctxTrim = "Trim"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// arrayErrorf attaches method context and coordinates to a sentinel error.
func arrayErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, row, col, err)
}

// Array is a 2D image stored row-major (offset = i*cols + j) together with
// its pixel Geometry.
type Array struct {
	geom Geometry
	data []float64
}

var _ fmt.Stringer = (*Array)(nil)

// NewArray creates a rows×cols zero image.
// Errors:
//   - ErrBadShape, ErrPixelScale (see NewGeometry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewArray(rows, cols int, pixelScale float64) (*Array, error) {
	g, err := NewGeometry(rows, cols, pixelScale)
	if err != nil {
		return nil, err
	}

	return &Array{geom: g, data: make([]float64, rows*cols)}, nil
}

// FromRows deep-copies a rectangular [][]float64 into a new Array.
// MAIN DESCRIPTION:
//   - Ingest an image produced by external I/O.
//
// Implementation:
//   - Stage 1: validate non-empty and rectangular input.
//   - Stage 2: validate pixel scale and finite values while copying.
//
// Errors:
//   - ErrBadShape for empty input, ErrNonRectangular for ragged rows,
//     ErrNaNInf for non-finite values, ErrPixelScale for a bad scale.
func FromRows(values [][]float64, pixelScale float64) (*Array, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: %w", ErrNonRectangular)
		}
	}
	a, err := NewArray(rows, cols, pixelScale)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := values[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, arrayErrorf("FromRows", i, j, ErrNaNInf)
			}
			a.data[i*cols+j] = v
		}
	}

	return a, nil
}

// Rows returns the row count.
func (a *Array) Rows() int { return a.geom.Rows }

// Cols returns the column count.
func (a *Array) Cols() int { return a.geom.Cols }

// Shape packs Rows() and Cols() into a single call.
func (a *Array) Shape() (rows, cols int) { return a.geom.Rows, a.geom.Cols }

// PixelScale returns the arc-seconds per pixel.
func (a *Array) PixelScale() float64 { return a.geom.PixelScale }

// Geometry returns the pixel geometry of the array.
func (a *Array) Geometry() Geometry { return a.geom }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (a *Array) indexOf(row, col int) (int, error) {
	if !a.geom.InBounds(row, col) {
		return 0, ErrOutOfRange
	}

	return row*a.geom.Cols + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (a *Array) At(row, col int) (float64, error) {
	off, err := a.indexOf(row, col)
	if err != nil {
		return 0, arrayErrorf(ctxAt, row, col, err)
	}

	return a.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
func (a *Array) Set(row, col int, v float64) error {
	off, err := a.indexOf(row, col)
	if err != nil {
		return arrayErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return arrayErrorf(ctxSet, row, col, ErrNaNInf)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy with the same geometry.
func (a *Array) Clone() *Array {
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return &Array{geom: a.geom, data: cp}
}

// Rows2D returns the image as a freshly allocated [][]float64.
func (a *Array) Rows2D() [][]float64 {
	out := make([][]float64, a.geom.Rows)
	for i := range out {
		out[i] = make([]float64, a.geom.Cols)
		copy(out[i], a.data[i*a.geom.Cols:(i+1)*a.geom.Cols])
	}

	return out
}

// Values returns a copy of the row-major pixel buffer.
func (a *Array) Values() []float64 {
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return cp
}

// Sum returns the sum of all pixel values.
func (a *Array) Sum() float64 { return floats.Sum(a.data) }

// Pad centre-pads the array to rows×cols, filling new pixels with value.
// MAIN DESCRIPTION:
//   - Provide convolution head-room around an image (see mask.ForSimulate).
//
// Implementation:
//   - Stage 1: validate that the target contains the source and that the
//     difference per axis is even (equal padding on both sides).
//   - Stage 2: fill, then copy the source block at offset (dr/2, dc/2).
//
// Errors:
//   - ErrBadShape when the target is smaller; ErrPadParity on odd differences;
//     ErrNaNInf when value is not finite.
func (a *Array) Pad(rows, cols int, value float64) (*Array, error) {
	dr, dc := rows-a.geom.Rows, cols-a.geom.Cols
	if dr < 0 || dc < 0 {
		return nil, arrayErrorf(ctxPad, rows, cols, ErrBadShape)
	}
	if dr%2 != 0 || dc%2 != 0 {
		return nil, arrayErrorf(ctxPad, rows, cols, ErrPadParity)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, arrayErrorf(ctxPad, rows, cols, ErrNaNInf)
	}
	out, err := NewArray(rows, cols, a.geom.PixelScale)
	if err != nil {
		return nil, err
	}
	if value != 0 {
		for k := range out.data {
			out.data[k] = value
		}
	}
	r0, c0 := dr/2, dc/2
	for i := 0; i < a.geom.Rows; i++ {
		copy(out.data[(i+r0)*cols+c0:(i+r0)*cols+c0+a.geom.Cols], a.data[i*a.geom.Cols:(i+1)*a.geom.Cols])
	}

	return out, nil
}

// Trim is the inverse of Pad: it keeps the central rows×cols block.
// Errors:
//   - ErrBadShape when the target is larger or empty; ErrPadParity on odd differences.
func (a *Array) Trim(rows, cols int) (*Array, error) {
	dr, dc := a.geom.Rows-rows, a.geom.Cols-cols
	if dr < 0 || dc < 0 || rows <= 0 || cols <= 0 {
		return nil, arrayErrorf(ctxTrim, rows, cols, ErrBadShape)
	}
	if dr%2 != 0 || dc%2 != 0 {
		return nil, arrayErrorf(ctxTrim, rows, cols, ErrPadParity)
	}
	out, err := NewArray(rows, cols, a.geom.PixelScale)
	if err != nil {
		return nil, err
	}
	r0, c0 := dr/2, dc/2
	for i := 0; i < rows; i++ {
		src := (i+r0)*a.geom.Cols + c0
		copy(out.data[i*cols:(i+1)*cols], a.data[src:src+cols])
	}

	return out, nil
}

// String renders the array row by row for diagnostics. Not for hot paths.
func (a *Array) String() string {
	var b strings.Builder
	for i := 0; i < a.geom.Rows; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * a.geom.Cols
		for j := 0; j < a.geom.Cols; j++ {
			b.WriteString(fmt.Sprintf("%g", a.data[base+j]))
			if j+1 < a.geom.Cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
