// SPDX-License-Identifier: MIT
// Package scaled: sentinel error set.
// Every algorithm in this package returns one of these sentinels, optionally
// wrapped with call-site context via fmt.Errorf("...: %w", ErrX). Callers
// match them with errors.Is.

package scaled

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0, cols<=0,
	// or a pad/trim target that does not contain the source).
	ErrBadShape = errors.New("scaled: invalid shape")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("scaled: all rows must have the same length")

	// ErrOutOfRange indicates that a pixel index lies outside the array.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("scaled: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("scaled: NaN or Inf encountered")

	// ErrPixelScale indicates a non-positive or non-finite arc-second pixel scale.
	ErrPixelScale = errors.New("scaled: pixel scale must be finite and > 0")

	// ErrPadParity indicates a pad/trim whose size difference cannot be split
	// evenly between both sides of an axis.
	ErrPadParity = errors.New("scaled: pad/trim difference must be even on both axes")
)
