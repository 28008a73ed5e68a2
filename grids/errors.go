package grids

import "errors"

var (
	// ErrLengthMismatch indicates a value slice whose length does not match the grid.
	ErrLengthMismatch = errors.New("grids: length mismatch")
	// ErrSubSize indicates a sub-grid size smaller than 1.
	ErrSubSize = errors.New("grids: sub size must be >= 1")
	// ErrIndex indicates a pixel index outside the grid.
	ErrIndex = errors.New("grids: index out of range")
)
