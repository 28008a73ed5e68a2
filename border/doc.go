// Package border relocates ray-traced coordinates that fall outside the
// source-plane border back onto it.
//
// What:
//
//   - The border is the set of mask border pixels (mask.BorderPixelIndices),
//     looked up in a coordinate grid after ray-tracing.
//   - Their radius from a centre is fitted as a polynomial in polar angle
//     θ ∈ [0, 360) degrees, by least squares (gonum QR).
//   - Any coordinate whose radius exceeds the fitted border radius at its
//     angle is scaled radially onto the border; every other coordinate is
//     returned unchanged.
//
// Why:
//
//   - Highly demagnified central image pixels can be traced far outside the
//     source-plane footprint and would otherwise stretch a pixelization.
//
// Complexity:
//
//   - PolynomialFit: O(B·d²) for B border pixels and degree d.
//   - RelocateCoordinates / RelocateSubCoordinates: O(B·d² + N·d).
//
// Options:
//
//   - WithPolynomialDegree(n): degree of the fit (DefaultPolynomialDegree = 3).
//   - WithCentre(x, y): polar origin (default (0, 0)).
//
// Errors:
//
//   - ErrBorderIndex: a border index is outside the coordinate grid.
//   - ErrTooFewBorderPixels: fewer border pixels than polynomial coefficients.
//   - ErrSingularFit: the border angles cannot determine the polynomial.
//   - ErrPixelMismatch: sub-grid and grid describe different pixel counts.
package border
