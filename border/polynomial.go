// SPDX-License-Identifier: MIT

package border

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// thetaScale maps θ ∈ [0, 360) onto u ∈ [0, 1) before fitting, which keeps
// the Vandermonde system well conditioned.
const thetaScale = 360.0

// Polynomial is a fitted border radius as a function of angle in degrees.
type Polynomial struct {
	coeffs []float64 // in powers of u = θ/thetaScale, highest first
}

// Degree returns the polynomial degree.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Eval returns the border radius at angle theta (degrees).
// Complexity: O(d), Horner's rule.
func (p Polynomial) Eval(theta float64) float64 {
	u := theta / thetaScale
	var r float64
	for _, c := range p.coeffs {
		r = r*u + c
	}

	return r
}

// Coefficients returns the coefficients in powers of θ (degrees), highest
// power first.
func (p Polynomial) Coefficients() []float64 {
	d := p.Degree()
	out := make([]float64, len(p.coeffs))
	for k, c := range p.coeffs {
		out[k] = c / math.Pow(thetaScale, float64(d-k))
	}

	return out
}

// fitPolynomial solves the least-squares problem radii ≈ poly(thetas).
// MAIN DESCRIPTION:
//   - Build the Vandermonde matrix V[k][c] = u_k^(d-c).
//   - Factorize V = QR and solve min ||V·x - r||₂.
//
// Errors:
//   - ErrTooFewBorderPixels when len(thetas) < degree+1.
//   - ErrSingularFit when the factorization reports a (near) singular system.
func fitPolynomial(thetas, radii []float64, degree int) (Polynomial, error) {
	n, cols := len(thetas), degree+1
	if n < cols {
		return Polynomial{}, fmt.Errorf("fit degree %d to %d points: %w", degree, n, ErrTooFewBorderPixels)
	}
	v := mat.NewDense(n, cols, nil)
	for k, theta := range thetas {
		u := theta / thetaScale
		pow := 1.0
		for c := cols - 1; c >= 0; c-- {
			v.Set(k, c, pow)
			pow *= u
		}
	}
	rhs := mat.NewVecDense(n, append([]float64(nil), radii...))

	var qr mat.QR
	qr.Factorize(v)
	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, rhs); err != nil {
		return Polynomial{}, fmt.Errorf("fit degree %d to %d points: %v: %w", degree, n, err, ErrSingularFit)
	}
	coeffs := make([]float64, cols)
	for c := range coeffs {
		coeffs[c] = x.AtVec(c)
	}

	return Polynomial{coeffs: coeffs}, nil
}
