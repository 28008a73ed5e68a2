// SPDX-License-Identifier: MIT

package border

import "math"

// DefaultPolynomialDegree is the degree of the border radius fit.
const DefaultPolynomialDegree = 3

const (
	panicDegreeInvalid = "border: WithPolynomialDegree: degree must be >= 0"
	panicCentreInvalid = "border: WithCentre: centre must be finite"
)

// Option configures a GridBorder.
type Option func(*options)

type options struct {
	degree int
	centre [2]float64
}

func defaultOptions() options {
	return options{degree: DefaultPolynomialDegree}
}

// WithPolynomialDegree sets the degree of the radius(θ) polynomial.
// Panics on a negative degree (programmer error).
func WithPolynomialDegree(n int) Option {
	if n < 0 {
		panic(panicDegreeInvalid)
	}

	return func(o *options) { o.degree = n }
}

// WithCentre sets the polar origin for angles and radii.
// Panics on non-finite input (programmer error).
func WithCentre(x, y float64) Option {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic(panicCentreInvalid)
	}

	return func(o *options) { o.centre = [2]float64{x, y} }
}
