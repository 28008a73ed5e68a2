package mask

import "math"

const panicCentreInvalid = "mask: WithCentre: centre must be finite"

// Option configures the shaped mask factories (Circular, Annular).
type Option func(*options)

type options struct {
	centre [2]float64
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithCentre moves the centre of a circular or annular mask to (x, y)
// arc-seconds. The default centre is the origin.
// Panics on non-finite input (programmer error).
func WithCentre(x, y float64) Option {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic(panicCentreInvalid)
	}

	return func(o *options) { o.centre = [2]float64{x, y} }
}
