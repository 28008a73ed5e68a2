package grids

// Transform maps one arc-second coordinate to another.
type Transform func(x, y float64) (float64, float64)

// Profile is a light profile (or any scalar field) evaluated at a coordinate.
type Profile interface {
	ValueAt(x, y float64) float64
}

// Deflector returns the deflection angle (αx, αy) at a coordinate.
type Deflector interface {
	DeflectionAt(x, y float64) (float64, float64)
}

// ProfileFunc adapts an ordinary function to Profile.
type ProfileFunc func(x, y float64) float64

// ValueAt calls f(x, y).
func (f ProfileFunc) ValueAt(x, y float64) float64 { return f(x, y) }

// DeflectorFunc adapts an ordinary function to Deflector.
type DeflectorFunc func(x, y float64) (float64, float64)

// DeflectionAt calls f(x, y).
func (f DeflectorFunc) DeflectionAt(x, y float64) (float64, float64) { return f(x, y) }

// rayTrace returns the Transform that subtracts d's deflection.
func rayTrace(d Deflector) Transform {
	return func(x, y float64) (float64, float64) {
		ax, ay := d.DeflectionAt(x, y)
		return x - ax, y - ay
	}
}
