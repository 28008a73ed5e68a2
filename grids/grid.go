package grids

import "fmt"

// Grid is an ordered set of arc-second coordinates, one per unmasked pixel.
// It is immutable; every operation returns a new Grid.
type Grid struct {
	data       []float64 // interleaved x,y
	pixelScale float64
}

// New copies coords into a Grid.
func New(coords [][2]float64, pixelScale float64) *Grid {
	data := make([]float64, 2*len(coords))
	for i, c := range coords {
		data[2*i], data[2*i+1] = c[0], c[1]
	}

	return &Grid{data: data, pixelScale: pixelScale}
}

// FromFlat wraps an interleaved x,y buffer without copying. The caller hands
// over ownership of data.
func FromFlat(data []float64, pixelScale float64) (*Grid, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("FromFlat: odd buffer length %d: %w", len(data), ErrLengthMismatch)
	}

	return &Grid{data: data, pixelScale: pixelScale}, nil
}

// Len returns the number of coordinates.
func (g *Grid) Len() int { return len(g.data) / 2 }

// PixelScale returns the pixel scale of the originating mask.
func (g *Grid) PixelScale() float64 { return g.pixelScale }

// At returns coordinate i. It panics if i is out of range, like a slice index.
func (g *Grid) At(i int) (x, y float64) { return g.data[2*i], g.data[2*i+1] }

// Coordinates returns a copy of the coordinates as pairs.
func (g *Grid) Coordinates() [][2]float64 {
	out := make([][2]float64, g.Len())
	for i := range out {
		out[i] = [2]float64{g.data[2*i], g.data[2*i+1]}
	}

	return out
}

// Map applies t to every coordinate.
func (g *Grid) Map(t Transform) *Grid {
	return &Grid{data: mapFlat(g.data, t), pixelScale: g.pixelScale}
}

// Deflect ray-traces every coordinate through d: (x-αx, y-αy).
func (g *Grid) Deflect(d Deflector) *Grid { return g.Map(rayTrace(d)) }

// Evaluate returns p evaluated at every coordinate.
func (g *Grid) Evaluate(p Profile) []float64 { return evaluateFlat(g.data, p) }

// Subset returns the coordinates at the given indices, in the given order.
func (g *Grid) Subset(indices []int) (*Grid, error) {
	out := make([]float64, 2*len(indices))
	n := g.Len()
	for k, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("Grid.Subset: index %d of %d: %w", i, n, ErrIndex)
		}
		out[2*k], out[2*k+1] = g.data[2*i], g.data[2*i+1]
	}

	return &Grid{data: out, pixelScale: g.pixelScale}, nil
}

func mapFlat(data []float64, t Transform) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < len(data); i += 2 {
		out[i], out[i+1] = t(data[i], data[i+1])
	}

	return out
}

func evaluateFlat(data []float64, p Profile) []float64 {
	out := make([]float64, len(data)/2)
	for i := range out {
		out[i] = p.ValueAt(data[2*i], data[2*i+1])
	}

	return out
}
