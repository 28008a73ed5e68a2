package mask

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lensgrid/memo"
	"github.com/katalvlaran/lensgrid/scaled"
)

// neighborOffsets lists the 8-connected neighbours: N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// NoPixel marks a 2D position that has no 1D index (a masked pixel).
const NoPixel = -1

type blurKey struct {
	rows, cols int
	clipped    bool
}

// Mask is a boolean grid over an image; true excludes a pixel from analysis.
// Cells are stored row-major; index holds the raster-order 1D index of each
// unmasked pixel and NoPixel elsewhere. Both are fixed at construction.
type Mask struct {
	geom   scaled.Geometry
	cells  []bool
	index  []int
	pixels int

	border   memo.Cache[struct{}, []int]
	blurring memo.Cache[blurKey, *Mask]
}

// New builds a Mask from explicit cells (cells[i][j] == true means masked).
// It deep-copies the input.
// Errors:
//   - ErrEmptyGrid if cells has no rows or no columns,
//   - ErrNonRectangular if any row length differs,
//   - scaled.ErrPixelScale for an invalid pixel scale.
func New(cells [][]bool, pixelScale float64) (*Mask, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := scaled.NewGeometry(rows, cols, pixelScale)
	if err != nil {
		return nil, err
	}

	return fromGeometry(g, func(i, j int) bool { return cells[i][j] }), nil
}

// fromGeometry fills a new Mask by evaluating masked(i, j) at every pixel.
func fromGeometry(g scaled.Geometry, masked func(i, j int) bool) *Mask {
	m := &Mask{
		geom:  g,
		cells: make([]bool, g.Size()),
		index: make([]int, g.Size()),
	}
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			off := i*g.Cols + j
			if masked(i, j) {
				m.cells[off] = true
				m.index[off] = NoPixel
				continue
			}
			m.index[off] = m.pixels
			m.pixels++
		}
	}

	return m
}

// Shape returns (rows, cols).
func (m *Mask) Shape() (rows, cols int) { return m.geom.Rows, m.geom.Cols }

// PixelScale returns the arc-seconds per pixel.
func (m *Mask) PixelScale() float64 { return m.geom.PixelScale }

// Geometry returns the pixel geometry of the mask.
func (m *Mask) Geometry() scaled.Geometry { return m.geom }

// InBounds reports whether (i,j) lies within the grid.
func (m *Mask) InBounds(i, j int) bool { return m.geom.InBounds(i, j) }

// At reports whether pixel (i,j) is masked. Positions outside the grid are
// masked in every direction.
// Complexity: O(1).
func (m *Mask) At(i, j int) bool {
	if !m.geom.InBounds(i, j) {
		return true
	}

	return m.cells[i*m.geom.Cols+j]
}

// PixelIndex returns the 1D raster index of an unmasked pixel, or NoPixel
// for masked and out-of-bounds positions.
func (m *Mask) PixelIndex(i, j int) int {
	if !m.geom.InBounds(i, j) {
		return NoPixel
	}

	return m.index[i*m.geom.Cols+j]
}

// PixelsInMask returns the number of unmasked pixels.
func (m *Mask) PixelsInMask() int { return m.pixels }

// Cells returns a copy of the mask as [][]bool.
func (m *Mask) Cells() [][]bool {
	out := make([][]bool, m.geom.Rows)
	for i := range out {
		out[i] = make([]bool, m.geom.Cols)
		copy(out[i], m.cells[i*m.geom.Cols:(i+1)*m.geom.Cols])
	}

	return out
}

// String draws the mask with 'x' for masked and 'o' for unmasked pixels.
func (m *Mask) String() string {
	var b strings.Builder
	for i := 0; i < m.geom.Rows; i++ {
		b.WriteByte('|')
		for j := 0; j < m.geom.Cols; j++ {
			if m.cells[i*m.geom.Cols+j] {
				b.WriteString("x|")
			} else {
				b.WriteString("o|")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// forEachUnmasked calls fn for every unmasked pixel in raster order with its
// 2D position and 1D index.
func (m *Mask) forEachUnmasked(fn func(i, j, idx int)) {
	for i := 0; i < m.geom.Rows; i++ {
		for j := 0; j < m.geom.Cols; j++ {
			if idx := m.index[i*m.geom.Cols+j]; idx != NoPixel {
				fn(i, j, idx)
			}
		}
	}
}

func maskErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Mask.%s(%d,%d): %w", method, a, b, err)
}
