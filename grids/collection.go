package grids

// Collection groups the grids derived from one mask that are ray-traced
// together: the regular image grid, its sub-grid, and the blurring-region grid.
type Collection struct {
	Image    *Grid
	Sub      *SubGrid
	Blurring *Grid
}

// Map applies t to every grid of the collection.
func (c Collection) Map(t Transform) Collection {
	return Collection{Image: c.Image.Map(t), Sub: c.Sub.Map(t), Blurring: c.Blurring.Map(t)}
}

// MapEach applies a separate transform to each grid, e.g. when the sub-grid
// is traced through a finer deflection model than the image grid.
func (c Collection) MapEach(image, sub, blurring Transform) Collection {
	return Collection{Image: c.Image.Map(image), Sub: c.Sub.Map(sub), Blurring: c.Blurring.Map(blurring)}
}

// Deflect ray-traces every grid of the collection through d.
func (c Collection) Deflect(d Deflector) Collection { return c.Map(rayTrace(d)) }

// SubPixels returns the number of sub-coordinates.
func (c Collection) SubPixels() int { return c.Sub.Len() }
