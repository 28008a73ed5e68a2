// Package lensgrid is the grid layer of a strong-lensing modelling pipeline:
// masks over pixel images, the arc-second coordinate grids derived from
// them, and the PSF convolution that blurs a lensed model back into the
// masked image.
//
// What is in the box?
//
//	scaled/    Geometry (shape + pixel scale) and the row-major Array image
//	mask/      Mask factories (circular, annular, simulation), border pixels,
//	           blurring regions, sub-grids and sparse (strided) pixelizations
//	grids/     coordinate Grid, SubGrid and Collection; ray-tracing through a
//	           Deflector, evaluation of a light Profile, sub-pixel binning
//	border/    polynomial fit of the mask border in polar angle and the
//	           relocation of ray-traced coordinates that land outside it
//	convolve/  frame-based masked convolution and its FFT reference
//	memo/      per-instance, value-keyed memoization used by the above
//
// A typical model evaluation:
//
//	m, _ := mask.Circular([2]float64{4, 4}, 0.05, 1.2)
//	coll, _ := m.Collection(2, 21, 21)
//	traced := coll.Deflect(lens)
//	gb := border.New(m.BorderPixelIndices())
//	sub, _ := gb.RelocateSubCoordinates(traced.Image, traced.Sub)
//	image, _ := sub.SubDataToImage(sub.Evaluate(source))
//	c, _ := convolve.NewFrameMaker(m).ConvolverForKernelShape(21, 21)
//	kc, _ := c.ForKernel(psf)
//	model, _ := kc.ConvolveWithBlurring(image, traced.Blurring.Evaluate(source))
//
// Coordinates are (x, y) in arc-seconds with x along rows, both measured from
// the array centre. Every 1D array follows the raster order of the unmasked
// pixels of its mask.
//
//	go get github.com/katalvlaran/lensgrid
package lensgrid
