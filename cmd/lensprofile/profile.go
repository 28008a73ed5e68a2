package main

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lensgrid/border"
	"github.com/katalvlaran/lensgrid/convolve"
	"github.com/katalvlaran/lensgrid/grids"
	"github.com/katalvlaran/lensgrid/mask"
	"github.com/katalvlaran/lensgrid/scaled"
)

// Stage is the timing of one profiled step.
type Stage struct {
	Name    string
	Repeats int
	PerRun  time.Duration
}

// Report summarises one profiling run.
type Report struct {
	Rows, Cols     int
	Pixels         int
	SubPixels      int
	BlurringPixels int
	Stages         []Stage
	// MaxFFTDiff is the largest absolute difference between the frame
	// convolver and the FFT reference over the masked pixels.
	MaxFFTDiff float64
}

// timeStage runs fn cfg.Repeats times and records the mean duration.
func timeStage(r *Report, name string, repeats int, fn func() error) error {
	start := time.Now()
	for i := 0; i < repeats; i++ {
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	r.Stages = append(r.Stages, Stage{Name: name, Repeats: repeats, PerRun: time.Since(start) / time.Duration(repeats)})

	return nil
}

// gaussianPSF returns a size×size circular Gaussian with unit sum.
func gaussianPSF(size int, sigma float64) (*convolve.Kernel, error) {
	h := size / 2
	values := make([][]float64, size)
	for a := range values {
		values[a] = make([]float64, size)
		for b := range values[a] {
			dy, dx := float64(a-h), float64(b-h)
			values[a][b] = math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
		}
	}
	k, err := convolve.NewKernel(values)
	if err != nil {
		return nil, err
	}

	return k.Normalized()
}

// singularIsothermalSphere deflects every coordinate by einsteinRadius
// towards the origin.
func singularIsothermalSphere(einsteinRadius float64) grids.Deflector {
	return grids.DeflectorFunc(func(x, y float64) (float64, float64) {
		r := math.Hypot(x, y)
		if r == 0 {
			return 0, 0
		}
		return einsteinRadius * x / r, einsteinRadius * y / r
	})
}

// gaussianSource is a circular Gaussian light profile centred on the origin.
func gaussianSource(sigma float64) grids.Profile {
	return grids.ProfileFunc(func(x, y float64) float64 {
		return math.Exp(-(x*x + y*y) / (2 * sigma * sigma))
	})
}

// profile runs the lensing pipeline on a simulation mask and times each
// stage: grid construction, ray-tracing with border relocation, evaluation
// of the lensed source, frame construction and PSF convolution.
func profile(cfg Config) (Report, error) {
	var r Report
	if err := cfg.Validate(); err != nil {
		return r, err
	}
	m, err := mask.ForSimulate(cfg.ShapeArcsec, cfg.PixelScale, cfg.PSFSize, cfg.PSFSize)
	if err != nil {
		return r, err
	}
	r.Rows, r.Cols = m.Shape()
	r.Pixels = m.PixelsInMask()

	var coll grids.Collection
	if err := timeStage(&r, "collection", cfg.Repeats, func() error {
		var err error
		coll, err = m.Collection(cfg.SubSize, cfg.PSFSize, cfg.PSFSize)
		return err
	}); err != nil {
		return r, err
	}
	r.SubPixels = coll.SubPixels()
	r.BlurringPixels = coll.Blurring.Len()

	deflector := singularIsothermalSphere(cfg.EinsteinRadius)
	gb := border.New(m.BorderPixelIndices())
	var traced *grids.SubGrid
	if err := timeStage(&r, "ray-trace and relocate", cfg.Repeats, func() error {
		lensed := coll.Deflect(deflector)
		var err error
		traced, err = gb.RelocateSubCoordinates(lensed.Image, lensed.Sub)
		return err
	}); err != nil {
		return r, err
	}

	source := gaussianSource(cfg.SourceSigma)
	var image, blurring []float64
	if err := timeStage(&r, "evaluate source", cfg.Repeats, func() error {
		var err error
		image, err = traced.SubDataToImage(traced.Evaluate(source))
		blurring = coll.Blurring.Deflect(deflector).Evaluate(source)
		return err
	}); err != nil {
		return r, err
	}

	psf, err := gaussianPSF(cfg.PSFSize, cfg.PSFSigma)
	if err != nil {
		return r, err
	}
	var kc *convolve.KernelConvolver
	if err := timeStage(&r, "frame maker", cfg.Repeats, func() error {
		c, err := convolve.NewFrameMaker(m).ConvolverForKernelShape(cfg.PSFSize, cfg.PSFSize)
		if err != nil {
			return err
		}
		kc, err = c.ForKernel(psf)
		return err
	}); err != nil {
		return r, err
	}

	var blurred []float64
	if err := timeStage(&r, "convolve", cfg.Repeats, func() error {
		var err error
		blurred, err = kc.ConvolveWithBlurring(image, blurring)
		return err
	}); err != nil {
		return r, err
	}

	full, err := fullImage(m, kc.BlurringMask(), image, blurring)
	if err != nil {
		return r, err
	}
	var reference []float64
	if err := timeStage(&r, "fft reference", cfg.Repeats, func() error {
		out, err := convolve.FFTConvolve(full, psf)
		if err != nil {
			return err
		}
		reference, err = m.Masked1D(out)
		return err
	}); err != nil {
		return r, err
	}
	for i := range blurred {
		r.MaxFFTDiff = math.Max(r.MaxFFTDiff, math.Abs(blurred[i]-reference[i]))
	}

	return r, nil
}

// fullImage scatters the masked image and the blurring-region values back
// onto one 2D array.
func fullImage(m, blurringMask *mask.Mask, image, blurring []float64) (*scaled.Array, error) {
	full, err := m.Map2D(image)
	if err != nil {
		return nil, err
	}
	for k, p := range blurringMask.GridToPixel() {
		if err := full.Set(p[0], p[1], blurring[k]); err != nil {
			return nil, err
		}
	}

	return full, nil
}
