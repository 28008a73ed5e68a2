package convolve_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lensgrid/convolve"
	"github.com/katalvlaran/lensgrid/mask"
	"github.com/katalvlaran/lensgrid/scaled"
	"github.com/stretchr/testify/require"
)

func unmaskedGrid(t *testing.T, rows, cols int) *mask.Mask {
	t.Helper()
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	m, err := mask.New(cells, 1)
	require.NoError(t, err)

	return m
}

func mustKernel(t *testing.T, values [][]float64) *convolve.Kernel {
	t.Helper()
	k, err := convolve.NewKernel(values)
	require.NoError(t, err)

	return k
}

func kernelConvolver(t *testing.T, m *mask.Mask, k *convolve.Kernel) *convolve.KernelConvolver {
	t.Helper()
	kr, kc := k.Shape()
	c, err := convolve.NewFrameMaker(m).ConvolverForKernelShape(kr, kc)
	require.NoError(t, err)
	kcv, err := c.ForKernel(k)
	require.NoError(t, err)

	return kcv
}

// TestNewKernel_Errors covers every rejected input.
func TestNewKernel_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]float64
	}{
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"even rows", [][]float64{{1}, {1}}},
		{"even cols", [][]float64{{1, 1}}},
		{"ragged", [][]float64{{1, 1, 1}, {1}, {1, 1, 1}}},
		{"nan", [][]float64{{math.NaN()}}},
		{"inf", [][]float64{{1, math.Inf(-1), 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := convolve.NewKernel(tc.values)
			require.ErrorIs(t, err, convolve.ErrKernelShape)
		})
	}
}

// TestKernel_Accessors checks Shape, At, Sum and Normalized.
func TestKernel_Accessors(t *testing.T) {
	src := [][]float64{{1, 2, 3}}
	k := mustKernel(t, src)
	src[0][0] = 100 // deep copy

	rows, cols := k.Shape()
	require.Equal(t, 1, rows)
	require.Equal(t, 3, cols)
	v, err := k.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	_, err = k.At(1, 0)
	require.ErrorIs(t, err, convolve.ErrOutOfRange)
	require.Equal(t, 6.0, k.Sum())

	n, err := k.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1, n.Sum(), 1e-15)
	require.InDeltaSlice(t, []float64{1.0 / 6, 2.0 / 6, 3.0 / 6}, n.Rows2D()[0], 1e-15)
	require.Equal(t, [][]float64{{1, 2, 3}}, k.Rows2D(), "Normalized leaves the source alone")

	_, err = mustKernel(t, [][]float64{{1, -1, 0}}).Normalized()
	require.ErrorIs(t, err, convolve.ErrZeroSum)
}

// TestConvolverForKernelShape validates shape and memoizes per shape.
func TestConvolverForKernelShape(t *testing.T) {
	fm := convolve.NewFrameMaker(unmaskedGrid(t, 3, 3))
	for _, s := range [][2]int{{2, 3}, {3, 2}, {0, 1}, {-1, 3}} {
		_, err := fm.ConvolverForKernelShape(s[0], s[1])
		require.ErrorIs(t, err, convolve.ErrKernelShape, "%v", s)
	}

	a, err := fm.ConvolverForKernelShape(3, 3)
	require.NoError(t, err)
	b, err := fm.ConvolverForKernelShape(3, 3)
	require.NoError(t, err)
	require.Same(t, a, b)
	c, err := fm.ConvolverForKernelShape(1, 3)
	require.NoError(t, err)
	require.NotSame(t, a, c)
	rows, cols := c.KernelShape()
	require.Equal(t, [2]int{1, 3}, [2]int{rows, cols})
}

// TestConvolverForKernelShape_Concurrent shares one Convolver between racing callers.
func TestConvolverForKernelShape_Concurrent(t *testing.T) {
	m, err := mask.Circular([2]float64{3, 3}, 0.1, 1)
	require.NoError(t, err)
	fm := convolve.NewFrameMaker(m)

	const workers = 8
	got := make([]*convolve.Convolver, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got[w], _ = fm.ConvolverForKernelShape(5, 5)
		}(w)
	}
	wg.Wait()
	for w := 1; w < workers; w++ {
		require.Same(t, got[0], got[w])
	}
}

// TestFrames_Layout checks the centre and corner frames of a 3×3 grid.
func TestFrames_Layout(t *testing.T) {
	c, err := convolve.NewFrameMaker(unmaskedGrid(t, 3, 3)).ConvolverForKernelShape(3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, c.Pixels())
	require.Equal(t, 0, c.BlurringPixels())

	centre, err := c.Frame(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, centre)

	corner, err := c.Frame(0)
	require.NoError(t, err)
	n := convolve.NoTarget
	require.Equal(t, []int{n, n, n, n, 0, 1, n, 3, 4}, corner)

	_, err = c.Frame(9)
	require.ErrorIs(t, err, convolve.ErrOutOfRange)
	_, err = c.BlurringFrame(0)
	require.ErrorIs(t, err, convolve.ErrOutOfRange)
}

// TestFrames_Blurring checks that blurring frames point into the mask.
func TestFrames_Blurring(t *testing.T) {
	// a single unmasked pixel in the middle of a 5×5 grid
	cells := make([][]bool, 5)
	for i := range cells {
		cells[i] = []bool{true, true, true, true, true}
	}
	cells[2][2] = false
	m, err := mask.New(cells, 1)
	require.NoError(t, err)

	c, err := convolve.NewFrameMaker(m).ConvolverForKernelShape(3, 3)
	require.NoError(t, err)
	require.Equal(t, 1, c.Pixels())
	require.Equal(t, 8, c.BlurringPixels())
	require.Equal(t, 8, c.BlurringMask().PixelsInMask())

	n := convolve.NoTarget
	// blurring pixel 0 is (1,1): its SE cell lands on (2,2)
	f, err := c.BlurringFrame(0)
	require.NoError(t, err)
	require.Equal(t, []int{n, n, n, n, n, n, n, n, 0}, f)
	// blurring pixel 7 is (3,3): its NW cell lands on (2,2)
	f, err = c.BlurringFrame(7)
	require.NoError(t, err)
	require.Equal(t, []int{0, n, n, n, n, n, n, n, n}, f)
}

// TestConvolve_Identity covers the 1×1 unit kernel and the 3×3 delta.
func TestConvolve_Identity(t *testing.T) {
	m := unmaskedGrid(t, 4, 5)
	image := []float64{1, 0, 2, 0, 3, 4, 5, 0, 6, 7, 0, 0, 8, 9, 1, 2, 3, 0, 4, 5}

	for _, k := range [][][]float64{
		{{1}},
		{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
	} {
		out, err := kernelConvolver(t, m, mustKernel(t, k)).Convolve(image)
		require.NoError(t, err)
		require.Equal(t, image, out)
	}
}

// TestConvolve_PointSource reproduces the kernel around a central source,
// in kernel orientation.
func TestConvolve_PointSource(t *testing.T) {
	m := unmaskedGrid(t, 3, 3)
	image := []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}

	cases := []struct {
		name   string
		kernel [][]float64
		want   []float64
	}{
		{"cross", [][]float64{{0, 1, 0}, {1, 2, 1}, {0, 1, 0}}, []float64{0, 1, 0, 1, 2, 1, 0, 1, 0}},
		{"asymmetric", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := kernelConvolver(t, m, mustKernel(t, tc.kernel)).Convolve(image)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

// TestConvolve_DropsMaskedTargets loses light that lands on masked pixels.
func TestConvolve_DropsMaskedTargets(t *testing.T) {
	m, err := mask.New([][]bool{
		{false, false, false},
		{false, false, true},
		{false, false, false},
	}, 1)
	require.NoError(t, err)
	kc := kernelConvolver(t, m, mustKernel(t, [][]float64{{0, 1, 0}, {1, 2, 1}, {0, 1, 0}}))

	// pixel order: (0,0) (0,1) (0,2) (1,0) (1,1) (2,0) (2,1) (2,2)
	out, err := kc.Convolve([]float64{0, 0, 0, 0, 1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1, 2, 0, 1, 0}, out)
}

// TestConvolve_Lengths rejects wrongly sized inputs.
func TestConvolve_Lengths(t *testing.T) {
	m, err := mask.Circular([2]float64{3, 3}, 0.5, 1)
	require.NoError(t, err)
	kc := kernelConvolver(t, m, mustKernel(t, [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}))

	_, err = kc.Convolve(make([]float64, kc.Pixels()+1))
	require.ErrorIs(t, err, convolve.ErrLengthMismatch)
	_, err = kc.ConvolveWithBlurring(make([]float64, kc.Pixels()), make([]float64, kc.BlurringPixels()-1))
	require.ErrorIs(t, err, convolve.ErrLengthMismatch)
	_, err = kc.ConvolveWithBlurring(nil, make([]float64, kc.BlurringPixels()))
	require.ErrorIs(t, err, convolve.ErrLengthMismatch)
}

// TestForKernel_Mismatch binds only kernels of the frame shape.
func TestForKernel_Mismatch(t *testing.T) {
	c, err := convolve.NewFrameMaker(unmaskedGrid(t, 3, 3)).ConvolverForKernelShape(3, 3)
	require.NoError(t, err)
	_, err = c.ForKernel(mustKernel(t, [][]float64{{1, 1, 1, 1, 1}}))
	require.ErrorIs(t, err, convolve.ErrKernelMismatch)
	require.False(t, errors.Is(err, convolve.ErrKernelShape))
}

// TestConvolve_MatchesFFT compares the frame convolver against FFTConvolve
// on a circular mask with its blurring region populated.
func TestConvolve_MatchesFFT(t *testing.T) {
	kernel := mustKernel(t, [][]float64{
		{0.1, 0.2, 0.0, 0.3, 0.1},
		{0.0, 0.5, 0.7, 0.2, 0.4},
		{0.3, 0.9, 1.0, 0.6, 0.0},
		{0.2, 0.1, 0.8, 0.5, 0.3},
		{0.0, 0.4, 0.2, 0.1, 0.2},
	})
	cases := []struct {
		name  string
		build func() (*mask.Mask, error)
	}{
		{"circular", func() (*mask.Mask, error) { return mask.Circular([2]float64{3, 3}, 0.25, 1) }},
		{"touching edges", func() (*mask.Mask, error) { return mask.Circular([2]float64{3, 3}, 0.25, 2) }},
		{"annular", func() (*mask.Mask, error) { return mask.Annular([2]float64{3, 3}, 0.25, 0.4, 1.2) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.build()
			require.NoError(t, err)
			rows, cols := m.Shape()

			full, err := scaled.NewArray(rows, cols, m.PixelScale())
			require.NoError(t, err)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					if (i+j)%7 == 0 {
						continue // leave some zeros to exercise the skip
					}
					require.NoError(t, full.Set(i, j, 1+0.1*float64(i)-0.03*float64(j)))
				}
			}

			kc := kernelConvolver(t, m, kernel)
			image, err := m.Masked1D(full)
			require.NoError(t, err)
			blurring, err := kc.BlurringMask().Masked1D(full)
			require.NoError(t, err)
			got, err := kc.ConvolveWithBlurring(image, blurring)
			require.NoError(t, err)

			ref, err := convolve.FFTConvolve(full, kernel)
			require.NoError(t, err)
			want, err := m.Masked1D(ref)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("frame convolution differs from FFT (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFFTConvolve_Overflow reports a non-finite result instead of storing it.
func TestFFTConvolve_Overflow(t *testing.T) {
	a, err := scaled.NewArray(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 1, 1e300))
	k := mustKernel(t, [][]float64{{0, 0, 0}, {0, 1e300, 0}, {0, 0, 0}})

	_, err = convolve.FFTConvolve(a, k)
	require.ErrorIs(t, err, scaled.ErrNaNInf)
}

// TestFFTConvolve_PointSource places the kernel around an off-centre delta.
func TestFFTConvolve_PointSource(t *testing.T) {
	a, err := scaled.NewArray(4, 6, 0.1)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 2, 2))
	k := mustKernel(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	out, err := convolve.FFTConvolve(a, k)
	require.NoError(t, err)
	require.Equal(t, 0.1, out.PixelScale())

	want := [][]float64{
		{0, 2, 4, 6, 0, 0},
		{0, 8, 10, 12, 0, 0},
		{0, 14, 16, 18, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, out.Rows2D(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("FFTConvolve (-want +got):\n%s", diff)
	}
}
