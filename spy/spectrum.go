package spy

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

// wrapper for a 2D complex array
type Complex2D [][]complex128

func (c Complex2D) AsAmplitude() Float2D {
	out := make(Float2D, len(c))
	for j := range c {
		out[j] = make([]float64, len(c[0]))
		for i := range c[j] {
			out[j][i] = cmplx.Abs(c[j][i])
		}
	}
	return out
}

// Spectrum returns the amplitude spectrum of a dense pattern canvas,
// DC-centred and log-stretched for display. Periodic structure in the
// sparsity pattern (banding, block repeats) shows up as isolated peaks.
func Spectrum(canvas *mat.Dense) Float2D {
	spec := Complex2D(fft.FFT2Real(FromDense(canvas)))
	return spec.AsAmplitude().Shift().LogStretch()
}
