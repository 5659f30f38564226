package spy

import (
	"errors"
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Float2D represents a monochrome raster using floats.
type Float2D [][]float64

func (f Float2D) Dims() (rows, cols int) {
	return len(f), len(f[0])
}

// creates an empty (zero-valued) array
func NewFloat2D(w, h int) Float2D {
	f := make(Float2D, h)
	for j := 0; j < h; j++ {
		f[j] = make([]float64, w)
	}
	return f
}

// FromDense copies a dense matrix into a Float2D array, row by row.
func FromDense(d *mat.Dense) Float2D {
	r, c := d.Dims()
	f := NewFloat2D(c, r)
	for j := 0; j < r; j++ {
		copy(f[j], d.RawRowView(j))
	}
	return f
}

// returns the range of values as minimum, maximum
func (f Float2D) Range() (float64, float64) {
	mn := math.MaxFloat64
	mx := -math.MaxFloat64
	for j := range f {
		for i := range f[j] {
			if f[j][i] < mn {
				mn = f[j][i]
			}
			if f[j][i] > mx {
				mx = f[j][i]
			}
		}
	}
	return mn, mx
}

// converts the array to a list of uint8 for use as pixels
//
//	rescale - map the full data range onto 0..255; otherwise values are just truncated
func (f Float2D) AsUint8(rescale bool) ([]uint8, error) {
	h, w := f.Dims()
	if w == 0 || h == 0 {
		return nil, errors.New("array has either zero rows or zero columns")
	}
	px := make([]uint8, w*h)
	mn, mx := f.Range()
	rng := mx - mn
	var v float64
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			v = f[j][i]
			if rescale && rng > 0 {
				v = (v - mn) / rng * 255
			}
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			px[j*w+i] = uint8(v)
		}
	}
	return px, nil
}

// AsGray converts the array to an 8-bit grayscale image.
func (f Float2D) AsGray(rescale bool) (*image.Gray, error) {
	h, w := f.Dims()
	px, err := f.AsUint8(rescale)
	if err != nil {
		return nil, err
	}
	im := image.NewGray(image.Rect(0, 0, w, h))
	im.Pix = px
	return im, nil
}

// shifts the array by half in x and y, to centre DC in amplitude spectra etc.
func (f Float2D) Shift() Float2D {
	h, w := f.Dims()
	out := NewFloat2D(w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[(j+h/2)%h][(i+w/2)%w] = f[j][i]
		}
	}
	return out
}

// ranges the data from 0 to 1, then performs log stretch on the ranged
// numbers, ie log2(1+k). A flat array stays flat at zero.
func (f Float2D) LogStretch() Float2D {
	h, w := f.Dims()
	mn, mx := f.Range()
	delta := mx - mn
	out := NewFloat2D(w, h)
	if delta == 0 {
		return out
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			k := (f[j][i] - mn) / delta
			// k is between 0 and 1, and so is log2(1+k)
			out[j][i] = math.Log2(1 + k)
		}
	}
	return out
}
