package spy

import (
	"errors"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Options controls how a sparsity pattern is built.
//
//	Precision - binarize threshold. The default of -1 means every magnitude
//	            clears it, since magnitudes are never negative.
//	Binarize  - collapse magnitudes above Precision to 1.0, to show structure
//	            rather than size
//	Palette   - colour map for rendering; nil means Jet
type Options struct {
	Precision float64
	Binarize  bool
	Palette   color.Palette
}

func DefaultOptions() Options {
	return Options{Precision: -1}
}

// Magnitudes applies the magnitude transform to the stored entries of a and
// returns the transformed values together with their maximum.
//
// Every value is replaced by its absolute value. With Binarize set, values
// above Precision become 1.0; values at or below it keep their magnitude -
// there is no floor, small entries are shown as they are.
func Magnitudes(a *COO, opts Options) ([]float64, float64, error) {
	if a.NNZ() == 0 {
		return nil, 0, errors.New("matrix has no stored entries")
	}
	vals := make([]float64, a.NNZ())
	maxval := 0.0
	for k, v := range a.Vals {
		if v < 0 {
			v = -v
		}
		if opts.Binarize && v > opts.Precision {
			v = 1.0
		}
		vals[k] = v
		if v > maxval {
			maxval = v
		}
	}
	return vals, maxval, nil
}

// Pattern builds the dense canvas for the sparsity pattern of a.
//
// The canvas has the declared size of a, zero where nothing is stored, and
// the transformed magnitudes accumulated at their (row,col) positions. The
// returned maximum is taken over the transformed entries, before any
// duplicate accumulation - the colour scale always runs from 0 to this value.
func Pattern(a *COO, opts Options) (*mat.Dense, float64, error) {
	vals, maxval, err := Magnitudes(a, opts)
	if err != nil {
		return nil, 0, err
	}
	canvas := mat.NewDense(a.Height, a.Width, nil)
	for k := range vals {
		canvas.Set(a.Rows[k], a.Cols[k], canvas.At(a.Rows[k], a.Cols[k])+vals[k])
	}
	return canvas, maxval, nil
}
