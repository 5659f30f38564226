package spy

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"
)

// PatternImage presents a dense pattern canvas as an image.Image, one pixel
// per matrix cell, coloured through a palette over the range [0, maxval].
type PatternImage struct {
	canvas  *mat.Dense
	palette color.Palette
	maxval  float64
}

func NewPatternImage(canvas *mat.Dense, maxval float64, p color.Palette) *PatternImage {
	if p == nil {
		p = Jet()
	}
	return &PatternImage{canvas: canvas, palette: p, maxval: maxval}
}

func (pi *PatternImage) At(x, y int) color.Color {
	if pi.maxval <= 0 {
		return pi.palette[0]
	}
	// accumulated duplicates can exceed maxval, so clamp the index
	k := int(pi.canvas.At(y, x) / pi.maxval * 255)
	if k < 0 {
		k = 0
	}
	if k > 255 {
		k = 255
	}
	return pi.palette[k]
}

func (pi *PatternImage) ColorModel() color.Model {
	return pi.palette
}

func (pi *PatternImage) Bounds() image.Rectangle {
	r, c := pi.canvas.Dims()
	return image.Rect(0, 0, c, r)
}

// Image builds the pattern canvas of a and wraps it for display.
func Image(a *COO, opts Options) (*PatternImage, error) {
	canvas, maxval, err := Pattern(a, opts)
	if err != nil {
		return nil, err
	}
	return NewPatternImage(canvas, maxval, opts.Palette), nil
}

// Figure renders img at a fixed size, px by px. The output is always square
// whatever the true shape of the matrix, and cells are never smoothed into
// each other - nearest neighbour only.
func Figure(img image.Image, px int) *image.NRGBA {
	return imaging.Resize(img, px, px, imaging.NearestNeighbor)
}
