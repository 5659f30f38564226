package spy

import (
	"math"
	"testing"
)

func TestSpectrumDims(t *testing.T) {
	a := NewCOO(4, 4)
	a.Append(0, 0, 3)
	a.Append(1, 1, 2)

	canvas, _, err := Pattern(a, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	amp := Spectrum(canvas)
	r, c := amp.Dims()
	if r != 4 || c != 4 {
		t.Errorf("spectrum dims: got %d,%d want 4,4", r, c)
	}
	// log-stretched amplitudes are ranged 0..1
	mn, mx := amp.Range()
	if mn < 0 || mx > 1 || math.IsNaN(mn) || math.IsNaN(mx) {
		t.Errorf("spectrum range: got %v,%v want within [0,1]", mn, mx)
	}
}

func TestFloat2DShift(t *testing.T) {
	f := NewFloat2D(4, 4)
	f[0][0] = 1
	g := f.Shift()
	if g[2][2] != 1 {
		t.Error("DC term should move to the centre")
	}
	if g[0][0] != 0 {
		t.Error("origin should be cleared by the shift")
	}
}

func TestFloat2DAsGray(t *testing.T) {
	f := NewFloat2D(3, 2)
	f[0][0] = 10
	f[1][2] = 20
	im, err := f.AsGray(true)
	if err != nil {
		t.Fatal(err)
	}
	if im.Bounds().Dx() != 3 || im.Bounds().Dy() != 2 {
		t.Errorf("image bounds: got %v want 3x2", im.Bounds())
	}
	if im.GrayAt(2, 1).Y != 255 {
		t.Error("maximum should rescale to full white")
	}
	if im.GrayAt(0, 1).Y != 0 {
		t.Error("minimum should rescale to black")
	}
}
