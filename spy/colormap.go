package spy

import (
	"image/color"
	"math"
)

// Jet returns the classic blue-cyan-yellow-red colour map as a 256-entry
// palette, dark blue at index 0 and dark red at index 255.
func Jet() color.Palette {
	p := make(color.Palette, 256)
	for i := 0; i < 256; i++ {
		x := float64(i) / 255
		r := ramp(1.5 - math.Abs(4*x-3))
		g := ramp(1.5 - math.Abs(4*x-2))
		b := ramp(1.5 - math.Abs(4*x-1))
		p[i] = color.NRGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
	}
	return p
}

// Gray returns a plain black-to-white ramp, 256 entries
func Gray() color.Palette {
	p := make(color.Palette, 256)
	for i := 0; i < 256; i++ {
		p[i] = color.Gray{uint8(i)}
	}
	return p
}

func ramp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
