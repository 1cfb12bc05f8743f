package render

import (
	"image/color"
	"math"

	"torus-life/internal/sim"
)

// Fixed colors for the three shipped kinds.
var kindColors = []color.RGBA{
	{0xe6, 0x4a, 0x4a, 0xff}, // alpha: red
	{0x4a, 0xe6, 0x6e, 0xff}, // beta: green
	{0x4a, 0x8a, 0xe6, 0xff}, // gamma: blue
}

// KindColor returns the render color for a kind. Kinds beyond the fixed
// palette get hue-spaced colors.
func KindColor(k sim.Kind, kinds int) color.RGBA {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	h := float64(k) / float64(kinds) * 360
	r, g, b := hsvToRGB(h, 1, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
