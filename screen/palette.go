package screen

import (
	"image/color"
)

// EGA colour indices.
const (
	Black uint8 = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var EGA = color.Palette{
	rgb24Color(0x000000),
	rgb24Color(0x0000AA),
	rgb24Color(0x00AA00),
	rgb24Color(0x00AAAA),
	rgb24Color(0xAA0000),
	rgb24Color(0xAA00AA),
	rgb24Color(0xAA5500),
	rgb24Color(0xAAAAAA),

	rgb24Color(0x555555),
	rgb24Color(0x5555FF),
	rgb24Color(0x55FF55),
	rgb24Color(0x55FFFF),
	rgb24Color(0xFF5555),
	rgb24Color(0xFF55FF),
	rgb24Color(0xFFFF55),
	rgb24Color(0xFFFFFF),
}

// TrailPalette is EGA followed by steps colours shading from one EGA
// colour to another. Index len(EGA)+i is step i of the trail.
func TrailPalette(from, to uint8, steps int) color.Palette {
	p := make(color.Palette, len(EGA), len(EGA)+steps)
	copy(p, EGA)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		p = append(p, rgbMix(EGA[from], EGA[to], t))
	}
	return p
}
