package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// rgbMix blends in Lab space unless either end is a gray, where Lab
// blending drifts through unrelated hues.
func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if isGray(clr1) || isGray(clr2) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func isGray(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
