// Package screen draws recorded actor motion onto paletted images.
package screen

import (
	"image"
)

// TrailSteps is the number of shades the path fades through.
const TrailSteps = 16

// Tick is the actor position after one motion tick.
type Tick struct {
	image.Point
	Blocked bool
}

// Trace is the path of one actor along with the rectangles it could not
// enter.
type Trace struct {
	Ticks []Tick
	Walls []image.Rectangle

	From, To uint8
}

func NewTrace(walls ...image.Rectangle) *Trace {
	return &Trace{
		Walls: walls,
		From:  LightCyan,
		To:    Yellow,
	}
}

func (t *Trace) Record(x, y int16, blocked bool) {
	t.Ticks = append(t.Ticks, Tick{
		Point:   image.Pt(int(x), int(y)),
		Blocked: blocked,
	})
}

// Bounds covers every tick and wall with a one pixel margin.
func (t *Trace) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, tick := range t.Ticks {
		p := image.Rectangle{Min: tick.Point, Max: tick.Point.Add(image.Pt(1, 1))}
		if i == 0 {
			r = p
			continue
		}
		r = r.Union(p)
	}
	for _, w := range t.Walls {
		r = r.Union(w)
	}
	return r.Inset(-1)
}

// Render draws the trace clipped to bounds. An empty bounds renders the
// whole trace.
func (t *Trace) Render(bounds image.Rectangle) *image.Paletted {
	if bounds.Empty() {
		bounds = t.Bounds()
	}
	img := image.NewPaletted(bounds, TrailPalette(t.From, t.To, TrailSteps))

	for _, w := range t.Walls {
		w = w.Intersect(bounds)
		for y := w.Min.Y; y < w.Max.Y; y++ {
			for x := w.Min.X; x < w.Max.X; x++ {
				img.SetColorIndex(x, y, DarkGray)
			}
		}
	}

	last := len(t.Ticks) - 1
	for i := 1; i <= last; i++ {
		a, b := t.Ticks[i-1].Point, t.Ticks[i].Point
		line(img, a.X, a.Y, b.X, b.Y, t.shade(i, last))
	}
	if last == 0 {
		p := t.Ticks[0].Point
		img.SetColorIndex(p.X, p.Y, t.shade(0, 0))
	}

	for _, tick := range t.Ticks {
		if tick.Blocked {
			img.SetColorIndex(tick.X, tick.Y, LightRed)
		}
	}
	return img
}

func (t *Trace) shade(i, last int) uint8 {
	step := TrailSteps - 1
	if last > 0 {
		step = i * (TrailSteps - 1) / last
	}
	return uint8(len(EGA) + step)
}

// line plots a Bresenham line; SetColorIndex discards points outside the
// image.
func line(img *image.Paletted, x1, y1, x2, y2 int, c uint8) {
	dx, dy := x2-x1, y2-y1
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}
	dx, dy = absInt(dx)<<1, absInt(dy)<<1

	img.SetColorIndex(x1, y1, c)
	img.SetColorIndex(x2, y2, c)

	x, y := x1, y1
	if dx > dy {
		fraction := dy - (dx >> 1)
		for x != x2 {
			if fraction >= 0 {
				y += stepY
				fraction -= dx
			}
			x += stepX
			fraction += dy
			img.SetColorIndex(x, y, c)
		}
	} else {
		fraction := dx - (dy >> 1)
		for y != y2 {
			if fraction >= 0 {
				x += stepX
				fraction -= dy
			}
			y += stepY
			fraction += dx
			img.SetColorIndex(x, y, c)
		}
	}
}
