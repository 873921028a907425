package render

import (
	"image/color"
	"math"
)

// Palette maps smooth escape counts to colors. Escaped points walk the
// ramp once every Cycle iterations; bounded points get Interior.
type Palette struct {
	Ramp     []color.RGBA
	Interior color.RGBA
	Cycle    float64
}

// DefaultPalette is a full-saturation hue ramp cycling every 50 iterations
// with a black interior.
func DefaultPalette() *Palette {
	return NewPalette(256, 50)
}

func NewPalette(n int, cycle float64) *Palette {
	if n < 1 {
		n = 1
	}
	ramp := make([]color.RGBA, n)
	for i := range ramp {
		ramp[i] = hsv(float64(i)/float64(n), 1, 1)
	}
	return &Palette{Ramp: ramp, Interior: color.RGBA{A: 255}, Cycle: cycle}
}

// Color returns the color for a smooth escape count.
func (p *Palette) Color(mu float64, escaped bool) color.RGBA {
	if !escaped || len(p.Ramp) == 0 {
		return p.Interior
	}
	n := float64(len(p.Ramp))
	t := math.Mod(mu/p.Cycle*n, n)
	if t < 0 {
		t += n
	}
	i := int(t)
	if i >= len(p.Ramp) {
		i = 0
	}
	j := (i + 1) % len(p.Ramp)
	return lerp(p.Ramp[i], p.Ramp[j], t-float64(i))
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
