package render

import (
	"image/color"
	"testing"
)

func TestPaletteInterior(t *testing.T) {
	p := DefaultPalette()
	if got := p.Color(12.5, false); got != (color.RGBA{A: 255}) {
		t.Errorf("interior = %v, want opaque black", got)
	}
}

func TestPaletteRampStart(t *testing.T) {
	p := DefaultPalette()
	if got, want := p.Color(0, true), (color.RGBA{R: 255, A: 255}); got != want {
		t.Errorf("Color(0) = %v, want %v", got, want)
	}
}

func TestPaletteInterpolates(t *testing.T) {
	p := &Palette{
		Ramp:  []color.RGBA{{A: 255}, {R: 200, G: 100, A: 255}},
		Cycle: 2,
	}
	// mu 0.5 is halfway between the two ramp entries
	if got, want := p.Color(0.5, true), (color.RGBA{R: 100, G: 50, A: 255}); got != want {
		t.Errorf("Color(0.5) = %v, want %v", got, want)
	}
	// wraps back to the first entry after a full cycle
	if got, want := p.Color(2, true), p.Ramp[0]; got != want {
		t.Errorf("Color(2) = %v, want %v", got, want)
	}
	if got, want := p.Color(-1.5, true), (color.RGBA{R: 100, G: 50, A: 255}); got != want {
		t.Errorf("Color(-1.5) = %v, want %v", got, want)
	}
}

func TestPaletteOpaque(t *testing.T) {
	p := DefaultPalette()
	for mu := 0.0; mu < 200; mu += 0.37 {
		if c := p.Color(mu, true); c.A != 255 {
			t.Fatalf("Color(%v) = %v, not opaque", mu, c)
		}
	}
}

func TestHSVPrimaries(t *testing.T) {
	tests := []struct {
		h    float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{1.0 / 3, color.RGBA{0, 255, 0, 255}},
		{2.0 / 3, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		got := hsv(tt.h, 1, 1)
		if absDiff(got.R, tt.want.R) > 1 || absDiff(got.G, tt.want.G) > 1 || absDiff(got.B, tt.want.B) > 1 {
			t.Errorf("hsv(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
