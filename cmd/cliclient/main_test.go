package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mandel "github.com/marben/mandel_julia"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-region", "seahorse", "-size", "64", "-julia", "-c-re", "-0.8", "-c-im", "0.156", "-overlay"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.region != "seahorse" || opts.cfg.RasterSize != 64 || !opts.julia || !opts.overlay {
		t.Errorf("options = %+v", opts)
	}
	if opts.param != (mandel.ComplexPoint{Re: -0.8, Im: 0.156}) {
		t.Errorf("julia parameter = %v", opts.param)
	}
	if opts.out != "mandel.png" {
		t.Errorf("default output = %q", opts.out)
	}
}

func TestParseFlagsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-region", "atlantis"},
		{"-size", "0"},
		{"-iters", "-1"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q) succeeded", args)
		}
	}
}

func TestLandmarkNames(t *testing.T) {
	names := landmarkNames()
	for name := range mandel.Landmarks {
		if !strings.Contains(names, name) {
			t.Errorf("%q missing from %s", name, names)
		}
	}
}

func TestRenderImage(t *testing.T) {
	for _, args := range [][]string{
		{"-size", "48"},
		{"-size", "48", "-overlay"},
		{"-size", "48", "-region", "elephant"},
		{"-size", "48", "-julia", "-overlay", "-c-re", "-0.8", "-c-im", "0.156", "-seed-re", "0.1"},
	} {
		opts, err := parseFlags(args)
		if err != nil {
			t.Fatal(err)
		}
		img, err := renderImage(context.Background(), opts)
		if err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
			t.Errorf("%q: bounds = %v", args, b)
		}
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run([]string{"-size", "32", "-iters", "50", "-o", out}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 {
		t.Errorf("bounds = %v", b)
	}
}
