package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/genlayer/pkg/biome"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#8db360")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if want := (color.NRGBA{R: 0x8d, G: 0xb3, B: 0x60, A: 0xff}); c != want {
		t.Errorf("ParseHex = %v, want %v", c, want)
	}

	for _, bad := range []string{"#fff", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestRegistryPalette(t *testing.T) {
	reg := biome.Default()
	p := RegistryPalette(reg)

	plains, _ := reg.Get(biome.Plains)
	want, err := ParseHex(plains.Color)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", plains.Color, err)
	}
	if got := p(biome.Plains); got != want {
		t.Errorf("plains colour = %v, want %v", got, want)
	}

	if got := p(123456); got != Fallback(123456) {
		t.Errorf("unregistered code = %v, want the fallback %v", got, Fallback(123456))
	}
	if Fallback(-1) != Fallback(-1) {
		t.Error("fallback is not stable")
	}
}

func TestImageRejectsBadShape(t *testing.T) {
	if _, err := Image([]int{1, 2, 3}, 2, 2, Fallback); err == nil {
		t.Error("expected error for 3 cells in a 2x2 image")
	}
}

func TestRenderPNG(t *testing.T) {
	cells := []int{biome.Ocean, biome.Plains, biome.Desert, biome.Forest, biome.Taiga, biome.Swamp}
	data, err := RenderPNG(cells, 3, 2, Options{Scale: 4})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("size = %dx%d, want 12x8", b.Dx(), b.Dy())
	}

	p := RegistryPalette(biome.Default())
	got := color.NRGBAModel.Convert(img.At(6, 2)).(color.NRGBA)
	if got != p(biome.Plains) {
		t.Errorf("pixel (6,2) = %v, want the plains colour %v", got, p(biome.Plains))
	}
}

func TestRenderPNGScaleLimit(t *testing.T) {
	if _, err := RenderPNG([]int{0}, 1, 1, Options{Scale: MaxScale + 1}); err == nil {
		t.Error("expected error above MaxScale")
	}
}
