package graphics

import (
	"image/color"
	"testing"
)

func TestMeasureLabel(t *testing.T) {
	w, h := MeasureLabel("ENTER VR")
	// basicfont.Face7x13 advances 7px per glyph.
	if w != 56 {
		t.Errorf("width = %d, want 56", w)
	}
	if h <= 0 || h > 13 {
		t.Errorf("height = %d, want 1..13", h)
	}
}

func TestRasterizeLabel(t *testing.T) {
	style := LabelStyle{
		Foreground: color.White,
		Background: color.Black,
		Border:     color.NRGBA{255, 0, 0, 255},
	}
	img := RasterizeLabel("EXIT VR", 120, 32, style)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 120x32", b)
	}

	if r, g, _, _ := img.At(0, 0).RGBA(); r != 0xffff || g != 0 {
		t.Errorf("corner = %v, want border red", img.At(0, 0))
	}
	if r, _, _, _ := img.At(2, 2).RGBA(); r != 0 {
		t.Errorf("inside = %v, want background", img.At(2, 2))
	}

	white := 0
	for y := 1; y < 31; y++ {
		for x := 1; x < 119; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r == 0xffff && g == 0xffff && b == 0xffff {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("no text pixels drawn")
	}
}

func TestRasterizeLabelEmpty(t *testing.T) {
	img := RasterizeLabel("x", 0, 10, DefaultLabelStyle)
	if !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
}
