package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelStyle colors a rasterized label.
type LabelStyle struct {
	Foreground color.Color
	Background color.Color
	Border     color.Color
}

// DefaultLabelStyle matches the translucent black VR button with white text.
var DefaultLabelStyle = LabelStyle{
	Foreground: color.White,
	Background: color.NRGBA{0, 0, 0, 0x66},
	Border:     color.White,
}

var labelFace font.Face = basicfont.Face7x13

// MeasureLabel returns the pixel width and height of text in the label face.
func MeasureLabel(text string) (int, int) {
	adv := font.MeasureString(labelFace, text)
	m := labelFace.Metrics()
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}

// RasterizeLabel draws text centered in a width x height RGBA image with a
// one pixel border. Text that does not fit is clipped.
func RasterizeLabel(text string, width, height int, style LabelStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	if style.Border != nil {
		b := image.NewUniform(style.Border)
		draw.Draw(img, image.Rect(0, 0, width, 1), b, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, height-1, width, height), b, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, 0, 1, height), b, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(width-1, 0, width, height), b, image.Point{}, draw.Src)
	}

	tw, th := MeasureLabel(text)
	ascent := labelFace.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(style.Foreground),
		Face: labelFace,
		Dot:  fixed.P((width-tw)/2, (height-th)/2+ascent),
	}
	d.DrawString(text)
	return img
}
