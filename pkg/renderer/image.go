package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// ToImage converts averaged radiance into an 8-bit image using gamma 2
func ToImage(width, height int, pixels []PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToRGBA(pixels[y*width+x].GetColor()))
		}
	}
	return img
}

// ToRGBA converts a linear color to RGBA with gamma correction and clamping.
// NaN components become black so a single bad sample cannot poison the output.
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(linear float64) uint8 {
	if math.IsNaN(linear) || linear <= 0 {
		return 0
	}
	corrected := min(math.Sqrt(linear), 0.999)
	return uint8(256 * corrected)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixelCount)
}
