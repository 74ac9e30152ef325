// Package luminance computes the average brightness of an image and picks a
// readable terminal foreground color for it.
package luminance

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Foreground colors chosen against bright and dark backgrounds.
const (
	DarkForeground  = "#000000"
	LightForeground = "#FFFFFF"
)

// Images are downscaled to this width before sampling so the cost stays flat
// regardless of source resolution.
const sampleWidth = 64

// Average returns the mean brightness of the image at path in [0, 1],
// where 0 is black and 1 is white.
func Average(path string) (float64, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening image: %w", err)
	}
	return averageOf(img), nil
}

func averageOf(img image.Image) float64 {
	small := imaging.Resize(img, sampleWidth, 0, imaging.Box)
	gray := imaging.Grayscale(small)

	// Grayscale output is NRGBA with R==G==B, so one channel is enough.
	var sum uint64
	pix := gray.Pix
	n := len(pix) / 4
	if n == 0 {
		return 0
	}
	for i := 0; i < len(pix); i += 4 {
		sum += uint64(pix[i])
	}
	return float64(sum) / float64(n) / 255.0
}

// Foreground picks the text color for the given average luminance: dark text
// on bright images, light text on dark ones.
func Foreground(lum, threshold float64) string {
	if lum > threshold {
		return DarkForeground
	}
	return LightForeground
}
