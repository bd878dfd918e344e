package renderer

import (
	"image/color"
	"math"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// ColorToRGBA converts an accumulated pixel color to an 8-bit RGBA value:
// the sum is averaged over the sample count, gamma-corrected for gamma=2.0,
// and quantized with the output clamped to [0,255].
func ColorToRGBA(pixelColor core.Color, samplesPerPixel int) color.RGBA {
	scale := 1.0 / float64(samplesPerPixel)
	return color.RGBA{
		R: quantize(math.Sqrt(pixelColor.X * scale)),
		G: quantize(math.Sqrt(pixelColor.Y * scale)),
		B: quantize(math.Sqrt(pixelColor.Z * scale)),
		A: 255,
	}
}

func quantize(c float64) uint8 {
	return uint8(256 * max(0, min(0.999, c)))
}
