// Package imageprep turns green-screen item screenshots into trimmed PNGs
// with transparent backgrounds.
package imageprep

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// DefaultThreshold is the RGB distance below which a pixel counts as
// background.
const DefaultThreshold = 200

// DefaultCrop is the capture region used by the wiki screenshot tool.
var DefaultCrop = image.Rect(200, 200, 800, 800)

// Options configures the background stripper.
type Options struct {
	// Crop selects the region kept from each screenshot. An empty rectangle
	// keeps the whole image.
	Crop image.Rectangle
	// Threshold is the Euclidean RGB distance from the key colour under which
	// a pixel becomes transparent.
	Threshold float64
	// Workers bounds concurrent files in ProcessDir. Zero means 4.
	Workers int
}

// DefaultOptions returns the settings used for the mod's item screenshots.
func DefaultOptions() Options {
	return Options{Crop: DefaultCrop, Threshold: DefaultThreshold, Workers: 4}
}

// Strip crops img, keys out the colour found at the crop's top-left pixel
// and trims the result to its non-transparent bounds. When every pixel is
// keyed out the cropped image is returned untrimmed.
func Strip(img image.Image, opts Options) *image.NRGBA {
	region := img.Bounds()
	if !opts.Crop.Empty() {
		if clipped := opts.Crop.Intersect(region); !clipped.Empty() {
			region = clipped
		}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, region.Min, draw.Src)

	key := canvas.NRGBAAt(0, 0)
	transparent := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	bounds := canvas.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if distance(canvas.NRGBAAt(x, y), key) < opts.Threshold {
				canvas.SetNRGBA(x, y, transparent)
			}
		}
	}

	box := opaqueBounds(canvas)
	if box.Empty() || box == bounds {
		return canvas
	}
	trimmed := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(trimmed, trimmed.Bounds(), canvas, box.Min, draw.Src)
	return trimmed
}

func distance(a, b color.NRGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// opaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha.
func opaqueBounds(img *image.NRGBA) image.Rectangle {
	bounds := img.Bounds()
	box := image.Rectangle{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			box = box.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return box
}
