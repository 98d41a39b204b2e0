package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/viant/bluenoise/point"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file. PNG, JPEG, BMP, TIFF and WebP are supported.
func Load(path string) (image.Image, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to load %s: %w", path, err)
	}
	return img, nil
}

// Points returns one point per pixel, x outer and y inner. Coordinates are
// relative to the image origin and z is always zero.
func Points(img image.Image) []point.Point[color.RGBA] {
	b := img.Bounds()
	out := make([]point.Point[color.RGBA], 0, b.Dx()*b.Dy())
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			out = append(out, point.New(c, float32(x-b.Min.X), float32(y-b.Min.Y), 0))
		}
	}
	return out
}

// Render draws points onto a width x height canvas. Pixels without a point
// keep the background, or stay transparent when background is nil.
func Render(width, height int, points []point.Point[color.RGBA], background color.Color) image.Image {
	dc := gg.NewContext(width, height)
	if background != nil {
		dc.SetColor(background)
		dc.Clear()
	}
	for _, p := range points {
		x := int(math.Round(float64(p.X())))
		y := int(math.Round(float64(p.Y())))
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		dc.SetColor(p.Payload())
		dc.SetPixel(x, y)
	}
	return dc.Image()
}

// Background resolves an SVG colour name. An empty name or "transparent"
// yields nil.
func Background(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "transparent" {
		return nil, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("raster: unknown colour %q", name)
	}
	return c, nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("raster: failed to save %s: %w", path, err)
	}
	return nil
}
