package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a "#RRGGBB" color string into an opaque NRGBA color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// NewCanvas creates a blank canvas of the given size filled with the color
// described by hex ("#RRGGBB").
func NewCanvas(width, height int, hex string) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	fill, err := ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	return imaging.New(width, height, fill), nil
}

// ColorSample is the color at a sampled pixel, as hex and 8-bit components.
type ColorSample struct {
	Hex string `json:"hex"` // "#rrggbb", alpha excluded
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	A   uint8  `json:"a"`
}

// SampleColor extracts the color value at a pixel coordinate. Coordinates
// are 0-based from the top-left corner and must lie within the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c, _ := colorful.MakeColor(color.NRGBA{R: n.R, G: n.G, B: n.B, A: 255})

	return &ColorSample{
		Hex: c.Hex(),
		R:   n.R,
		G:   n.G,
		B:   n.B,
		A:   n.A,
	}, nil
}
