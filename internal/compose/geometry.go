package compose

import (
	"fmt"
	"math"
)

// Align specifies horizontal placement within the region's inner area.
type Align string

// Horizontal alignment values.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VAlign specifies vertical placement within the region's inner area.
type VAlign string

// Vertical alignment values.
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// ParseAlign converts a string into an Align value. The empty string means
// the default, AlignCenter.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", string(AlignCenter):
		return AlignCenter, nil
	case string(AlignLeft):
		return AlignLeft, nil
	case string(AlignRight):
		return AlignRight, nil
	default:
		return "", fmt.Errorf("unknown align: %s", s)
	}
}

// ParseVAlign converts a string into a VAlign value. The empty string means
// the default, VAlignMiddle.
func ParseVAlign(s string) (VAlign, error) {
	switch s {
	case "", string(VAlignMiddle):
		return VAlignMiddle, nil
	case string(VAlignTop):
		return VAlignTop, nil
	case string(VAlignBottom):
		return VAlignBottom, nil
	default:
		return "", fmt.Errorf("unknown valign: %s", s)
	}
}

// Region is the axis-aligned target rectangle on the canvas.
//
// (X1, Y1) is the top-left corner (inclusive), (X2, Y2) the bottom-right
// corner (exclusive). A region is valid only if X2 > X1 and Y2 > Y1.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect constructs a Region from two corner points.
func Rect(x1, y1, x2, y2 int) Region {
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Validate checks that the region is non-degenerate.
func (r Region) Validate() error {
	if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidRegion, r.X1, r.Y1, r.X2, r.Y2)
	}
	return nil
}

// inner returns the region's dimensions after removing padding from all four
// sides. Both dimensions are floored at 1 pixel so the scale computation
// stays well-defined even under pathological padding.
func (r Region) inner(padding int) (w, h int) {
	w = (r.X2 - r.X1) - 2*padding
	h = (r.Y2 - r.Y1) - 2*padding
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// fitScale computes the uniform "contain" scale: the largest factor at which
// a contentW x contentH image still fits inside innerW x innerH. With
// allowUpscale false the factor is capped at 1.0.
func fitScale(innerW, innerH, contentW, contentH int, allowUpscale bool) float64 {
	scale := math.Min(
		float64(innerW)/float64(contentW),
		float64(innerH)/float64(contentH),
	)
	if !allowUpscale && scale > 1.0 {
		scale = 1.0
	}
	return scale
}

// placedSize applies the scale to the content dimensions, rounding half to
// nearest and flooring each axis at 1 pixel.
func placedSize(contentW, contentH int, scale float64) (w, h int) {
	w = int(math.Round(float64(contentW) * scale))
	h = int(math.Round(float64(contentH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// pasteOrigin computes the top-left canvas coordinate for a placed image of
// size w x h inside the region's padded inner area.
//
// Centering uses integer division; the leftover space is never negative
// (placedSize never exceeds the inner dimensions), so for odd leftovers the
// extra pixel lands on the right/bottom side and the image biases toward the
// top-left. The computed origin is intentionally not clamped to the region.
func pasteOrigin(r Region, padding, innerW, innerH, w, h int, align Align, valign VAlign) (x, y int) {
	switch align {
	case AlignLeft:
		x = r.X1 + padding
	case AlignCenter:
		x = r.X1 + padding + (innerW-w)/2
	default: // right
		x = r.X2 - padding - w
	}

	switch valign {
	case VAlignTop:
		y = r.Y1 + padding
	case VAlignMiddle:
		y = r.Y1 + padding + (innerH-h)/2
	default: // bottom
		y = r.Y2 - padding - h
	}

	return x, y
}
