package compose

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"
)

// Options controls placement and blending. The zero-valued alignment fields
// mean center/middle; use DefaultOptions (or pass nil to Fit) for the
// default keep-alpha behavior.
type Options struct {
	// Align and VAlign position the scaled content within the region's
	// padded inner area. Empty values default to AlignCenter/VAlignMiddle.
	Align  Align
	VAlign VAlign

	// Padding is a uniform inset, in pixels, applied to all four sides of
	// the region before placement. Must not be negative.
	Padding int

	// AllowUpscale permits scaling the content beyond its native size when
	// the inner area is larger. When false the scale is capped at 1.0.
	AllowUpscale bool

	// KeepAlpha selects the masked paste for alpha-capable content: the
	// content's own alpha channel gates which canvas pixels are overwritten.
	// When false (or when the content has no alpha channel) the paste is an
	// opaque rectangular overwrite.
	KeepAlpha bool

	// Overlay is an optional image pasted over the full canvas, at the
	// origin, after the content paste. A path Source naming a file that
	// does not exist degrades to no overlay with a warning.
	Overlay *Source

	// Warn receives non-fatal diagnostics. Nil routes them to the standard
	// logger at WARN level. Warnings never affect the result.
	Warn func(msg string)
}

// DefaultOptions returns the default placement options: centered, no
// padding, no upscaling, alpha preserved.
func DefaultOptions() *Options {
	return &Options{
		Align:     AlignCenter,
		VAlign:    VAlignMiddle,
		KeepAlpha: true,
	}
}

// Fit scales content to the largest size that fits entirely within region on
// the canvas, places it per opts, composites it (and an optional overlay)
// onto a copy of the canvas, and returns the result encoded as PNG.
//
// A nil opts means DefaultOptions. The canvas image behind src is never
// mutated. See the package documentation for the exact fit, placement and
// alpha semantics.
func Fit(canvas Source, region Region, content image.Image, opts *Options) ([]byte, error) {
	img, err := FitImage(canvas, region, content, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode composited image: %w", err)
	}
	return buf.Bytes(), nil
}

// FitImage is Fit without the final PNG encoding, for callers that keep
// working with the composited image in memory.
func FitImage(canvas Source, region Region, content image.Image, opts *Options) (*image.NRGBA, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: got nil", ErrNilContent)
	}

	if opts == nil {
		opts = DefaultOptions()
	}
	align, valign := opts.Align, opts.VAlign
	if align == "" {
		align = AlignCenter
	}
	if valign == "" {
		valign = VAlignMiddle
	}

	img, err := resolveCanvas(canvas)
	if err != nil {
		return nil, err
	}

	overlay, overlayMissing, err := resolveOverlay(opts.Overlay)
	if err != nil {
		return nil, err
	}

	if err := region.Validate(); err != nil {
		return nil, err
	}
	innerW, innerH := region.inner(opts.Padding)

	cb := content.Bounds()
	contentW, contentH := cb.Dx(), cb.Dy()
	if contentW <= 0 || contentH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidContentSize, contentW, contentH)
	}

	scale := fitScale(innerW, innerH, contentW, contentH, opts.AllowUpscale)
	placedW, placedH := placedSize(contentW, contentH, scale)

	resized := imaging.Resize(content, placedW, placedH, imaging.Lanczos)

	px, py := pasteOrigin(region, opts.Padding, innerW, innerH, placedW, placedH, align, valign)

	if opts.KeepAlpha && hasAlpha(content) {
		img = imaging.Overlay(img, resized, image.Pt(px, py), 1.0)
	} else {
		img = imaging.Paste(img, resized, image.Pt(px, py))
	}

	if overlay != nil {
		img = imaging.Overlay(img, overlay, image.Pt(0, 0), 1.0)
	} else if overlayMissing {
		warnf(opts.Warn, "overlay image does not exist, skipping: %s", opts.Overlay.Path)
	}

	return img, nil
}

// hasAlpha reports whether the image's color model carries an alpha channel.
// Resampling always yields an alpha-capable NRGBA, so the decision is made
// on the caller-supplied content image.
func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}

func warnf(warn func(string), format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if warn != nil {
		warn(msg)
		return
	}
	log.Printf("[WARN] %s", msg)
}
