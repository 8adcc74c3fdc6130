package compose

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Source identifies an input image as either a file path or an
// already-decoded image. Exactly one of the two fields is set.
type Source struct {
	Path  string
	Image image.Image
}

// PathSource returns a Source referring to an image file on disk.
func PathSource(path string) Source {
	return Source{Path: path}
}

// ImageSource returns a Source wrapping an already-decoded image.
func ImageSource(img image.Image) Source {
	return Source{Image: img}
}

// resolveCanvas produces the working canvas from a Source.
//
// A decoded image is defensively copied so the caller's original survives
// the operation unmodified; a path is opened and decoded. Either way the
// result is an NRGBA image, guaranteeing the alpha-aware paste operations
// downstream are always valid.
func resolveCanvas(src Source) (*image.NRGBA, error) {
	if src.Image != nil {
		return imaging.Clone(src.Image), nil
	}

	img, err := imaging.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open canvas image %q: %w", src.Path, err)
	}
	return imaging.Clone(img), nil
}

// resolveOverlay produces the overlay image from an optional Source.
//
// Unlike the canvas, a path that does not resolve to an existing regular
// file is not an error: the overlay degrades to absent and missing is
// reported true so the caller can emit a diagnostic. A decoded overlay image
// is used in place; the operation only reads it.
func resolveOverlay(src *Source) (ov image.Image, missing bool, err error) {
	if src == nil {
		return nil, false, nil
	}
	if src.Image != nil {
		return src.Image, false, nil
	}

	info, err := os.Stat(src.Path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, true, nil
	}

	img, err := imaging.Open(src.Path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open overlay image %q: %w", src.Path, err)
	}
	return imaging.Clone(img), false, nil
}
