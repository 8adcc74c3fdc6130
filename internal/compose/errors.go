package compose

import "errors"

// Failure kinds surfaced by Fit. All are wrapped with detail via %w, so
// callers should test them with errors.Is.
var (
	// ErrNilContent reports that the content image was not a decoded image.
	ErrNilContent = errors.New("content image must be a decoded image")

	// ErrInvalidRegion reports a degenerate paste region (x2<=x1 or y2<=y1).
	ErrInvalidRegion = errors.New("invalid paste region")

	// ErrInvalidContentSize reports a content image without positive dimensions.
	ErrInvalidContentSize = errors.New("invalid content image size")
)
