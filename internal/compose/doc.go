// Package compose implements the composite-fit operation: scaling a content
// image to the largest size that fits a rectangular region of a base canvas,
// placing it according to alignment and padding, and blending it onto a copy
// of the canvas.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X increases rightward, Y increases downward
//   - A region's (X1, Y1) corner is inclusive, (X2, Y2) is exclusive
//   - Width = X2 - X1, Height = Y2 - Y1
//
// # The Contain Fit
//
// The content image is scaled uniformly by the minimum of the two axis
// ratios (inner width / content width, inner height / content height), so it
// fits entirely inside the region's padded inner area without cropping or
// distortion. Upscaling beyond the content's native size is disabled by
// default; see Options.AllowUpscale.
//
// # Alpha Handling
//
// When Options.KeepAlpha is set and the content image carries an alpha
// channel, the paste uses the content's own alpha as the blend mask: fully
// transparent source pixels leave the canvas untouched. Otherwise the paste
// is an opaque rectangular overwrite. An optional overlay image is always
// pasted last at the canvas origin using its own alpha.
//
// # Error Handling
//
// Validation failures are reported through the sentinel errors ErrNilContent,
// ErrInvalidRegion and ErrInvalidContentSize, always wrapped with context.
// Decode and encode failures propagate from the codec. A missing overlay file
// is not an error: the operation continues without the overlay and reports a
// warning through Options.Warn.
//
// # Concurrency
//
// Fit is a pure function of its inputs. The base canvas is copied before any
// drawing, so the caller's image is never mutated; the content and overlay
// images are only read. Concurrent calls with independent inputs are safe.
package compose
