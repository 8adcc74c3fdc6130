// Package imaging provides the image collaborators around the compositing
// core: decoding images from disk or HTTP, creating blank canvases, sampling
// pixels, and encoding results.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions
// are stateless and can be called concurrently on different images.
//
// # Error Handling
//
// Functions return errors for unreadable or undecodable files, coordinates
// outside image bounds, malformed color strings, HTTP failures, and encoding
// failures. Errors are wrapped with %w so callers can inspect the cause.
package imaging
