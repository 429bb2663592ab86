package ada

import "errors"

// Package errors. Construction and rebinding of a Canvas are the only
// operations that report errors; drawing never fails.
var (
	// ErrInsufficientBuffer is returned when the pixel buffer is shorter
	// than width*height*bytesPerPixel.
	ErrInsufficientBuffer = errors.New("ada: insufficient buffer")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ada: invalid dimensions")

	// ErrUnsupportedColorMode is returned for an unknown ColorMode value.
	ErrUnsupportedColorMode = errors.New("ada: unsupported color mode")
)
