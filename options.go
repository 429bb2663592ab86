package ada

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default RGBA canvas
//	c, err := ada.NewCanvas(512, 512, buf)
//
//	// Packed RGB canvas, 3 bytes per pixel
//	c, err := ada.NewCanvas(512, 512, buf, ada.WithColorMode(ada.ColorModeRGB))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	colorMode ColorMode
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		colorMode: ColorModeRGBA,
	}
}

// WithColorMode sets the pixel layout of the buffer.
// The buffer must then hold width*height*mode.BytesPerPixel() bytes.
func WithColorMode(mode ColorMode) CanvasOption {
	return func(o *canvasOptions) {
		o.colorMode = mode
	}
}
