package ada

import (
	"fmt"
	"image"
	"math"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a bounded view over a caller-owned packed pixel buffer.
//
// Pixels are stored row-major from the top-left corner; pixel (x, y) starts
// at byte (x + y*width) * BytesPerPixel(). The canvas borrows the buffer: it
// never allocates or copies pixel memory, and the caller must not write to the
// buffer from elsewhere while a draw call is running. A Canvas is not safe for
// concurrent use.
type Canvas struct {
	width  int
	height int
	// maxX and maxY cache the largest valid coordinate.
	maxX int
	maxY int
	bpp  int
	mode ColorMode
	buf  []byte
}

// NewCanvas creates a canvas of the given size over buf.
//
// It returns ErrInvalidDimensions if width or height is not positive or the
// buffer size width*height*bytesPerPixel does not fit in an int, and
// ErrInsufficientBuffer if len(buf) is smaller than that size.
func NewCanvas(width, height int, buf []byte, opts ...CanvasOption) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bpp := o.colorMode.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedColorMode, o.colorMode)
	}
	if width <= 0 || height <= 0 || width > math.MaxInt/height/bpp {
		Logger().Debug("ada: canvas rejected", "width", width, "height", height)
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := checkBuffer(width, height, bpp, buf); err != nil {
		return nil, err
	}

	Logger().Debug("ada: canvas created",
		"width", width, "height", height, "mode", o.colorMode.String())

	return &Canvas{
		width:  width,
		height: height,
		maxX:   width - 1,
		maxY:   height - 1,
		bpp:    bpp,
		mode:   o.colorMode,
		buf:    buf,
	}, nil
}

func checkBuffer(width, height, bpp int, buf []byte) error {
	need := width * height * bpp
	if len(buf) < need {
		Logger().Debug("ada: buffer too small", "need", need, "got", len(buf))
		return fmt.Errorf("%w: need %d bytes, got %d", ErrInsufficientBuffer, need, len(buf))
	}
	return nil
}

// Reset rebinds the canvas to a new buffer, e.g. the next frame's surface.
// On error the previous buffer stays bound.
func (c *Canvas) Reset(buf []byte) error {
	if err := checkBuffer(c.width, c.height, c.bpp, buf); err != nil {
		return err
	}
	c.buf = buf
	return nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// ColorMode returns the pixel layout of the canvas.
func (c *Canvas) ColorMode() ColorMode {
	return c.mode
}

// BytesPerPixel returns 4 for RGBA canvases and 3 for RGB canvases.
func (c *Canvas) BytesPerPixel() int {
	return c.bpp
}

// Stride returns the number of bytes in one row.
func (c *Canvas) Stride() int {
	return c.width * c.bpp
}

// Buffer returns the bound pixel buffer.
func (c *Canvas) Buffer() []byte {
	return c.buf
}

// SetPixel writes col at (x, y). Coordinates outside the canvas are ignored,
// so shapes partially off the canvas draw their visible part.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x > c.maxX || y > c.maxY {
		return
	}
	i := (x + y*c.width) * c.bpp
	c.buf[i+0] = col.R
	c.buf[i+1] = col.G
	c.buf[i+2] = col.B
	if c.bpp == 4 {
		c.buf[i+3] = col.A
	}
}

// Pixel returns the bytes of pixel (x, y): R, G, B, A for RGBA canvases and
// R, G, B for RGB canvases. The slice aliases the buffer.
//
// Pixel does not check bounds; it panics if (x, y) is outside the buffer.
func (c *Canvas) Pixel(x, y int) []byte {
	i := (x + y*c.width) * c.bpp
	return c.buf[i : i+c.bpp : i+c.bpp]
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col Color) {
	n := c.width * c.height * c.bpp
	if n == 0 {
		return
	}
	px := [4]byte{col.R, col.G, col.B, col.A}
	copy(c.buf[:c.bpp], px[:c.bpp])
	// Double the filled prefix until the canvas is covered.
	for filled := c.bpp; filled < n; filled *= 2 {
		copy(c.buf[filled:n], c.buf[:filled])
	}
}

// fillSpan writes col to pixels x1..x2 (inclusive) of row y, clipped to the
// canvas. x1 and x2 may be given in either order.
func (c *Canvas) fillSpan(x1, x2, y int, col Color) {
	if y < 0 || y > c.maxY {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x2 < 0 || x1 > c.maxX {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, c.maxX)

	row := y * c.width
	start := (row + x1) * c.bpp
	end := (row + x2 + 1) * c.bpp
	px := [4]byte{col.R, col.G, col.B, col.A}
	for i := start; i < end; i += c.bpp {
		copy(c.buf[i:i+c.bpp], px[:c.bpp])
	}
}

// Draw renders s with col: filled if s reports itself filled, stroked
// otherwise. A nil shape draws nothing.
func (c *Canvas) Draw(s Shape, col Color) {
	if s == nil {
		return
	}
	if s.IsFilled() {
		s.Fill(c, col)
	} else {
		s.Stroke(c, col)
	}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x > c.maxX || y > c.maxY {
		return color.NRGBA{}
	}
	p := c.Pixel(x, y)
	if c.bpp == 3 {
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255}
	}
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// CopyTo copies the whole canvas into dst with its top-left corner at dp.
// Hosts use it to move a frame onto their display surface.
func (c *Canvas) CopyTo(dst draw.Image, dp image.Point) {
	draw.Copy(dst, dp, c, c.Bounds(), draw.Src, nil)
}

// ScaleTo scales the whole canvas into the rectangle dr of dst using s,
// for example draw.NearestNeighbor for crisp pixel upscaling.
func (c *Canvas) ScaleTo(dst draw.Image, dr image.Rectangle, s draw.Scaler) {
	s.Scale(dst, dr, c, c.Bounds(), draw.Src, nil)
}
