// Package ada rasterizes 2D shapes into a caller-owned pixel buffer.
//
// # Overview
//
// ada draws lines, rectangles, circles and ellipses, convex polygons and
// quadratic/cubic Bezier curves straight into a packed byte slice supplied
// by the host. It has no window, no event loop and no file output: the host
// owns the buffer, hands it to a Canvas, draws, and presents the bytes
// however it likes.
//
// # Quick Start
//
//	buf := make([]byte, 4*512*512)
//	canvas, err := ada.NewCanvas(512, 512, buf)
//	if err != nil {
//	    return err
//	}
//
//	canvas.Clear(ada.Black)
//	canvas.Draw(ada.NewCircle2D(256, 256, 100).AsFilled(), ada.Blue)
//	canvas.Draw(ada.NewLine2D(0, 0, 511, 511), ada.White)
//
// # Pixel Layout
//
// The buffer is row-major with the origin at the top-left. Each pixel is
// either 4 bytes (R, G, B, A) or, with WithColorMode(ColorModeRGB), 3 bytes
// (R, G, B). Pixel (x, y) starts at byte (x + y*width) * bytesPerPixel.
//
// # Clipping
//
// Every algorithm writes through Canvas.SetPixel, which ignores coordinates
// outside the canvas, so shapes hanging off an edge draw their visible part.
// Degenerate input (mismatched polygon slices, too few hull points, negative
// radii) draws nothing. The only errors come from NewCanvas and Canvas.Reset
// when the buffer is too small.
//
// # Algorithms
//
//   - Lines: Bresenham, integer only.
//   - Circles: midpoint circle with eightfold symmetry.
//   - Ellipses: two-region midpoint ellipse.
//   - Filled rectangles, circles and ellipses: horizontal spans.
//   - Polygons: Graham scan convex hull, stroked. Polygon fill is reserved
//     and draws nothing.
//   - Bezier curves: flattened to round(sqrt(L²+800)/8) line segments where L
//     is the control polygon length.
//
// # Concurrency
//
// Drawing is synchronous. A Canvas must not be used from several goroutines
// at once; separate canvases over separate buffers are independent.
package ada

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
