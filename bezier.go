package ada

import (
	"image"

	"github.com/gogpu/ada/internal/geom"
)

// QuadraticBezier2D is a quadratic Bezier curve from Start to End bent
// towards Control.
type QuadraticBezier2D struct {
	Start, End, Control image.Point
}

// NewQuadraticBezier2D creates a quadratic Bezier curve.
func NewQuadraticBezier2D(start, end, control image.Point) QuadraticBezier2D {
	return QuadraticBezier2D{Start: start, End: end, Control: control}
}

// Stroke draws the curve.
func (q QuadraticBezier2D) Stroke(c *Canvas, col Color) {
	DrawQuadraticBezier(q.Start, q.End, q.Control, c, col)
}

// Fill draws the curve; an open curve has no interior.
func (q QuadraticBezier2D) Fill(c *Canvas, col Color) {
	DrawQuadraticBezier(q.Start, q.End, q.Control, c, col)
}

// IsFilled always returns false.
func (QuadraticBezier2D) IsFilled() bool { return false }

// CubicBezier2D is a cubic Bezier curve from Start to End with control
// points ControlA and ControlB.
type CubicBezier2D struct {
	Start, End, ControlA, ControlB image.Point
}

// NewCubicBezier2D creates a cubic Bezier curve.
func NewCubicBezier2D(start, end, controlA, controlB image.Point) CubicBezier2D {
	return CubicBezier2D{Start: start, End: end, ControlA: controlA, ControlB: controlB}
}

// Stroke draws the curve.
func (b CubicBezier2D) Stroke(c *Canvas, col Color) {
	DrawCubicBezier(b.Start, b.End, b.ControlA, b.ControlB, c, col)
}

// Fill draws the curve; an open curve has no interior.
func (b CubicBezier2D) Fill(c *Canvas, col Color) {
	DrawCubicBezier(b.Start, b.End, b.ControlA, b.ControlB, c, col)
}

// IsFilled always returns false.
func (CubicBezier2D) IsFilled() bool { return false }

// DrawQuadraticBezier flattens the quadratic Bezier curve into line
// segments and draws them. The segment count grows with the length of the
// control polygon.
func DrawQuadraticBezier(start, end, control image.Point, c *Canvas, col Color) {
	n := geom.SegmentCount(geom.PolylineLength(start, control, end))
	if n <= 0 {
		Logger().Debug("ada: degenerate quadratic bezier", "start", start, "end", end)
		return
	}
	prev := start
	for i := 1; i <= n; i++ {
		next := geom.Quadratic(start, control, end, float64(i)/float64(n))
		DrawLine(prev.X, prev.Y, next.X, next.Y, c, col)
		prev = next
	}
}

// DrawCubicBezier flattens the cubic Bezier curve into line segments and
// draws them.
func DrawCubicBezier(start, end, controlA, controlB image.Point, c *Canvas, col Color) {
	n := geom.SegmentCount(geom.PolylineLength(start, controlA, controlB, end))
	if n <= 0 {
		Logger().Debug("ada: degenerate cubic bezier", "start", start, "end", end)
		return
	}
	prev := start
	for i := 1; i <= n; i++ {
		next := geom.Cubic(start, controlA, controlB, end, float64(i)/float64(n))
		DrawLine(prev.X, prev.Y, next.X, next.Y, c, col)
		prev = next
	}
}

// FlattenQuadraticBezier returns the pixels DrawQuadraticBezier connects,
// from start to end.
func FlattenQuadraticBezier(start, end, control image.Point) []image.Point {
	return geom.AppendQuadratic(nil, start, control, end)
}

// FlattenCubicBezier returns the pixels DrawCubicBezier connects, from start
// to end.
func FlattenCubicBezier(start, end, controlA, controlB image.Point) []image.Point {
	return geom.AppendCubic(nil, start, controlA, controlB, end)
}
