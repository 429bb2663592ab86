package geom

import (
	"image"
	"math"
)

// PolylineLength returns the summed length of the edges p[0]-p[1]-...-p[n-1].
// For a Bezier control polygon this bounds the curve length from above.
func PolylineLength(p ...image.Point) float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += math.Hypot(float64(p[i].X-p[i-1].X), float64(p[i].Y-p[i-1].Y))
	}
	return l
}

// MaxSegments bounds SegmentCount. It is reached by curves whose control
// polygon is about half a million pixels long; longer curves get coarser
// segments instead of more of them.
const MaxSegments = 1 << 16

// SegmentCount returns how many line segments approximate a curve whose
// length is bounded by length: round(sqrt(length²+800) / 8), at most
// MaxSegments.
// The hyperbola keeps short curves at a smooth minimum while long curves
// get segments roughly proportional to their length.
func SegmentCount(length float64) int {
	n := math.Round(math.Sqrt(length*length+800) / 8)
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return int(n)
}

func round(x, y float64) image.Point {
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Quadratic evaluates the quadratic Bezier p0, c, p1 at t and rounds the
// result to the nearest pixel.
func Quadratic(p0, c, p1 image.Point, t float64) image.Point {
	mt := 1 - t
	a, b, d := mt*mt, 2*mt*t, t*t
	return round(
		a*float64(p0.X)+b*float64(c.X)+d*float64(p1.X),
		a*float64(p0.Y)+b*float64(c.Y)+d*float64(p1.Y),
	)
}

// Cubic evaluates the cubic Bezier p0, c0, c1, p1 at t and rounds the
// result to the nearest pixel.
func Cubic(p0, c0, c1, p1 image.Point, t float64) image.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return round(
		a*float64(p0.X)+b*float64(c0.X)+c*float64(c1.X)+d*float64(p1.X),
		a*float64(p0.Y)+b*float64(c0.Y)+c*float64(c1.Y)+d*float64(p1.Y),
	)
}

// AppendQuadratic appends the segments+1 flattened samples of the quadratic
// Bezier p0, c, p1 to dst. Nothing is appended when the segment count is 0.
func AppendQuadratic(dst []image.Point, p0, c, p1 image.Point) []image.Point {
	n := SegmentCount(PolylineLength(p0, c, p1))
	for i := 0; n > 0 && i <= n; i++ {
		dst = append(dst, Quadratic(p0, c, p1, float64(i)/float64(n)))
	}
	return dst
}

// AppendCubic appends the segments+1 flattened samples of the cubic Bezier
// p0, c0, c1, p1 to dst. Nothing is appended when the segment count is 0.
func AppendCubic(dst []image.Point, p0, c0, c1, p1 image.Point) []image.Point {
	n := SegmentCount(PolylineLength(p0, c0, c1, p1))
	for i := 0; n > 0 && i <= n; i++ {
		dst = append(dst, Cubic(p0, c0, c1, p1, float64(i)/float64(n)))
	}
	return dst
}
