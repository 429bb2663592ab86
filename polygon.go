package ada

import (
	"image"

	"github.com/gogpu/ada/internal/geom"
)

// Polygon2D is the convex polygon enclosing a set of points. The points form
// an open path: the first and last point should differ.
//
// Polygons are always stroked. Filling is reserved and draws nothing.
type Polygon2D struct {
	Xs, Ys []int
}

// NewPolygon2D creates a polygon from parallel coordinate slices.
// The slices are copied.
func NewPolygon2D(xs, ys []int) Polygon2D {
	return Polygon2D{
		Xs: append([]int(nil), xs...),
		Ys: append([]int(nil), ys...),
	}
}

// Stroke draws the convex hull of the points.
func (p Polygon2D) Stroke(c *Canvas, col Color) {
	DrawPolygon(p.Xs, p.Ys, c, col)
}

// Fill draws nothing; polygon filling is not supported.
func (p Polygon2D) Fill(c *Canvas, col Color) {
	DrawPolygonFilled(p.Xs, p.Ys, c, col)
}

// IsFilled always returns false.
func (Polygon2D) IsFilled() bool { return false }

// ConvexHull returns the vertices of the convex hull of the points
// (xs[i], ys[i]) in drawing order, starting at the lowest point.
// It returns nil for mismatched slices and degenerate point sets.
func ConvexHull(xs, ys []int) []image.Point {
	idx := geom.ConvexHull(xs, ys)
	if idx == nil {
		return nil
	}
	hull := make([]image.Point, len(idx))
	for i, k := range idx {
		hull[i] = image.Point{X: xs[k], Y: ys[k]}
	}
	return hull
}

// DrawPolygon strokes the convex hull of the points (xs[i], ys[i]), found
// with a Graham scan, closing it back to the first vertex. Mismatched
// slices and degenerate point sets draw nothing.
func DrawPolygon(xs, ys []int, c *Canvas, col Color) {
	if len(xs) != len(ys) {
		Logger().Debug("ada: polygon coordinate count mismatch", "xs", len(xs), "ys", len(ys))
		return
	}
	hull := geom.ConvexHull(xs, ys)
	if len(hull) == 0 {
		Logger().Debug("ada: degenerate polygon", "points", len(xs))
		return
	}

	last := len(hull) - 1
	for i := 0; i < last; i++ {
		a, b := hull[i], hull[i+1]
		DrawLine(xs[a], ys[a], xs[b], ys[b], c, col)
	}
	a, b := hull[last], hull[0]
	DrawLine(xs[a], ys[a], xs[b], ys[b], c, col)
}

// DrawPolygonFilled is reserved for polygon filling and currently draws
// nothing.
func DrawPolygonFilled(xs, ys []int, c *Canvas, col Color) {}
