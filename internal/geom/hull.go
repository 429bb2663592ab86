package geom

import (
	"image"
	"slices"
)

// Turn is the orientation of an ordered point triplet.
type Turn int8

// The sign convention follows the cross product
// (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y), not compass direction:
// positive is Clockwise, negative is CounterClockwise.
const (
	Colinear Turn = iota
	Clockwise
	CounterClockwise
)

// Orientation reports the turn made by the triplet (p, q, r).
func Orientation(p, q, r image.Point) Turn {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case v == 0:
		return Colinear
	case v > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

func distSq(a, b image.Point) int {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// ConvexHull computes the convex hull of the points (xs[i], ys[i]) with a
// Graham scan and returns the indices of the hull vertices in scan order,
// starting at the lowest point (smallest y, then smallest x).
//
// It returns nil when the slices differ in length or when fewer than four
// distinct polar angles (pivot included) remain after colinear points are
// merged.
func ConvexHull(xs, ys []int) []int {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil
	}
	at := func(i int) image.Point { return image.Point{X: xs[i], Y: ys[i]} }

	pivot := 0
	for i := 1; i < len(xs); i++ {
		if ys[i] < ys[pivot] || (ys[i] == ys[pivot] && xs[i] < xs[pivot]) {
			pivot = i
		}
	}
	p0 := at(pivot)

	// Points coinciding with the pivot have no angle; drop them.
	rest := make([]int, 0, len(xs)-1)
	for i := range xs {
		if i != pivot && at(i) != p0 {
			rest = append(rest, i)
		}
	}

	// Sort by polar angle around the pivot; ties run nearest first so the
	// farthest point ends each colinear run.
	slices.SortStableFunc(rest, func(a, b int) int {
		pa, pb := at(a), at(b)
		switch Orientation(p0, pa, pb) {
		case CounterClockwise:
			return -1
		case Clockwise:
			return 1
		}
		return distSq(p0, pa) - distSq(p0, pb)
	})

	// Keep only the farthest point of each angle.
	pts := make([]int, 1, len(rest)+1)
	pts[0] = pivot
	for k := 0; k < len(rest); k++ {
		for k < len(rest)-1 && Orientation(p0, at(rest[k]), at(rest[k+1])) == Colinear {
			k++
		}
		pts = append(pts, rest[k])
	}
	if len(pts) < 4 {
		return nil
	}

	hull := append(make([]int, 0, len(pts)), pts[:3]...)
	for _, i := range pts[3:] {
		for len(hull) > 1 &&
			Orientation(at(hull[len(hull)-2]), at(hull[len(hull)-1]), at(i)) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	return hull
}
