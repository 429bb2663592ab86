// Package geom holds the pixel-free geometry behind ada's shapes:
// the orientation test and Graham-scan convex hull used by polygons, and the
// Bezier evaluation and adaptive segment count used to flatten curves.
//
// Everything here works on integer pixel coordinates and never touches a
// pixel buffer.
package geom
