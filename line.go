package ada

// Line2D is a line segment between two pixels.
type Line2D struct {
	X1, Y1, X2, Y2 int
}

// NewLine2D creates a line from (x1, y1) to (x2, y2).
func NewLine2D(x1, y1, x2, y2 int) Line2D {
	return Line2D{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Stroke draws the line.
func (l Line2D) Stroke(c *Canvas, col Color) {
	DrawLine(l.X1, l.Y1, l.X2, l.Y2, c, col)
}

// Fill draws the line; a line has no interior.
func (l Line2D) Fill(c *Canvas, col Color) {
	DrawLine(l.X1, l.Y1, l.X2, l.Y2, c, col)
}

// IsFilled always returns false.
func (Line2D) IsFilled() bool { return false }

// DrawLine draws the line from (x1, y1) to (x2, y2) with Bresenham's
// algorithm. Both endpoints are plotted, one pixel per step along the major
// axis, and swapping the endpoints yields the same pixels.
func DrawLine(x1, y1, x2, y2 int, c *Canvas, col Color) {
	// Both ends past the same edge: nothing can land on the canvas.
	if (x1 < 0 && x2 < 0) || (x1 > c.maxX && x2 > c.maxX) ||
		(y1 < 0 && y2 < 0) || (y1 > c.maxY && y2 > c.maxY) {
		return
	}

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	ystep := 1
	if y2 < y1 {
		ystep = -1
	}

	d := 2*dy - dx
	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			c.SetPixel(y, x, col)
		} else {
			c.SetPixel(x, y, col)
		}
		if d >= 0 {
			y += ystep
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
