package ada

// Ellipse2D is an axis-aligned ellipse centered at (X, Y). A circle is an
// ellipse with equal radii.
type Ellipse2D struct {
	X, Y             int
	RadiusX, RadiusY int
	Filled           bool
}

// NewEllipse2D creates an outlined ellipse.
func NewEllipse2D(x, y, radiusX, radiusY int) Ellipse2D {
	return Ellipse2D{X: x, Y: y, RadiusX: radiusX, RadiusY: radiusY}
}

// NewCircle2D creates an outlined circle.
func NewCircle2D(x, y, radius int) Ellipse2D {
	return Ellipse2D{X: x, Y: y, RadiusX: radius, RadiusY: radius}
}

// AsFilled returns a copy of e that Canvas.Draw fills.
func (e Ellipse2D) AsFilled() Ellipse2D {
	e.Filled = true
	return e
}

// Stroke draws the outline.
func (e Ellipse2D) Stroke(c *Canvas, col Color) {
	DrawEllipse(e.X, e.Y, e.RadiusX, e.RadiusY, c, col)
}

// Fill draws the ellipse and its interior.
func (e Ellipse2D) Fill(c *Canvas, col Color) {
	DrawEllipseFilled(e.X, e.Y, e.RadiusX, e.RadiusY, c, col)
}

// IsFilled reports whether the ellipse was created filled.
func (e Ellipse2D) IsFilled() bool { return e.Filled }

// DrawEllipse draws the outline of the ellipse centered at (xc, yc) with
// horizontal radius rx and vertical radius ry using the two-region midpoint
// algorithm. Equal radii take the faster circle path.
func DrawEllipse(xc, yc, rx, ry int, c *Canvas, col Color) {
	midpointEllipse(xc, yc, rx, ry, c, col, false)
}

// DrawEllipseFilled draws the ellipse centered at (xc, yc) and its interior
// as horizontal spans.
func DrawEllipseFilled(xc, yc, rx, ry int, c *Canvas, col Color) {
	midpointEllipse(xc, yc, rx, ry, c, col, true)
}

func midpointEllipse(xc, yc, rx, ry int, c *Canvas, col Color, fill bool) {
	switch {
	case rx < 0 || ry < 0:
		Logger().Debug("ada: negative ellipse radius", "rx", rx, "ry", ry)
		return
	case rx == ry:
		midpointCircle(xc, yc, rx, c, col, fill)
		return
	case rx == 0 || ry == 0:
		// Flattened to a segment along the non-zero axis.
		DrawLine(xc-rx, yc-ry, xc+rx, yc+ry, c, col)
		return
	}

	plot := func(x, y int) {
		if fill {
			c.fillSpan(xc-x, xc+x, yc+y, col)
			c.fillSpan(xc-x, xc+x, yc-y, col)
			return
		}
		c.SetPixel(xc+x, yc+y, col)
		c.SetPixel(xc-x, yc+y, col)
		c.SetPixel(xc+x, yc-y, col)
		c.SetPixel(xc-x, yc-y, col)
	}

	// Decision variables are scaled by 4 to stay in integers.
	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	x, y := int64(0), int64(ry)
	dx, dy := int64(0), 2*rx2*y

	// Region 1: slope magnitude below 1, step x every iteration.
	d := 4*ry2 - 4*rx2*int64(ry) + rx2
	for dx < dy {
		plot(int(x), int(y))
		x++
		dx += 2 * ry2
		if d < 0 {
			d += 4 * (dx + ry2)
		} else {
			y--
			dy -= 2 * rx2
			d += 4 * (dx - dy + ry2)
		}
	}

	// Region 2: slope magnitude above 1, step y every iteration.
	d = ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	for y >= 0 {
		plot(int(x), int(y))
		y--
		dy -= 2 * rx2
		if d > 0 {
			d += 4 * (rx2 - dy)
		} else {
			x++
			dx += 2 * ry2
			d += 4 * (dx - dy + rx2)
		}
	}
}

// DrawCircle draws the outline of the circle centered at (xc, yc) with the
// midpoint circle algorithm, plotting eight symmetric points per step.
func DrawCircle(xc, yc, r int, c *Canvas, col Color) {
	if r < 0 {
		Logger().Debug("ada: negative circle radius", "r", r)
		return
	}
	midpointCircle(xc, yc, r, c, col, false)
}

// DrawCircleFilled draws the circle centered at (xc, yc) and its interior
// as horizontal spans.
func DrawCircleFilled(xc, yc, r int, c *Canvas, col Color) {
	if r < 0 {
		Logger().Debug("ada: negative circle radius", "r", r)
		return
	}
	midpointCircle(xc, yc, r, c, col, true)
}

func midpointCircle(xc, yc, r int, c *Canvas, col Color, fill bool) {
	x, y := 0, r
	d := 1 - r
	for x <= y {
		if fill {
			c.fillSpan(xc-x, xc+x, yc+y, col)
			c.fillSpan(xc-x, xc+x, yc-y, col)
			c.fillSpan(xc-y, xc+y, yc+x, col)
			c.fillSpan(xc-y, xc+y, yc-x, col)
		} else {
			c.SetPixel(xc+x, yc+y, col)
			c.SetPixel(xc+y, yc+x, col)
			c.SetPixel(xc-y, yc+x, col)
			c.SetPixel(xc-x, yc+y, col)
			c.SetPixel(xc-x, yc-y, col)
			c.SetPixel(xc-y, yc-x, col)
			c.SetPixel(xc+y, yc-x, col)
			c.SetPixel(xc+x, yc-y, col)
		}
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}
