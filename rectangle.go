package ada

// Rectangle2D is an axis-aligned rectangle whose corners are (X, Y) and
// (X+Width, Y+Height), both inclusive.
type Rectangle2D struct {
	X, Y, Width, Height int
	Filled              bool
}

// NewRectangle2D creates an outlined rectangle.
func NewRectangle2D(x, y, width, height int) Rectangle2D {
	return Rectangle2D{X: x, Y: y, Width: width, Height: height}
}

// AsFilled returns a copy of r that Canvas.Draw fills.
func (r Rectangle2D) AsFilled() Rectangle2D {
	r.Filled = true
	return r
}

// Stroke draws the four edges.
func (r Rectangle2D) Stroke(c *Canvas, col Color) {
	DrawRect(r.X, r.Y, r.Width, r.Height, c, col)
}

// Fill draws the rectangle and its interior.
func (r Rectangle2D) Fill(c *Canvas, col Color) {
	DrawRectFilled(r.X, r.Y, r.Width, r.Height, c, col)
}

// IsFilled reports whether the rectangle was created filled.
func (r Rectangle2D) IsFilled() bool { return r.Filled }

// DrawRect draws the outline of the rectangle spanning (x, y) to
// (x+width, y+height). Negative sizes extend left or up.
func DrawRect(x, y, width, height int, c *Canvas, col Color) {
	x2, y2 := x+width, y+height
	DrawLine(x, y, x2, y, c, col)
	DrawLine(x, y, x, y2, c, col)
	DrawLine(x2, y, x2, y2, c, col)
	DrawLine(x, y2, x2, y2, c, col)
}

// DrawRectFilled fills the rectangle spanning (x, y) to (x+width, y+height)
// one row at a time.
func DrawRectFilled(x, y, width, height int, c *Canvas, col Color) {
	y1, y2 := y, y+height
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	y1 = max(y1, 0)
	y2 = min(y2, c.maxY)
	for row := y1; row <= y2; row++ {
		c.fillSpan(x, x+width, row, col)
	}
}
