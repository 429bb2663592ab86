package ada

// Shape is anything a Canvas can draw.
//
// Shapes are immutable values holding only their geometry. They never keep
// a canvas; Canvas.Draw passes one in and picks Stroke or Fill from IsFilled.
type Shape interface {
	// Stroke draws the outline of the shape.
	Stroke(c *Canvas, col Color)
	// Fill draws the outline and interior of the shape.
	Fill(c *Canvas, col Color)
	// IsFilled reports whether Canvas.Draw should call Fill.
	IsFilled() bool
}

// Compile-time interface checks.
var (
	_ Shape = Line2D{}
	_ Shape = Rectangle2D{}
	_ Shape = Ellipse2D{}
	_ Shape = Polygon2D{}
	_ Shape = QuadraticBezier2D{}
	_ Shape = CubicBezier2D{}
)
