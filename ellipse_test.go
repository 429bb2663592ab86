package ada

import (
	"image"
	"testing"
)

func TestDrawCircleEightfoldSymmetry(t *testing.T) {
	for _, r := range []int{0, 1, 2, 5, 17, 40} {
		c := mustCanvas(t, 101, 101)
		DrawCircle(50, 50, r, c, White)

		lit := litPixels(c)
		if len(lit) == 0 {
			t.Fatalf("r=%d: nothing plotted", r)
		}
		for p := range lit {
			x, y := p.X-50, p.Y-50
			for _, q := range []image.Point{
				{x, y}, {-x, y}, {x, -y}, {-x, -y},
				{y, x}, {-y, x}, {y, -x}, {-y, -x},
			} {
				if !lit[image.Pt(50+q.X, 50+q.Y)] {
					t.Errorf("r=%d: offset (%d, %d) plotted but reflection %v missing", r, x, y, q)
				}
			}
		}
	}
}

func TestDrawCircleExtremes(t *testing.T) {
	c := mustCanvas(t, 64, 64)
	DrawCircle(30, 30, 20, c, Red)
	for _, p := range []image.Point{{50, 30}, {10, 30}, {30, 50}, {30, 10}} {
		if !isColor(c, p.X, p.Y, Red) {
			t.Errorf("extreme point %v not plotted", p)
		}
	}
	if isColor(c, 30, 30, Red) {
		t.Error("outline plotted the center")
	}
}

func TestDrawEllipseExtremesAndSymmetry(t *testing.T) {
	tests := []struct{ rx, ry int }{
		{10, 5}, {5, 10}, {30, 12}, {3, 1}, {1, 3}, {0, 4}, {4, 0},
	}
	for _, tt := range tests {
		c := mustCanvas(t, 81, 81)
		DrawEllipse(40, 40, tt.rx, tt.ry, c, White)

		for _, p := range []image.Point{
			{40 + tt.rx, 40}, {40 - tt.rx, 40}, {40, 40 + tt.ry}, {40, 40 - tt.ry},
		} {
			if !isColor(c, p.X, p.Y, White) {
				t.Errorf("rx=%d ry=%d: extreme %v not plotted", tt.rx, tt.ry, p)
			}
		}

		lit := litPixels(c)
		for p := range lit {
			x, y := p.X-40, p.Y-40
			if x > tt.rx || -x > tt.rx || y > tt.ry || -y > tt.ry {
				t.Errorf("rx=%d ry=%d: %v outside the bounding box", tt.rx, tt.ry, p)
			}
			for _, q := range []image.Point{{-x, y}, {x, -y}, {-x, -y}} {
				if !lit[image.Pt(40+q.X, 40+q.Y)] {
					t.Errorf("rx=%d ry=%d: reflection %v of %v missing", tt.rx, tt.ry, q, p)
				}
			}
		}
	}
}

func TestDrawEllipseConnected(t *testing.T) {
	c := mustCanvas(t, 221, 121)
	DrawEllipse(110, 60, 100, 50, c, White)

	lit := litPixels(c)
	for p := range lit {
		found := false
		for dy := -1; dy <= 1 && !found; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && lit[image.Pt(p.X+dx, p.Y+dy)] {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("pixel %v has no neighbour", p)
		}
	}
}

func TestDrawEllipseFilledSolid(t *testing.T) {
	tests := []struct{ rx, ry int }{{10, 5}, {5, 10}, {20, 20}, {1, 7}, {0, 3}}
	for _, tt := range tests {
		stroke := mustCanvas(t, 61, 61)
		fill := mustCanvas(t, 61, 61)
		DrawEllipse(30, 30, tt.rx, tt.ry, stroke, White)
		DrawEllipseFilled(30, 30, tt.rx, tt.ry, fill, White)

		filled := litPixels(fill)
		for p := range litPixels(stroke) {
			if !filled[p] {
				t.Errorf("rx=%d ry=%d: outline pixel %v not filled", tt.rx, tt.ry, p)
			}
		}

		// Every row must be one run of pixels centered on the ellipse.
		for y := 30 - tt.ry; y <= 30+tt.ry; y++ {
			left, right := -1, -1
			for x := 0; x < 61; x++ {
				if filled[image.Pt(x, y)] {
					if left < 0 {
						left = x
					}
					right = x
				}
			}
			if left < 0 {
				t.Errorf("rx=%d ry=%d: row %d empty", tt.rx, tt.ry, y)
				continue
			}
			if 30-left != right-30 {
				t.Errorf("rx=%d ry=%d: row %d not centered: %d..%d", tt.rx, tt.ry, y, left, right)
			}
			for x := left; x <= right; x++ {
				if !filled[image.Pt(x, y)] {
					t.Errorf("rx=%d ry=%d: hole at (%d, %d)", tt.rx, tt.ry, x, y)
				}
			}
		}
	}
}

func TestDrawCircleFilledInsideRadius(t *testing.T) {
	c := mustCanvas(t, 50, 50)
	DrawCircleFilled(25, 25, 12, c, Blue)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			dx, dy := x-25, y-25
			d2 := dx*dx + dy*dy
			got := isColor(c, x, y, Blue)
			if d2 <= 11*11 && !got {
				t.Errorf("interior pixel (%d, %d) not filled", x, y)
			}
			if d2 > 13*13 && got {
				t.Errorf("pixel (%d, %d) filled outside the circle", x, y)
			}
		}
	}
}

func TestDrawEllipseNegativeRadius(t *testing.T) {
	c := mustCanvas(t, 20, 20)
	DrawEllipse(10, 10, -3, 4, c, White)
	DrawEllipseFilled(10, 10, 3, -4, c, White)
	DrawCircle(10, 10, -2, c, White)
	DrawCircleFilled(10, 10, -2, c, White)
	if n := len(litPixels(c)); n != 0 {
		t.Errorf("negative radius plotted %d pixels", n)
	}
}

func TestDrawEllipsePartiallyOffCanvas(t *testing.T) {
	c := mustCanvas(t, 20, 20)
	DrawEllipseFilled(0, 0, 15, 8, c, White)
	DrawCircle(19, 19, 30, c, White)
	if !isColor(c, 0, 0, White) || !isColor(c, 15, 0, White) {
		t.Error("visible part of the clipped ellipse missing")
	}
}

func TestEllipse2D(t *testing.T) {
	e := NewEllipse2D(10, 10, 6, 3)
	if e.IsFilled() {
		t.Error("NewEllipse2D reports filled")
	}
	circle := NewCircle2D(10, 10, 4)
	if circle.RadiusX != 4 || circle.RadiusY != 4 {
		t.Errorf("NewCircle2D() = %+v", circle)
	}

	c := mustCanvas(t, 21, 21)
	c.Draw(e, White)
	if isColor(c, 10, 10, White) {
		t.Error("outlined ellipse filled the center")
	}
	c.Draw(e.AsFilled(), White)
	if !isColor(c, 10, 10, White) {
		t.Error("filled ellipse left the center empty")
	}
}
