package ada

import "testing"

func TestDrawRect(t *testing.T) {
	c := mustCanvas(t, 20, 20)
	DrawRect(2, 3, 10, 5, c, Green)

	for x := 2; x <= 12; x++ {
		if !isColor(c, x, 3, Green) || !isColor(c, x, 8, Green) {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 3; y <= 8; y++ {
		if !isColor(c, 2, y, Green) || !isColor(c, 12, y, Green) {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if isColor(c, 7, 5, Green) {
		t.Error("outline filled the interior")
	}
	if got, want := len(litPixels(c)), 2*11+2*4; got != want {
		t.Errorf("plotted %d pixels, want %d", got, want)
	}
}

func TestDrawRectFilled(t *testing.T) {
	c := mustCanvas(t, 20, 20)
	DrawRectFilled(2, 3, 10, 5, c, Green)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 2 && x <= 12 && y >= 3 && y <= 8
			if got := isColor(c, x, y, Green); got != inside {
				t.Fatalf("pixel (%d, %d) filled = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestDrawRectFilledNegativeSize(t *testing.T) {
	a := mustCanvas(t, 20, 20)
	b := mustCanvas(t, 20, 20)
	DrawRectFilled(12, 8, -10, -5, a, Red)
	DrawRectFilled(2, 3, 10, 5, b, Red)
	for p := range litPixels(b) {
		if !isColor(a, p.X, p.Y, Red) {
			t.Fatalf("pixel %v missing for negative size", p)
		}
	}
	if len(litPixels(a)) != len(litPixels(b)) {
		t.Error("negative size covers a different area")
	}
}

func TestDrawRectFilledClipped(t *testing.T) {
	c := mustCanvas(t, 10, 10)
	DrawRectFilled(-5, -5, 100, 100, c, Blue)
	if got := len(litPixels(c)); got != 100 {
		t.Errorf("plotted %d pixels, want 100", got)
	}
}

func TestRectangle2D(t *testing.T) {
	r := NewRectangle2D(1, 1, 4, 4)
	if r.IsFilled() {
		t.Error("NewRectangle2D reports filled")
	}
	f := r.AsFilled()
	if !f.IsFilled() || r.IsFilled() {
		t.Error("AsFilled must return a filled copy and leave the original")
	}

	c := mustCanvas(t, 8, 8)
	c.Draw(f, White)
	if !isColor(c, 3, 3, White) {
		t.Error("Draw of filled rectangle left the interior empty")
	}

	c.Clear(Transparent)
	c.Draw(r, White)
	if isColor(c, 3, 3, White) || !isColor(c, 1, 1, White) {
		t.Error("Draw of outlined rectangle drew the wrong pixels")
	}
}
