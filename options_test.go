package ada

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.colorMode != ColorModeRGBA {
		t.Errorf("default color mode = %v, want RGBA", o.colorMode)
	}
}

func TestWithColorMode(t *testing.T) {
	o := defaultOptions()
	WithColorMode(ColorModeRGB)(&o)
	if o.colorMode != ColorModeRGB {
		t.Errorf("color mode = %v, want RGB", o.colorMode)
	}

	c, err := NewCanvas(2, 2, make([]byte, 12), WithColorMode(ColorModeRGB))
	if err != nil {
		t.Fatalf("NewCanvas() = %v", err)
	}
	if c.BytesPerPixel() != 3 {
		t.Errorf("BytesPerPixel() = %d, want 3", c.BytesPerPixel())
	}
}

func TestLastOptionWins(t *testing.T) {
	c, err := NewCanvas(2, 2, make([]byte, 16),
		WithColorMode(ColorModeRGB), WithColorMode(ColorModeRGBA))
	if err != nil {
		t.Fatalf("NewCanvas() = %v", err)
	}
	if c.ColorMode() != ColorModeRGBA {
		t.Errorf("ColorMode() = %v, want RGBA", c.ColorMode())
	}
}
