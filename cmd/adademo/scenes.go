package main

import (
	"image"

	"github.com/gogpu/ada"
)

var scenes = map[string]func(*ada.Canvas){
	"line":    drawLines,
	"rect":    drawRectangle,
	"circle":  drawCircle,
	"hollow":  drawHollow,
	"filled":  drawFilled,
	"bezier":  drawBezier,
	"polygon": drawPolygon,
}

func drawLines(c *ada.Canvas) {
	w, h := c.Width()-1, c.Height()-1
	c.Draw(ada.NewLine2D(0, 0, w, h), ada.White)
	c.Draw(ada.NewLine2D(w, 0, 0, h), ada.White)
	c.Draw(ada.NewLine2D(w/2, 0, w/2, h), ada.Red)
	c.Draw(ada.NewLine2D(0, h/2, w, h/2), ada.Green)
}

func drawRectangle(c *ada.Canvas) {
	c.Draw(ada.NewRectangle2D(50, 100, 100, 150), ada.White)
}

func drawCircle(c *ada.Canvas) {
	c.Draw(ada.NewCircle2D(250, 250, 150), ada.White)
}

func drawHollow(c *ada.Canvas) {
	c.Draw(ada.NewRectangle2D(50, 100, 100, 150), ada.Red)
	c.Draw(ada.NewCircle2D(350, 200, 100), ada.Blue)
	c.Draw(ada.NewEllipse2D(150, 400, 100, 50), ada.Green)
}

func drawFilled(c *ada.Canvas) {
	c.Draw(ada.NewRectangle2D(50, 100, 100, 150).AsFilled(), ada.Red)
	c.Draw(ada.NewCircle2D(350, 200, 100).AsFilled(), ada.Blue)
	c.Draw(ada.NewEllipse2D(150, 400, 100, 50).AsFilled(), ada.Green)
}

func drawBezier(c *ada.Canvas) {
	c.Draw(ada.NewQuadraticBezier2D(image.Pt(10, 500), image.Pt(500, 10), image.Pt(40, 40)), ada.White)
	orange, _ := ada.Named("orange")
	c.Draw(ada.NewCubicBezier2D(image.Pt(110, 150), image.Pt(210, 30), image.Pt(25, 190), image.Pt(210, 250)), orange)
}

func drawPolygon(c *ada.Canvas) {
	xs := []int{127, 243, 62, 110, 93, 193, 135, 70, 258, 248}
	ys := []int{320, 15, 162, 54, 311, 314, 290, 10, 163, 155}
	c.Draw(ada.NewPolygon2D(xs, ys), ada.White)
	for i := range xs {
		c.Draw(ada.NewCircle2D(xs[i], ys[i], 2).AsFilled(), ada.Red)
	}
}
