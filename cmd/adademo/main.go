// Command adademo opens a window and draws ada shapes into it every frame.
//
// The window is the host: it owns the pixel buffer, clears and redraws it
// through an ada.Canvas on each frame, and presents the bytes with ebiten.
// Press Escape to quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ada"
)

func main() {
	var (
		width   = flag.Int("width", 512, "window width")
		height  = flag.Int("height", 512, "window height")
		scene   = flag.String("scene", "filled", "scene to draw: "+strings.Join(sceneNames(), ", "))
		rgb     = flag.Bool("rgb", false, "render into a packed 3-byte RGB buffer")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ada.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	draw, ok := scenes[*scene]
	if !ok {
		log.Fatalf("unknown scene %q (want one of %s)", *scene, strings.Join(sceneNames(), ", "))
	}

	d, err := newDemo(*width, *height, *rgb, draw)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(fmt.Sprintf("ada %s - ESC to exit", *scene))
	// Scenes are static; 30 updates a second is plenty.
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(d); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// demo implements ebiten.Game on top of an ada.Canvas.
type demo struct {
	width, height int
	canvas        *ada.Canvas
	// frame receives the canvas when it is not already RGBA.
	frame *image.RGBA
	draw  func(*ada.Canvas)
}

func newDemo(width, height int, rgb bool, draw func(*ada.Canvas)) (*demo, error) {
	mode := ada.ColorModeRGBA
	if rgb {
		mode = ada.ColorModeRGB
	}
	buf := make([]byte, width*height*mode.BytesPerPixel())
	c, err := ada.NewCanvas(width, height, buf, ada.WithColorMode(mode))
	if err != nil {
		return nil, err
	}

	d := &demo{width: width, height: height, canvas: c, draw: draw}
	if rgb {
		d.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return d, nil
}

// Update implements ebiten.Game.
func (d *demo) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *demo) Draw(screen *ebiten.Image) {
	d.render()
	screen.WritePixels(d.pixels())
}

// Layout implements ebiten.Game.
func (d *demo) Layout(_, _ int) (int, int) {
	return d.width, d.height
}

// render draws one frame into the canvas.
func (d *demo) render() {
	d.canvas.Clear(ada.Black)
	d.draw(d.canvas)
}

// pixels returns the frame as 4-byte RGBA, converting RGB canvases.
func (d *demo) pixels() []byte {
	if d.frame == nil {
		return d.canvas.Buffer()[:d.width*d.height*4]
	}
	d.canvas.CopyTo(d.frame, image.Point{})
	return d.frame.Pix
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
