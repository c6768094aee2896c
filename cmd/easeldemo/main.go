// Command easeldemo exercises the easel canvas: a scripted editing session
// with shapes, freehand ink, erasing, undo/redo, and a text watermark,
// written out as a PNG.
package main

import (
	"encoding/base64"
	"flag"
	"log"
	"math"
	"os"
	"strings"

	"github.com/gogpu/easel"
)

func main() {
	var (
		width  = flag.Int("width", 640, "canvas width")
		height = flag.Int("height", 480, "canvas height")
		output = flag.String("output", "easel.png", "output file")
		font   = flag.String("font", "", "TTF font for the watermark (optional)")
	)
	flag.Parse()

	opts := []easel.Option{
		easel.WithColor("#1A73E8"),
		easel.WithLineWidth(6),
		easel.WithBackgroundColor("#FAFAFA"),
	}
	if *font != "" {
		opts = append(opts, easel.WithWatermark(&easel.Watermark{
			Type:     easel.WatermarkText,
			Text:     "drawn with easel",
			X:        20,
			Y:        float64(*height) - 20,
			FontPath: *font,
			FontSize: 18,
			Color:    "#999999",
		}))
	}

	c, err := easel.New(*width, *height, opts...)
	if err != nil {
		log.Fatalf("easel: %v", err)
	}

	// Freehand squiggle.
	c.Begin(easel.Pt(40, 60))
	for x := 40.0; x <= 280; x += 8 {
		y := 60 + 30*math.Sin(x/40)
		c.Continue(easel.Pt(x, y))
	}
	c.End()

	// A filled rectangle and a circle.
	if err := c.SetTool(easel.StrokeSquare); err != nil {
		log.Fatal(err)
	}
	c.SetFillShape(true)
	c.SetColor("#DB4437")
	drag(c, easel.Pt(320, 40), easel.Pt(470, 140))

	if err := c.SetTool(easel.StrokeCircle); err != nil {
		log.Fatal(err)
	}
	c.SetFillShape(false)
	c.SetColor("#0F9D58")
	drag(c, easel.Pt(160, 280), easel.Pt(230, 280))

	// Erase a bite out of the squiggle, then change our mind.
	c.SetEraser(true)
	drag(c, easel.Pt(120, 40), easel.Pt(180, 90))
	c.SetEraser(false)
	c.Undo()
	c.Redo()

	url, err := c.Snapshot()
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	if err := writeDataURL(url, *output); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("demo saved to %s (%d strokes)", *output, len(c.Strokes()))
}

func drag(c *easel.Canvas, from, to easel.Point) {
	c.Begin(from)
	c.Continue(to)
	c.End()
}

func writeDataURL(url, path string) error {
	_, payload, _ := strings.Cut(url, ",")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
