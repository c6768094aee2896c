// Package easel provides a stroke-based drawing canvas built on gg.
//
// # Overview
//
// easel is the interactive editing layer missing from an immediate-mode
// drawing context: it records pointer input as strokes, keeps an undo/redo
// history, previews in-progress shapes as dashed guides, and replays the
// committed history onto a gg surface. It was written for freehand mask
// editors (inpainting masks for image-generation backends) but is a general
// raster/vector hybrid sketch surface.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	c, err := easel.New(512, 512,
//	    easel.WithColor("#DB4437"),
//	    easel.WithLineWidth(4),
//	    easel.WithTool(easel.StrokeDash),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pointer events, in canvas-local coordinates.
//	c.Begin(easel.Pt(10, 10))
//	c.Continue(easel.Pt(40, 60))
//	c.End()
//
//	img := c.Image()          // composited display surface
//	url, _ := c.Snapshot()    // data URL in the configured format
//
// A snapshot data URL is also delivered through the OnChange callback after
// every redraw, which is how a host embedding the canvas observes edits.
//
// # Model
//
// A committed drawing action is a Stroke: a kind (freehand dash, line,
// rectangle, circle, triangle, right triangle, or eraser), an origin, the
// final point set, and its style. History is an append-only stack truncated
// by Undo; undone strokes move to a redo stack that is discarded as soon as
// a new stroke commits. While a parametric shape is being dragged the canvas
// renders an ephemeral dashed guide that never enters the history.
//
// Eraser strokes replay with destination-out compositing against the ink
// layer, so erasing reveals the background rather than painting over it.
//
// # Rendering
//
// All rasterization is done by github.com/gogpu/gg through its software
// pipeline. easel owns three surfaces: a background layer (fill color,
// optional background image, overlay images), an ink layer holding the
// replayed history, and a per-snapshot export surface sized independently of
// the display surface. Background and watermark images load asynchronously
// and are cached per source string; a redraw before an asset resolves simply
// omits that layer.
//
// The inpaint subpackage wires two canvases together, a visible draw surface
// and a hidden mask surface replaying the same strokes, and builds the
// image/mask request pair for a generation backend.
package easel
