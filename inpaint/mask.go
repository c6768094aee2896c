// Package inpaint wires drawing canvases to a diffusion generation backend.
//
// The inpainting flow runs two easel canvases: the visible draw surface the
// user paints on, and a hidden mask surface that replays the same strokes in
// white over black. BuildMask produces the mask data URL; Client submits the
// image/mask pair as a generation request and can subscribe to job progress
// notifications over a websocket.
package inpaint

import (
	"fmt"

	"github.com/gogpu/easel"
)

// Mask styling: white ink marks the region to regenerate, black is kept.
const (
	maskInk        = "#FFFFFF"
	maskBackground = "#000000"
)

// NewMaskCanvas creates the hidden mask surface. It shares nothing with the
// draw canvas; the caller mirrors strokes into it with Replay or BuildMask.
func NewMaskCanvas(width, height int) (*easel.Canvas, error) {
	return easel.New(width, height,
		easel.WithBackgroundColor(maskBackground),
		easel.WithColor(maskInk),
	)
}

// MaskStrokes recolors a recorded stroke list for mask replay: every
// non-eraser stroke becomes white ink. Eraser strokes keep erasing, so
// erased regions drop out of the mask exactly as they dropped out of the
// drawing.
func MaskStrokes(strokes []easel.Stroke) []easel.Stroke {
	out := make([]easel.Stroke, len(strokes))
	for i, s := range strokes {
		if s.Type != easel.StrokeEraser {
			s.Color = maskInk
		}
		out[i] = s
	}
	return out
}

// BuildMask replays a draw canvas's stroke list onto a fresh mask surface
// and returns the mask as a PNG data URL sized width x height.
func BuildMask(strokes []easel.Stroke, width, height int) (string, error) {
	mc, err := NewMaskCanvas(width, height)
	if err != nil {
		return "", fmt.Errorf("inpaint: mask canvas: %w", err)
	}
	mc.Replay(MaskStrokes(strokes))
	return mc.Snapshot()
}
