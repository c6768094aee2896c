package easel

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Point is a position in canvas pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// StrokeType identifies the drawing tool that produced a stroke.
// The values are wire-stable: stroke lists serialize with these names.
type StrokeType string

// Stroke kinds.
const (
	// StrokeDash is a freehand stroke sampled point by point.
	StrokeDash StrokeType = "dash"
	// StrokeLine is a straight line from origin to the release point.
	StrokeLine StrokeType = "line"
	// StrokeSquare is an axis-aligned rectangle spanned by the drag.
	StrokeSquare StrokeType = "square"
	// StrokeCircle is a circle centered at the origin whose radius is the
	// drag distance.
	StrokeCircle StrokeType = "circle"
	// StrokeTriangle is an isosceles triangle with its base on the origin
	// row and the apex centered between origin and release x.
	StrokeTriangle StrokeType = "triangle"
	// StrokeHalfTriangle is a right triangle with the right angle at the
	// origin and legs parallel to the axes.
	StrokeHalfTriangle StrokeType = "half_triangle"
	// StrokeEraser is a freehand stroke that removes ink instead of adding
	// it. It is never selected directly as a tool; the eraser toggle
	// rewrites the active kind at Begin.
	StrokeEraser StrokeType = "eraser"
)

// strokeTypes is the allowed set for tool configuration, in display order.
var strokeTypes = []StrokeType{
	StrokeDash, StrokeLine, StrokeSquare, StrokeCircle,
	StrokeTriangle, StrokeHalfTriangle,
}

// Validate reports whether t is a selectable tool kind.
// StrokeEraser is rejected here: erasing is a toggle, not a tool.
func (t StrokeType) Validate() error {
	for _, k := range strokeTypes {
		if t == k {
			return nil
		}
	}
	return fmt.Errorf("easel: invalid strokeType %q (allowed: %v)", string(t), strokeTypes)
}

// isFreehand reports whether the kind composites point by point as the
// pointer moves, instead of through a parametric guide.
func (t StrokeType) isFreehand() bool {
	return t == StrokeDash || t == StrokeEraser
}

// fillable reports whether the kind may be drawn filled.
// Freehand, line, and eraser strokes never fill.
func (t StrokeType) fillable() bool {
	switch t {
	case StrokeDash, StrokeLine, StrokeEraser:
		return false
	}
	return true
}

// Line cap and join names accepted in configuration. They mirror the
// HTML canvas values and map onto gg's stroke styles.
const (
	CapButt   = "butt"
	CapRound  = "round"
	CapSquare = "square"

	JoinMiter = "miter"
	JoinRound = "round"
	JoinBevel = "bevel"
)

func parseLineCap(name string) (gg.LineCap, error) {
	switch name {
	case CapButt:
		return gg.LineCapButt, nil
	case CapRound:
		return gg.LineCapRound, nil
	case CapSquare:
		return gg.LineCapSquare, nil
	}
	return 0, fmt.Errorf("easel: invalid lineCap %q (allowed: %q, %q, %q)",
		name, CapButt, CapRound, CapSquare)
}

func parseLineJoin(name string) (gg.LineJoin, error) {
	switch name {
	case JoinMiter:
		return gg.LineJoinMiter, nil
	case JoinRound:
		return gg.LineJoinRound, nil
	case JoinBevel:
		return gg.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("easel: invalid lineJoin %q (allowed: %q, %q, %q)",
		name, JoinMiter, JoinRound, JoinBevel)
}

// Stroke is one committed drawing action. Strokes are immutable once
// appended to the history; the canvas replays them in commit order to
// reconstruct the surface.
type Stroke struct {
	// ID is assigned at commit time and is unique per stroke.
	ID string `json:"id,omitempty"`

	// Type is the stroke kind.
	Type StrokeType `json:"type"`

	// Origin is where the pointer went down.
	Origin Point `json:"from"`

	// Points is the final path. For freehand kinds it holds every sampled
	// pointer position; for parametric shapes it holds the computed
	// vertices (for circles, a single radius-pair point).
	Points []Point `json:"coordinates"`

	// Color is the stroke or fill color as a hex string.
	Color string `json:"color"`

	// Width is the stroke width in pixels.
	Width float64 `json:"width"`

	// Fill selects filled rendering instead of outlined. Always false for
	// freehand, line, and eraser kinds.
	Fill bool `json:"fill"`

	// Cap and Join are the line ending and joint styles.
	Cap  string `json:"lineCap"`
	Join string `json:"lineJoin"`
}

// clonePoints copies a point slice so history entries never alias
// caller-owned storage.
func clonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
