package easel

import (
	"math"

	"github.com/gogpu/gg"
)

// guidePoints computes the ephemeral preview geometry for a parametric shape
// being dragged from origin to cur. The returned points become the stroke's
// final point set when the drag ends; until then they are only rendered as a
// dashed guide and never enter the history.
//
// Conventions per kind:
//   - StrokeLine: a single point, the current pointer position.
//   - StrokeSquare: the four corners of the axis-aligned box spanned by
//     origin and cur, ending at the origin corner.
//   - StrokeTriangle: base on the origin row from origin to cur.x, apex at
//     the x midpoint on the cur row.
//   - StrokeHalfTriangle: right angle at origin, legs parallel to the axes.
//   - StrokeCircle: a single radius-pair point; the radius is the drag
//     distance, applied to both axes, centered at origin.
func guidePoints(kind StrokeType, origin, cur Point) []Point {
	switch kind {
	case StrokeLine:
		return []Point{cur}
	case StrokeSquare:
		return []Point{
			{X: cur.X, Y: origin.Y},
			{X: cur.X, Y: cur.Y},
			{X: origin.X, Y: cur.Y},
			{X: origin.X, Y: origin.Y},
		}
	case StrokeTriangle:
		return []Point{
			{X: cur.X, Y: origin.Y},
			{X: (origin.X + cur.X) / 2, Y: cur.Y},
			{X: origin.X, Y: origin.Y},
		}
	case StrokeHalfTriangle:
		return []Point{
			{X: cur.X, Y: origin.Y},
			{X: origin.X, Y: cur.Y},
			{X: origin.X, Y: origin.Y},
		}
	case StrokeCircle:
		r := math.Hypot(cur.X-origin.X, cur.Y-origin.Y)
		return []Point{{X: r, Y: r}}
	}
	return nil
}

// guideDash is the dash pattern used for shape previews.
var guideDash = []float64{6, 4}

// drawGuide renders the in-progress shape preview onto dc as a dashed
// outline in the stroke's color and width. Fill styling is ignored for the
// preview; the guide always shows the shape boundary.
func drawGuide(dc *gg.Context, s *Stroke, guide []Point) {
	if len(guide) == 0 {
		return
	}
	dc.SetHexColor(s.Color)
	dc.SetLineWidth(s.Width)
	cap, err := parseLineCap(s.Cap)
	if err == nil {
		dc.SetLineCap(cap)
	}
	join, err := parseLineJoin(s.Join)
	if err == nil {
		dc.SetLineJoin(join)
	}
	dc.SetDash(guideDash...)
	defer dc.ClearDash()

	switch s.Type {
	case StrokeCircle:
		dc.DrawEllipse(s.Origin.X, s.Origin.Y, guide[0].X, guide[0].Y)
	case StrokeLine:
		dc.DrawLine(s.Origin.X, s.Origin.Y, guide[0].X, guide[0].Y)
	default:
		dc.MoveTo(guide[0].X, guide[0].Y)
		for _, p := range guide[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
	if err := dc.Stroke(); err != nil {
		Logger().Warn("easel: guide stroke failed", "kind", s.Type, "err", err)
	}
}
