package easel

import "github.com/gogpu/gg"

// redrawLocked rebuilds the ink layer by replaying the committed history in
// order, then serializes a snapshot when emit is set. It returns the data
// URL and whether one should be delivered. Callers hold c.mu and deliver
// the URL via notify after unlocking.
func (c *Canvas) redrawLocked(emit bool) (string, bool) {
	c.inkPix.Clear(gg.Transparent)
	for _, s := range c.history.items {
		c.replayStroke(&s)
	}
	if !emit {
		return "", false
	}
	url, err := c.snapshotLocked()
	if err != nil {
		Logger().Warn("easel: snapshot failed", "err", err)
		return "", false
	}
	return url, true
}

// composeLocked builds the display composite: background fill, background
// image, overlay images, ink, and (optionally) the in-progress guide.
func (c *Canvas) composeLocked(includeGuide bool) *gg.Context {
	dc := gg.NewContext(c.cfg.Width, c.cfg.Height)
	if c.cfg.BackgroundColor != "" {
		dc.ClearWithColor(gg.Hex(c.cfg.BackgroundColor))
	}
	if img, ok := c.assets.get(c.cfg.BackgroundImage).ready(); ok {
		dc.DrawImageEx(img, gg.DrawImageOptions{
			DstWidth:      float64(c.cfg.Width),
			DstHeight:     float64(c.cfg.Height),
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
		})
	}
	for i := range c.cfg.Overlays {
		if err := c.cfg.Overlays[i].draw(dc, c.assets, c.fonts); err != nil {
			Logger().Warn("easel: overlay draw failed", "index", i, "err", err)
		}
	}
	dc.DrawImageEx(gg.ImageBufFromImage(c.inkPix.ToImage()), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       1,
	})
	if includeGuide && c.drawing && c.cur != nil && len(c.guide) > 0 {
		drawGuide(dc, c.cur, c.guide)
	}
	return dc
}

// replayStroke renders one committed stroke onto the ink layer, honoring
// the per-stroke composite mode: eraser coverage is rasterized on a scratch
// surface and knocked out of the ink, everything else draws source-over.
func (c *Canvas) replayStroke(s *Stroke) {
	if s.Type == StrokeEraser {
		c.ensureScratch()
		c.scratchPix.Clear(gg.Transparent)
		drawStrokePath(c.scratch, s)
		eraseOut(c.inkPix, c.scratchPix)
		return
	}
	drawStrokePath(c.ink, s)
}

// paintSegment composites a single freehand segment as the pointer moves,
// so dash and eraser strokes are visually committed point by point.
func (c *Canvas) paintSegment(s *Stroke, from, to Point) {
	if s.Type == StrokeEraser {
		c.ensureScratch()
		c.scratchPix.Clear(gg.Transparent)
		drawSegmentPath(c.scratch, s, from, to)
		eraseOut(c.inkPix, c.scratchPix)
		return
	}
	drawSegmentPath(c.ink, s, from, to)
}

func (c *Canvas) ensureScratch() {
	if c.scratch != nil {
		return
	}
	c.scratchPix = gg.NewPixmap(c.cfg.Width, c.cfg.Height)
	c.scratch = gg.NewContext(c.cfg.Width, c.cfg.Height, gg.WithPixmap(c.scratchPix))
}

// applyStyle configures dc with the stroke's recorded style. Seeded stroke
// lists may carry cap/join names this canvas never validated; those fall
// back to the defaults.
func applyStyle(dc *gg.Context, s *Stroke) {
	dc.SetHexColor(s.Color)
	dc.SetLineWidth(s.Width)
	cap := gg.LineCapRound
	if parsed, err := parseLineCap(s.Cap); err == nil {
		cap = parsed
	}
	dc.SetLineCap(cap)
	join := gg.LineJoinMiter
	if parsed, err := parseLineJoin(s.Join); err == nil {
		join = parsed
	}
	dc.SetLineJoin(join)
}

// drawSegmentPath strokes one freehand segment.
func drawSegmentPath(dc *gg.Context, s *Stroke, from, to Point) {
	applyStyle(dc, s)
	dc.DrawLine(from.X, from.Y, to.X, to.Y)
	if err := dc.Stroke(); err != nil {
		Logger().Warn("easel: segment stroke failed", "kind", s.Type, "err", err)
	}
}

// drawStrokePath renders a full stroke path onto dc.
func drawStrokePath(dc *gg.Context, s *Stroke) {
	applyStyle(dc, s)

	switch s.Type {
	case StrokeDash, StrokeEraser:
		if len(s.Points) == 0 {
			return
		}
		dc.MoveTo(s.Origin.X, s.Origin.Y)
		for _, p := range s.Points {
			dc.LineTo(p.X, p.Y)
		}
	case StrokeLine:
		if len(s.Points) == 0 {
			return
		}
		dc.DrawLine(s.Origin.X, s.Origin.Y, s.Points[0].X, s.Points[0].Y)
	case StrokeCircle:
		// A zero-drag circle records no radius pair; skip it.
		if len(s.Points) == 0 {
			return
		}
		dc.DrawEllipse(s.Origin.X, s.Origin.Y, s.Points[0].X, s.Points[0].Y)
	case StrokeSquare, StrokeTriangle, StrokeHalfTriangle:
		if len(s.Points) == 0 {
			return
		}
		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	default:
		Logger().Debug("easel: skipping stroke of unknown kind", "kind", s.Type)
		return
	}

	var err error
	if s.Fill && s.Type.fillable() {
		err = dc.Fill()
	} else {
		err = dc.Stroke()
	}
	if err != nil {
		Logger().Warn("easel: stroke replay failed", "kind", s.Type, "err", err)
	}
}
