package easel

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// Canvas is a stateful stroke editor over a gg surface.
//
// Pointer input arrives through Begin, Continue and End in canvas-local
// coordinates; translating window or touch events into local space is the
// embedding layer's job (use the first active touch point and subtract the
// surface's on-screen offset). Committed strokes live in an undo/redo
// double stack and are replayed in order on every full redraw.
//
// Canvas is safe for concurrent use; in practice all mutation arrives from
// a single event loop, and the lock exists so asynchronous asset loads can
// recomposite safely.
type Canvas struct {
	mu  sync.Mutex
	cfg Config

	history strokeStack
	trash   strokeStack

	// In-progress state. cur is non-nil only between Begin and End.
	cur     *Stroke
	guide   []Point
	drawing bool

	// ink holds the replayed history. Freehand strokes composite into it
	// incrementally as the pointer moves; everything else lands on End.
	inkPix *gg.Pixmap
	ink    *gg.Context

	// scratch is reused to rasterize eraser coverage before the
	// destination-out pass against the ink layer.
	scratchPix *gg.Pixmap
	scratch    *gg.Context

	assets *assetLoader
	fonts  *fontCache

	onChange func(dataURL string)
	seed     []Stroke
}

// New creates a canvas with the given display dimensions.
// Configuration errors (unsupported tool, cap, join, or format names) are
// reported here, not during drawing.
func New(width, height int, opts ...Option) (*Canvas, error) {
	c := &Canvas{
		cfg:    defaultConfig(width, height),
		assets: newAssetLoader(),
		fonts:  newFontCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	c.inkPix = gg.NewPixmap(width, height)
	c.ink = gg.NewContext(width, height, gg.WithPixmap(c.inkPix))
	c.assets.onLoad = c.assetLoaded

	for _, s := range c.seed {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.Points = clonePoints(s.Points)
		c.history.push(s)
	}
	c.seed = nil

	c.mu.Lock()
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
	return c, nil
}

// Width returns the display width.
func (c *Canvas) Width() int { return c.cfg.Width }

// Height returns the display height.
func (c *Canvas) Height() int { return c.cfg.Height }

// Begin starts a new stroke at p. A no-op while locked.
//
// The stroke kind is the active tool, or StrokeEraser when the eraser
// toggle is set; erasing records the background color as the stroke color.
// Any stale guide from an interrupted drag is discarded.
func (c *Canvas) Begin(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg.Locked {
		return
	}
	kind := c.cfg.Tool
	color := c.cfg.Color
	if c.cfg.Eraser {
		kind = StrokeEraser
		color = c.cfg.BackgroundColor
	}
	c.cur = &Stroke{
		Type:   kind,
		Origin: p,
		Color:  color,
		Width:  c.cfg.LineWidth,
		Fill:   c.cfg.FillShape && kind.fillable(),
		Cap:    c.cfg.LineCap,
		Join:   c.cfg.LineJoin,
	}
	c.guide = nil
	c.drawing = true
}

// Continue extends the in-progress stroke to p. A no-op when not drawing.
//
// Freehand kinds (dash, eraser) append the point and composite the new
// segment immediately; parametric shapes recompute the dashed guide
// without touching the history.
func (c *Canvas) Continue(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.drawing || c.cur == nil {
		return
	}
	if c.cur.Type.isFreehand() {
		prev := c.cur.Origin
		if n := len(c.cur.Points); n > 0 {
			prev = c.cur.Points[n-1]
		}
		c.cur.Points = append(c.cur.Points, p)
		c.paintSegment(c.cur, prev, p)
		return
	}
	c.guide = guidePoints(c.cur.Type, c.cur.Origin, p)
}

// End finalizes the in-progress stroke: a guide's final point set becomes
// the stroke geometry, the stroke is committed to the history, the redo
// buffer is discarded, and a full redraw emits a fresh snapshot.
// A no-op when not drawing.
func (c *Canvas) End() {
	c.mu.Lock()
	if !c.drawing || c.cur == nil {
		c.mu.Unlock()
		return
	}
	c.drawing = false
	s := *c.cur
	if c.guide != nil {
		s.Points = c.guide
	}
	s.Points = clonePoints(s.Points)
	s.ID = uuid.NewString()
	c.history.push(s)
	c.trash.clear()
	c.cur, c.guide = nil, nil
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// Reset clears the history, the redo buffer, and any in-progress state.
// A no-op while locked.
func (c *Canvas) Reset() {
	c.mu.Lock()
	if c.cfg.Locked {
		c.mu.Unlock()
		return
	}
	c.history.clear()
	c.trash.clear()
	c.cur, c.guide = nil, nil
	c.drawing = false
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// Undo moves the most recent stroke to the redo buffer.
// A no-op while locked or when the history is empty.
func (c *Canvas) Undo() {
	c.mu.Lock()
	if c.cfg.Locked {
		c.mu.Unlock()
		return
	}
	s, ok := c.history.pop()
	if !ok {
		c.mu.Unlock()
		return
	}
	c.trash.push(s)
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// Redo restores the most recently undone stroke.
// A no-op while locked or when the redo buffer is empty.
func (c *Canvas) Redo() {
	c.mu.Lock()
	if c.cfg.Locked {
		c.mu.Unlock()
		return
	}
	s, ok := c.trash.pop()
	if !ok {
		c.mu.Unlock()
		return
	}
	c.history.push(s)
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// IsEmpty reports whether the history holds no strokes.
func (c *Canvas) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.len() == 0
}

// Strokes returns a copy of the committed history in commit order.
func (c *Canvas) Strokes() []Stroke {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.snapshot()
}

// Replay replaces the history with the given stroke list and redraws.
// This is how a hidden mask canvas mirrors a visible draw canvas.
// A no-op while locked.
func (c *Canvas) Replay(strokes []Stroke) {
	c.mu.Lock()
	if c.cfg.Locked {
		c.mu.Unlock()
		return
	}
	c.history.clear()
	c.trash.clear()
	c.cur, c.guide = nil, nil
	c.drawing = false
	for _, s := range strokes {
		s.Points = clonePoints(s.Points)
		c.history.push(s)
	}
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// Redraw recomposites the surface from scratch. When emit is set, a
// snapshot is serialized and delivered to the change callback.
// Redraw works regardless of the lock flag.
func (c *Canvas) Redraw(emit bool) {
	c.mu.Lock()
	url, ok := c.redrawLocked(emit)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// Image returns the composited display surface, including the dashed guide
// of an in-progress shape drag.
func (c *Canvas) Image() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composeLocked(true).Image()
}

// SetTool selects the active stroke kind.
func (c *Canvas) SetTool(t StrokeType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg.Tool = t
	c.mu.Unlock()
	return nil
}

// SetColor sets the stroke color for subsequent strokes.
func (c *Canvas) SetColor(hex string) {
	c.mu.Lock()
	c.cfg.Color = hex
	c.mu.Unlock()
}

// SetLineWidth sets the stroke width for subsequent strokes.
func (c *Canvas) SetLineWidth(w float64) {
	c.mu.Lock()
	c.cfg.LineWidth = w
	c.mu.Unlock()
}

// SetLineCap sets the line cap style for subsequent strokes.
func (c *Canvas) SetLineCap(cap string) error {
	if _, err := parseLineCap(cap); err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg.LineCap = cap
	c.mu.Unlock()
	return nil
}

// SetLineJoin sets the line join style for subsequent strokes.
func (c *Canvas) SetLineJoin(join string) error {
	if _, err := parseLineJoin(join); err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg.LineJoin = join
	c.mu.Unlock()
	return nil
}

// SetEraser toggles eraser mode for subsequent strokes.
func (c *Canvas) SetEraser(on bool) {
	c.mu.Lock()
	c.cfg.Eraser = on
	c.mu.Unlock()
}

// SetFillShape toggles filled rendering for subsequent shape strokes.
func (c *Canvas) SetFillShape(on bool) {
	c.mu.Lock()
	c.cfg.FillShape = on
	c.mu.Unlock()
}

// SetLocked toggles the lock flag.
func (c *Canvas) SetLocked(on bool) {
	c.mu.Lock()
	c.cfg.Locked = on
	c.mu.Unlock()
}

// Locked reports the lock flag.
func (c *Canvas) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Locked
}

// SetBackgroundColor changes the background fill and redraws.
func (c *Canvas) SetBackgroundColor(hex string) {
	c.mu.Lock()
	c.cfg.BackgroundColor = hex
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// SetBackgroundImage switches the background image source. The previously
// cached image for the old source is invalidated, forcing a reload if the
// old source is ever used again; the new source starts loading on the next
// redraw, which happens immediately.
func (c *Canvas) SetBackgroundImage(src string) {
	c.mu.Lock()
	if old := c.cfg.BackgroundImage; old != "" && old != src {
		c.assets.invalidate(old)
	}
	c.cfg.BackgroundImage = src
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

// SetWatermark replaces the snapshot watermark.
func (c *Canvas) SetWatermark(w *Watermark) error {
	if w != nil {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	c.mu.Lock()
	c.cfg.Watermark = w
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
	return nil
}

// SetFormat selects the snapshot encoding.
func (c *Canvas) SetFormat(f SaveFormat) error {
	if err := f.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg.Format = f
	c.mu.Unlock()
	return nil
}

// SetOnChange replaces the change callback.
func (c *Canvas) SetOnChange(fn func(dataURL string)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// notify delivers a snapshot outside the canvas lock, so the callback may
// call back into the canvas.
func (c *Canvas) notify(url string) {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(url)
	}
}

// assetLoaded fires from a loader goroutine once an image source resolves.
// If the source is still referenced by the current configuration the canvas
// recomposites, otherwise the load was stale and is ignored.
func (c *Canvas) assetLoaded(src string) {
	c.mu.Lock()
	if !c.referencesLocked(src) {
		c.mu.Unlock()
		return
	}
	url, ok := c.redrawLocked(true)
	c.mu.Unlock()
	if ok {
		c.notify(url)
	}
}

func (c *Canvas) referencesLocked(src string) bool {
	if src == c.cfg.BackgroundImage {
		return true
	}
	if w := c.cfg.Watermark; w != nil && w.Source == src {
		return true
	}
	for i := range c.cfg.Overlays {
		if c.cfg.Overlays[i].Source == src {
			return true
		}
	}
	return false
}
