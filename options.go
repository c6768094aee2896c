package easel

import (
	"fmt"
	"net/http"
)

// Config holds the full canvas configuration. The zero value is not usable;
// New fills in defaults before applying options.
type Config struct {
	// Width and Height are the display surface dimensions in pixels.
	Width, Height int

	// OutputWidth and OutputHeight size the export surface. Zero means
	// "same as display", which is the default. Setting them enables
	// snapshots at a different resolution than shown.
	OutputWidth, OutputHeight int

	// Color is the stroke/fill color for new strokes.
	Color string

	// LineWidth is the stroke width for new strokes.
	LineWidth float64

	// LineCap and LineJoin are the line ending and joint styles for new
	// strokes ("butt"/"round"/"square", "miter"/"round"/"bevel").
	LineCap  string
	LineJoin string

	// Tool is the active stroke kind for new strokes.
	Tool StrokeType

	// Eraser, when set, rewrites the kind of every new stroke to
	// StrokeEraser regardless of Tool.
	Eraser bool

	// FillShape draws parametric shapes filled instead of outlined.
	// Ignored for kinds that never fill.
	FillShape bool

	// Locked disables Begin, Reset, Undo and Redo. Redraw and snapshot
	// export keep working while locked.
	Locked bool

	// BackgroundColor fills the surface before anything else is drawn.
	BackgroundColor string

	// BackgroundImage is an optional image source (file path, http(s) URL,
	// or data URL) drawn scaled over the background fill. It loads
	// asynchronously and is cached per source.
	BackgroundImage string

	// Watermark, when set, is composited onto every exported snapshot.
	// It does not appear on the display surface.
	Watermark *Watermark

	// Overlays are always-rendered watermark descriptors composited onto
	// the display surface above the background, below the ink.
	Overlays []Watermark

	// Format selects the snapshot encoding.
	Format SaveFormat
}

func defaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		Color:           "#000000",
		LineWidth:       5,
		LineCap:         CapRound,
		LineJoin:        JoinMiter,
		Tool:            StrokeDash,
		BackgroundColor: "#FFFFFF",
		Format:          FormatPNG,
	}
}

// validate rejects unsupported enum values with the offending field and the
// allowed set, before any draw operation can trip over them.
func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("easel: invalid dimensions %dx%d (both must be > 0)", c.Width, c.Height)
	}
	if c.OutputWidth < 0 || c.OutputHeight < 0 {
		return fmt.Errorf("easel: invalid output dimensions %dx%d", c.OutputWidth, c.OutputHeight)
	}
	if err := c.Tool.Validate(); err != nil {
		return err
	}
	if _, err := parseLineCap(c.LineCap); err != nil {
		return err
	}
	if _, err := parseLineJoin(c.LineJoin); err != nil {
		return err
	}
	if err := c.Format.Validate(); err != nil {
		return err
	}
	if c.Watermark != nil {
		if err := c.Watermark.Validate(); err != nil {
			return err
		}
	}
	for i := range c.Overlays {
		if err := c.Overlays[i].Validate(); err != nil {
			return fmt.Errorf("easel: overlay %d: %w", i, err)
		}
	}
	return nil
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithOutputSize sets export dimensions independent of the display size.
func WithOutputSize(width, height int) Option {
	return func(c *Canvas) { c.cfg.OutputWidth, c.cfg.OutputHeight = width, height }
}

// WithColor sets the stroke color for new strokes.
func WithColor(hex string) Option {
	return func(c *Canvas) { c.cfg.Color = hex }
}

// WithLineWidth sets the stroke width for new strokes.
func WithLineWidth(w float64) Option {
	return func(c *Canvas) { c.cfg.LineWidth = w }
}

// WithLineCap sets the line cap style ("butt", "round", "square").
func WithLineCap(cap string) Option {
	return func(c *Canvas) { c.cfg.LineCap = cap }
}

// WithLineJoin sets the line join style ("miter", "round", "bevel").
func WithLineJoin(join string) Option {
	return func(c *Canvas) { c.cfg.LineJoin = join }
}

// WithTool selects the active stroke kind.
func WithTool(t StrokeType) Option {
	return func(c *Canvas) { c.cfg.Tool = t }
}

// WithEraser sets the eraser toggle.
func WithEraser(on bool) Option {
	return func(c *Canvas) { c.cfg.Eraser = on }
}

// WithFillShape draws parametric shapes filled instead of outlined.
func WithFillShape(on bool) Option {
	return func(c *Canvas) { c.cfg.FillShape = on }
}

// WithLocked creates the canvas with mutations disabled.
func WithLocked(on bool) Option {
	return func(c *Canvas) { c.cfg.Locked = on }
}

// WithBackgroundColor sets the background fill color.
func WithBackgroundColor(hex string) Option {
	return func(c *Canvas) { c.cfg.BackgroundColor = hex }
}

// WithBackgroundImage sets the background image source.
func WithBackgroundImage(src string) Option {
	return func(c *Canvas) { c.cfg.BackgroundImage = src }
}

// WithWatermark sets the snapshot watermark.
func WithWatermark(w *Watermark) Option {
	return func(c *Canvas) { c.cfg.Watermark = w }
}

// WithOverlays sets the always-rendered overlay images.
func WithOverlays(overlays ...Watermark) Option {
	return func(c *Canvas) { c.cfg.Overlays = overlays }
}

// WithStrokes pre-seeds the history with a previously recorded stroke list,
// restoring earlier edits. Seeding triggers an immediate full redraw.
func WithStrokes(strokes []Stroke) Option {
	return func(c *Canvas) { c.seed = strokes }
}

// WithFormat selects the snapshot encoding (FormatPNG or FormatJPEG).
func WithFormat(f SaveFormat) Option {
	return func(c *Canvas) { c.cfg.Format = f }
}

// WithOnChange registers the change callback. It receives the latest
// snapshot data URL after every redraw and watermark application.
//
// The callback may fire from an asset-load goroutine when a background or
// watermark image resolves; it must be safe for that.
func WithOnChange(fn func(dataURL string)) Option {
	return func(c *Canvas) { c.onChange = fn }
}

// WithHTTPClient replaces the HTTP client used to fetch remote image
// sources. The default is http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Canvas) { c.assets.client = hc }
}
