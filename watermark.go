package easel

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
)

// WatermarkType selects between an image overlay and a text overlay.
type WatermarkType string

// Watermark types.
const (
	WatermarkImage WatermarkType = "image"
	WatermarkText  WatermarkType = "text"
)

// Text draw modes.
const (
	DrawFill   = "fill"
	DrawStroke = "stroke"
)

// ErrNoFont is returned when a text watermark is drawn without a usable
// font source.
var ErrNoFont = errors.New("easel: text watermark has no font configured")

// Watermark describes a fixed overlay composited on top of the drawing.
// The canvas watermark applies at export time only; entries in
// Config.Overlays render on the display surface under the ink.
type Watermark struct {
	// Type is WatermarkImage or WatermarkText.
	Type WatermarkType `json:"type"`

	// Source is the image source for WatermarkImage (file path, http(s)
	// URL, or data URL). Loaded asynchronously and cached; a snapshot
	// taken before the asset resolves omits the watermark.
	Source string `json:"source,omitempty"`

	// Text is the string for WatermarkText.
	Text string `json:"text,omitempty"`

	// X, Y position the overlay. For text, Y is the first baseline.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Width and Height scale an image watermark. Zero keeps the source
	// dimensions.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Opacity applies to image watermarks, 0 meaning the default of 1.
	Opacity float64 `json:"opacity,omitempty"`

	// FontPath and FontSize configure the text face. FontSource, when
	// non-nil, takes precedence over FontPath (useful for embedded fonts
	// and tests).
	FontPath   string             `json:"fontPath,omitempty"`
	FontSize   float64            `json:"fontSize,omitempty"`
	FontSource *ggtext.FontSource `json:"-"`

	// MaxWidth enables word wrap against the given width. Zero disables
	// wrapping. LineSpacing is the wrapped line height multiplier;
	// zero means 1.2.
	MaxWidth    float64 `json:"maxWidth,omitempty"`
	LineSpacing float64 `json:"lineSpacing,omitempty"`

	// Mode is DrawFill (default) or DrawStroke. Stroke mode renders the
	// glyph outlines only.
	Mode string `json:"mode,omitempty"`

	// Color is the text color as a hex string.
	Color string `json:"color,omitempty"`

	// Rotation rotates text watermarks, in degrees, about Pivot.
	// A nil Pivot rotates about (X, Y).
	Rotation float64 `json:"rotation,omitempty"`
	Pivot    *Point  `json:"pivot,omitempty"`
}

// Validate rejects descriptors that would fail mid-draw.
func (w *Watermark) Validate() error {
	switch w.Type {
	case WatermarkImage:
		if w.Source == "" {
			return fmt.Errorf("easel: image watermark requires a source")
		}
	case WatermarkText:
		if w.Text == "" {
			return fmt.Errorf("easel: text watermark requires text")
		}
		if w.FontPath == "" && w.FontSource == nil {
			return ErrNoFont
		}
	default:
		return fmt.Errorf("easel: invalid watermark type %q (allowed: %q, %q)",
			string(w.Type), WatermarkImage, WatermarkText)
	}
	switch w.Mode {
	case "", DrawFill, DrawStroke:
	default:
		return fmt.Errorf("easel: invalid watermark mode %q (allowed: %q, %q)",
			w.Mode, DrawFill, DrawStroke)
	}
	return nil
}

// draw composites the watermark onto dc. A pending or failed asset load is
// not an error: the layer is simply absent until the source resolves.
func (w *Watermark) draw(dc *gg.Context, assets *assetLoader, fonts *fontCache) error {
	switch w.Type {
	case WatermarkImage:
		img, ok := assets.get(w.Source).ready()
		if !ok {
			return nil
		}
		opacity := w.Opacity
		if opacity == 0 {
			opacity = 1
		}
		dc.DrawImageEx(img, gg.DrawImageOptions{
			X:             w.X,
			Y:             w.Y,
			DstWidth:      w.Width,
			DstHeight:     w.Height,
			Interpolation: gg.InterpBilinear,
			Opacity:       opacity,
		})
		return nil
	case WatermarkText:
		return w.drawText(dc, fonts)
	}
	return nil
}

func (w *Watermark) drawText(dc *gg.Context, fonts *fontCache) error {
	face, err := w.face(fonts)
	if err != nil {
		return err
	}
	if w.Mode != DrawStroke {
		w.renderText(dc, face)
		return nil
	}

	// Stroke mode: glyphs rasterize as filled alpha, so render onto a
	// scratch surface and knock out the interior, leaving the outline.
	pm := gg.NewPixmap(dc.Width(), dc.Height())
	scratch := gg.NewContext(dc.Width(), dc.Height(), gg.WithPixmap(pm))
	w.renderText(scratch, face)
	knockoutInterior(pm, 1)
	dc.DrawImageEx(gg.ImageBufFromImage(pm.ToImage()), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       1,
	})
	return nil
}

// renderText draws the (possibly wrapped, possibly rotated) text run.
func (w *Watermark) renderText(dc *gg.Context, face ggtext.Face) {
	dc.Push()
	defer dc.Pop()

	if w.Rotation != 0 {
		px, py := w.X, w.Y
		if w.Pivot != nil {
			px, py = w.Pivot.X, w.Pivot.Y
		}
		dc.RotateAbout(w.Rotation*math.Pi/180, px, py)
	}
	dc.SetFont(face)
	if w.Color != "" {
		dc.SetHexColor(w.Color)
	}
	if w.MaxWidth > 0 {
		spacing := w.LineSpacing
		if spacing == 0 {
			spacing = 1.2
		}
		dc.DrawStringWrapped(w.Text, w.X, w.Y, 0, 0, w.MaxWidth, spacing, gg.AlignLeft)
		return
	}
	dc.DrawString(w.Text, w.X, w.Y)
}

// face resolves the configured font.
func (w *Watermark) face(fonts *fontCache) (ggtext.Face, error) {
	size := w.FontSize
	if size == 0 {
		size = 16
	}
	if w.FontSource != nil {
		return w.FontSource.Face(size), nil
	}
	if w.FontPath == "" {
		return nil, ErrNoFont
	}
	return fonts.face(w.FontPath, size)
}

// fontCache loads font sources from disk once per path.
type fontCache struct {
	mu      sync.Mutex
	sources map[string]*ggtext.FontSource
}

func newFontCache() *fontCache {
	return &fontCache{sources: make(map[string]*ggtext.FontSource)}
}

func (fc *fontCache) face(path string, size float64) (ggtext.Face, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	src, ok := fc.sources[path]
	if !ok {
		var err error
		src, err = ggtext.NewFontSourceFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("easel: load font %s: %w", path, err)
		}
		fc.sources[path] = src
	}
	return src.Face(size), nil
}
