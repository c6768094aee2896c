package easel

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/gogpu/gg"
)

// SaveFormat selects the snapshot raster encoding.
type SaveFormat string

// Snapshot formats.
const (
	// FormatPNG is lossless and keeps transparency.
	FormatPNG SaveFormat = "png"
	// FormatJPEG is lossy; transparent areas flatten onto the
	// background fill.
	FormatJPEG SaveFormat = "jpeg"
)

// jpegQuality is the fixed encoder quality for FormatJPEG.
const jpegQuality = 90

// Validate reports whether f is a supported format.
func (f SaveFormat) Validate() error {
	switch f {
	case FormatPNG, FormatJPEG:
		return nil
	}
	return fmt.Errorf("easel: invalid saveAs %q (allowed: %q, %q)",
		string(f), FormatPNG, FormatJPEG)
}

// mime returns the data URL media type.
func (f SaveFormat) mime() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Snapshot serializes the current composite as a data URL in the configured
// format. The export surface is sized to the configured output dimensions
// (defaulting to the display size), the composite is scaled into it, and the
// watermark, if any and once its assets have loaded, is overlaid.
// Snapshot works regardless of the lock flag.
func (c *Canvas) Snapshot() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Canvas) snapshotLocked() (string, error) {
	ow, oh := c.cfg.OutputWidth, c.cfg.OutputHeight
	if ow == 0 {
		ow = c.cfg.Width
	}
	if oh == 0 {
		oh = c.cfg.Height
	}

	view := c.composeLocked(false)
	out := gg.NewContext(ow, oh)
	out.DrawImageEx(gg.ImageBufFromImage(view.Image()), gg.DrawImageOptions{
		DstWidth:      float64(ow),
		DstHeight:     float64(oh),
		Interpolation: gg.InterpBicubic,
		Opacity:       1,
	})

	if w := c.cfg.Watermark; w != nil {
		if err := w.draw(out, c.assets, c.fonts); err != nil {
			Logger().Warn("easel: watermark draw failed", "err", err)
		}
	}

	return encodeDataURL(out, c.cfg.Format)
}

// encodeDataURL encodes the context's image as a base64 data URL.
func encodeDataURL(dc *gg.Context, f SaveFormat) (string, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatJPEG:
		err = dc.EncodeJPEG(&buf, jpegQuality)
	default:
		err = dc.EncodePNG(&buf)
	}
	if err != nil {
		return "", fmt.Errorf("easel: encode %s: %w", f, err)
	}
	return "data:" + f.mime() + ";base64," +
		base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
