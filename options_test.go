package easel

import (
	"net/http"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig(300, 200)
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Errorf("dimensions = %dx%d, want 300x200", cfg.Width, cfg.Height)
	}
	if cfg.Color != "#000000" {
		t.Errorf("default color = %s, want #000000", cfg.Color)
	}
	if cfg.LineWidth != 5 {
		t.Errorf("default line width = %v, want 5", cfg.LineWidth)
	}
	if cfg.LineCap != CapRound || cfg.LineJoin != JoinMiter {
		t.Errorf("default cap/join = %s/%s, want round/miter", cfg.LineCap, cfg.LineJoin)
	}
	if cfg.Tool != StrokeDash {
		t.Errorf("default tool = %s, want %s", cfg.Tool, StrokeDash)
	}
	if cfg.BackgroundColor != "#FFFFFF" {
		t.Errorf("default background = %s, want #FFFFFF", cfg.BackgroundColor)
	}
	if cfg.Format != FormatPNG {
		t.Errorf("default format = %s, want %s", cfg.Format, FormatPNG)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestOptionsApply(t *testing.T) {
	hc := &http.Client{}
	c, err := New(100, 80,
		WithOutputSize(50, 40),
		WithColor("#ABCDEF"),
		WithLineWidth(3),
		WithLineCap(CapSquare),
		WithLineJoin(JoinBevel),
		WithTool(StrokeTriangle),
		WithEraser(true),
		WithFillShape(true),
		WithBackgroundColor("#222222"),
		WithFormat(FormatJPEG),
		WithHTTPClient(hc),
	)
	if err != nil {
		t.Fatal(err)
	}
	cfg := c.cfg
	if cfg.OutputWidth != 50 || cfg.OutputHeight != 40 {
		t.Errorf("output size = %dx%d, want 50x40", cfg.OutputWidth, cfg.OutputHeight)
	}
	if cfg.Color != "#ABCDEF" || cfg.LineWidth != 3 {
		t.Errorf("color/width = %s/%v", cfg.Color, cfg.LineWidth)
	}
	if cfg.LineCap != CapSquare || cfg.LineJoin != JoinBevel {
		t.Errorf("cap/join = %s/%s", cfg.LineCap, cfg.LineJoin)
	}
	if cfg.Tool != StrokeTriangle || !cfg.Eraser || !cfg.FillShape {
		t.Errorf("tool state = %s eraser=%v fill=%v", cfg.Tool, cfg.Eraser, cfg.FillShape)
	}
	if cfg.BackgroundColor != "#222222" || cfg.Format != FormatJPEG {
		t.Errorf("background/format = %s/%s", cfg.BackgroundColor, cfg.Format)
	}
	if c.assets.client != hc {
		t.Error("custom HTTP client not installed")
	}
}

func TestValidateOverlayErrors(t *testing.T) {
	cfg := defaultConfig(10, 10)
	cfg.Overlays = []Watermark{
		{Type: WatermarkImage, Source: "ok.png"},
		{Type: WatermarkImage},
	}
	err := cfg.validate()
	if err == nil {
		t.Fatal("invalid overlay passed validation")
	}
}

func TestValidateNegativeOutputSize(t *testing.T) {
	cfg := defaultConfig(10, 10)
	cfg.OutputWidth = -1
	if err := cfg.validate(); err == nil {
		t.Error("negative output width passed validation")
	}
}
