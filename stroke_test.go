package easel

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestStrokeTypeValidate(t *testing.T) {
	for _, k := range strokeTypes {
		if err := k.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", k, err)
		}
	}
	for _, k := range []StrokeType{"", "scribble", "eraser", "Circle"} {
		if err := k.Validate(); err == nil {
			t.Errorf("Validate(%q) succeeded, want error", k)
		}
	}
}

func TestStrokeTypeClasses(t *testing.T) {
	tests := []struct {
		kind     StrokeType
		freehand bool
		fillable bool
	}{
		{StrokeDash, true, false},
		{StrokeEraser, true, false},
		{StrokeLine, false, false},
		{StrokeSquare, false, true},
		{StrokeCircle, false, true},
		{StrokeTriangle, false, true},
		{StrokeHalfTriangle, false, true},
	}
	for _, tt := range tests {
		if got := tt.kind.isFreehand(); got != tt.freehand {
			t.Errorf("%s.isFreehand() = %v, want %v", tt.kind, got, tt.freehand)
		}
		if got := tt.kind.fillable(); got != tt.fillable {
			t.Errorf("%s.fillable() = %v, want %v", tt.kind, got, tt.fillable)
		}
	}
}

func TestParseLineCap(t *testing.T) {
	tests := []struct {
		name string
		want gg.LineCap
	}{
		{CapButt, gg.LineCapButt},
		{CapRound, gg.LineCapRound},
		{CapSquare, gg.LineCapSquare},
	}
	for _, tt := range tests {
		got, err := parseLineCap(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseLineCap(%q) = %v, %v", tt.name, got, err)
		}
	}
	if _, err := parseLineCap("pointy"); err == nil {
		t.Error("parseLineCap accepted an unknown name")
	} else if !strings.Contains(err.Error(), "pointy") {
		t.Errorf("error %q does not name the offending value", err)
	}
}

func TestParseLineJoin(t *testing.T) {
	tests := []struct {
		name string
		want gg.LineJoin
	}{
		{JoinMiter, gg.LineJoinMiter},
		{JoinRound, gg.LineJoinRound},
		{JoinBevel, gg.LineJoinBevel},
	}
	for _, tt := range tests {
		got, err := parseLineJoin(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseLineJoin(%q) = %v, %v", tt.name, got, err)
		}
	}
	if _, err := parseLineJoin("welded"); err == nil {
		t.Error("parseLineJoin accepted an unknown name")
	}
}

func TestClonePoints(t *testing.T) {
	if got := clonePoints(nil); got != nil {
		t.Errorf("clonePoints(nil) = %v, want nil", got)
	}
	src := []Point{Pt(1, 1), Pt(2, 2)}
	dst := clonePoints(src)
	dst[0] = Pt(9, 9)
	if src[0] != Pt(1, 1) {
		t.Error("clonePoints shares storage with its input")
	}
}
