package easel

import (
	"bytes"
	"strings"
	"testing"
)

func TestSaveLoadStrokes(t *testing.T) {
	in := []Stroke{
		{
			ID:     "s1",
			Type:   StrokeDash,
			Origin: Pt(1, 2),
			Points: []Point{Pt(3, 4), Pt(5, 6)},
			Color:  "#FF0000",
			Width:  5,
			Cap:    CapRound,
			Join:   JoinMiter,
		},
		{
			ID:     "s2",
			Type:   StrokeCircle,
			Origin: Pt(50, 50),
			Points: []Point{Pt(25, 25)},
			Color:  "#0000FF",
			Width:  2,
			Fill:   true,
		},
	}

	var buf bytes.Buffer
	if err := SaveStrokes(&buf, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadStrokes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("loaded %d strokes, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Type != in[i].Type ||
			out[i].Origin != in[i].Origin || out[i].Color != in[i].Color ||
			out[i].Width != in[i].Width || out[i].Fill != in[i].Fill {
			t.Errorf("stroke %d = %+v, want %+v", i, out[i], in[i])
		}
		if len(out[i].Points) != len(in[i].Points) {
			t.Errorf("stroke %d has %d points, want %d", i, len(out[i].Points), len(in[i].Points))
		}
	}
}

func TestStrokeWireNames(t *testing.T) {
	var buf bytes.Buffer
	err := SaveStrokes(&buf, []Stroke{{
		Type:   StrokeSquare,
		Origin: Pt(1, 1),
		Points: []Point{Pt(2, 2)},
		Cap:    CapButt,
		Join:   JoinBevel,
	}})
	if err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, key := range []string{`"from"`, `"coordinates"`, `"lineCap"`, `"lineJoin"`, `"type"`} {
		if !strings.Contains(s, key) {
			t.Errorf("serialized stroke is missing the %s field", key)
		}
	}
}

func TestLoadStrokesRejectsGarbage(t *testing.T) {
	if _, err := LoadStrokes(strings.NewReader("not json")); err == nil {
		t.Error("LoadStrokes accepted malformed input")
	}
}

func TestLoadedStrokesReplay(t *testing.T) {
	c, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	drag(c, Pt(10, 10), Pt(90, 90))
	want, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := SaveStrokes(&buf, c.Strokes()); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadStrokes(&buf)
	if err != nil {
		t.Fatal(err)
	}

	c2, err := New(100, 100, WithStrokes(loaded))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c2.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("replaying persisted strokes produced a different snapshot")
	}
}
