package easel

import (
	"testing"

	"github.com/gogpu/gg"
)

// fillRect sets every pixel in the given box to the RGBA value.
func fillRect(p *gg.Pixmap, x0, y0, x1, y1 int, r, g, b, a uint8) {
	data := p.Data()
	w := p.Width()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*w + x) * 4
			data[i], data[i+1], data[i+2], data[i+3] = r, g, b, a
		}
	}
}

func alphaAt(p *gg.Pixmap, x, y int) uint8 {
	return p.Data()[(y*p.Width()+x)*4+3]
}

func TestEraseOut(t *testing.T) {
	dst := gg.NewPixmap(20, 20)
	src := gg.NewPixmap(20, 20)

	fillRect(dst, 0, 0, 20, 20, 10, 20, 30, 255)
	fillRect(src, 5, 5, 15, 15, 255, 255, 255, 255) // full coverage
	fillRect(src, 0, 0, 5, 5, 0, 0, 0, 128)         // half coverage

	eraseOut(dst, src)

	if got := alphaAt(dst, 10, 10); got != 0 {
		t.Errorf("fully covered pixel alpha = %d, want 0", got)
	}
	if got := alphaAt(dst, 2, 2); got != 127 {
		t.Errorf("half covered pixel alpha = %d, want 127", got)
	}
	if got := alphaAt(dst, 18, 18); got != 255 {
		t.Errorf("uncovered pixel alpha = %d, want 255", got)
	}

	// Color channels are untouched; only alpha changes.
	d := dst.Data()
	i := (10*20 + 10) * 4
	if d[i] != 10 || d[i+1] != 20 || d[i+2] != 30 {
		t.Errorf("erased pixel color = (%d,%d,%d), want (10,20,30)", d[i], d[i+1], d[i+2])
	}
}

func TestEraseOutRepeatedIsIdempotentAtZero(t *testing.T) {
	dst := gg.NewPixmap(4, 4)
	src := gg.NewPixmap(4, 4)
	fillRect(dst, 0, 0, 4, 4, 0, 0, 0, 200)
	fillRect(src, 0, 0, 4, 4, 0, 0, 0, 255)

	eraseOut(dst, src)
	eraseOut(dst, src)
	if got := alphaAt(dst, 1, 1); got != 0 {
		t.Errorf("alpha after double erase = %d, want 0", got)
	}
}

func TestKnockoutInterior(t *testing.T) {
	p := gg.NewPixmap(20, 20)
	fillRect(p, 4, 4, 16, 16, 255, 0, 0, 255)

	knockoutInterior(p, 1)

	if got := alphaAt(p, 10, 10); got != 0 {
		t.Errorf("interior pixel alpha = %d, want 0", got)
	}
	// The boundary band survives.
	if got := alphaAt(p, 4, 10); got != 255 {
		t.Errorf("left edge pixel alpha = %d, want 255", got)
	}
	if got := alphaAt(p, 10, 15); got != 255 {
		t.Errorf("bottom edge pixel alpha = %d, want 255", got)
	}
	// Pixels outside the original coverage stay empty.
	if got := alphaAt(p, 1, 1); got != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", got)
	}
}

func TestKnockoutInteriorThinCoverage(t *testing.T) {
	p := gg.NewPixmap(20, 20)
	fillRect(p, 5, 9, 15, 11, 0, 0, 0, 255) // 2px tall bar, nothing is interior

	knockoutInterior(p, 1)

	for x := 5; x < 15; x++ {
		if got := alphaAt(p, x, 9); got != 255 {
			t.Fatalf("thin bar pixel (%d,9) alpha = %d, want 255", x, got)
		}
	}
}
