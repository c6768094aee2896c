package easel

import "github.com/gogpu/gg"

// eraseOut applies destination-out compositing: wherever src has coverage,
// dst's alpha is knocked out proportionally. Colors are left untouched; the
// pixmaps store straight (non-premultiplied) RGBA, so reducing alpha alone
// is the correct erase.
//
// Both pixmaps must have identical dimensions.
func eraseOut(dst, src *gg.Pixmap) {
	d := dst.Data()
	s := src.Data()
	n := len(d)
	if len(s) < n {
		n = len(s)
	}
	for i := 3; i < n; i += 4 {
		sa := uint32(s[i])
		if sa == 0 {
			continue
		}
		da := uint32(d[i])
		d[i] = uint8(da * (255 - sa) / 255)
	}
}

// knockoutInterior turns filled coverage into an outline by clearing every
// pixel whose neighborhood within the given radius is fully covered. What
// remains is a band of roughly radius pixels along the coverage boundary.
// Used by the text watermark's stroke draw mode, since glyphs rasterize as
// filled alpha.
func knockoutInterior(p *gg.Pixmap, radius int) {
	if radius < 1 {
		radius = 1
	}
	w, h := p.Width(), p.Height()
	data := p.Data()

	const solid = 0xF0 // alpha above this counts as covered

	covered := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return data[(y*w+x)*4+3] >= solid
	}

	interior := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !covered(x, y) {
				continue
			}
			inner := true
			for dy := -radius; dy <= radius && inner; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if !covered(x+dx, y+dy) {
						inner = false
						break
					}
				}
			}
			interior[y*w+x] = inner
		}
	}
	for i, in := range interior {
		if in {
			data[i*4+3] = 0
		}
	}
}
