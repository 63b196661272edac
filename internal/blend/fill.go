package blend

import "github.com/gogpu/blit/bitmap"

// FillOpaque overwrites every pixel of dst with c.
func FillOpaque(dst bitmap.Bitmap, c uint32) {
	dst.Fill(c)
}

// FillAlpha composites c over every pixel of dst using its alpha.
// A fully transparent c leaves dst unchanged; a fully opaque c overwrites it.
func FillAlpha(dst bitmap.Bitmap, c uint32) {
	a := channel(c, alphaShift)
	switch a {
	case 0:
		return
	case 255:
		dst.Fill(c)
		return
	}

	// Precompute the source terms once per fill.
	inv := 255 - a
	var sr, sg, sb uint32 = channel(c, 0) * a, channel(c, 8) * a, channel(c, 16) * a
	for y := range dst.Height() {
		row := dst.Row(y)
		for x, d := range row {
			row[x] = div255(sr+channel(d, 0)*inv) |
				div255(sg+channel(d, 8)*inv)<<8 |
				div255(sb+channel(d, 16)*inv)<<16 |
				(a+mulDiv255(channel(d, alphaShift), inv))<<alphaShift
		}
	}
}
