// Package sample provides texture fetches for the blitter's transformed path.
//
// Coordinates are in source pixel space: integer coordinates address pixel
// centers. Any fetch that lands outside the source returns 0 (fully
// transparent); bilinear fetches treat each missing neighbor as transparent.
package sample

import (
	"math"

	"github.com/gogpu/blit/bitmap"
)

// weightBits is the fixed-point precision of bilinear weights.
const weightBits = 8

const weightOne = 1 << weightBits

// Round rounds half up, matching the blitter's pixel-center convention.
func Round(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

// Point returns the pixel at (x, y), or 0 if it is outside src.
func Point(src bitmap.Bitmap, x, y int) uint32 {
	return src.At(x, y)
}

// PointIndexed resolves the index at (x, y) through pal.
// Outside src, or for indices beyond the palette, it returns 0.
func PointIndexed(src bitmap.Indexed, pal *bitmap.Palette, x, y int) uint32 {
	if !src.In(x, y) {
		return 0
	}
	return pal.Lookup(src.At(x, y))
}

// Bilinear interpolates the four pixels around (x, y).
// At integer coordinates the result equals Point exactly.
func Bilinear(src bitmap.Bitmap, x, y float32) uint32 {
	x0, y0, wx, wy := split(x, y)
	return lerp2D(
		src.At(x0, y0), src.At(x0+1, y0),
		src.At(x0, y0+1), src.At(x0+1, y0+1),
		wx, wy,
	)
}

// BilinearIndexed interpolates the four palette-resolved pixels around (x, y).
func BilinearIndexed(src bitmap.Indexed, pal *bitmap.Palette, x, y float32) uint32 {
	x0, y0, wx, wy := split(x, y)
	return lerp2D(
		PointIndexed(src, pal, x0, y0), PointIndexed(src, pal, x0+1, y0),
		PointIndexed(src, pal, x0, y0+1), PointIndexed(src, pal, x0+1, y0+1),
		wx, wy,
	)
}

// split returns the top-left neighbor and the fixed-point fractional weights.
func split(x, y float32) (x0, y0 int, wx, wy uint32) {
	fx := math.Floor(float64(x))
	fy := math.Floor(float64(y))
	x0, y0 = int(fx), int(fy)
	wx = uint32(math.Round((float64(x) - fx) * weightOne))
	wy = uint32(math.Round((float64(y) - fy) * weightOne))
	// A fraction that rounds up to a whole pixel belongs to the next neighbor.
	if wx == weightOne {
		x0, wx = x0+1, 0
	}
	if wy == weightOne {
		y0, wy = y0+1, 0
	}
	return x0, y0, wx, wy
}

// lerp2D blends a 2x2 neighborhood channel by channel.
func lerp2D(c00, c10, c01, c11 uint32, wx, wy uint32) uint32 {
	if wx == 0 && wy == 0 {
		return c00
	}
	var out uint32
	for shift := uint(0); shift < 32; shift += 8 {
		top := lerp(c00>>shift&0xff, c10>>shift&0xff, wx)
		bottom := lerp(c01>>shift&0xff, c11>>shift&0xff, wx)
		v := (top*(weightOne-wy) + bottom*wy + weightOne*weightOne/2) >> (2 * weightBits)
		out |= v << shift
	}
	return out
}

// lerp returns a*(1-w) + b*w in 8.8 fixed point (result scaled by weightOne).
func lerp(a, b, w uint32) uint32 {
	return a*(weightOne-w) + b*w
}
