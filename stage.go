package blit

import (
	"image"

	"github.com/gogpu/blit/bitmap"
	"github.com/gogpu/blit/internal/sample"
)

// staged holds the pixels handed to the merge step.
//
// A borrowed source is a read-only view into the caller's sprite; an owned
// source lives in the Blitter's scratch buffer and may be adjusted in place.
// The merge step reads either one through pixels and never writes to it.
type staged struct {
	view  bitmap.Bitmap
	owned bool
}

func borrowed(view bitmap.Bitmap) staged { return staged{view: view} }

func owned(view bitmap.Bitmap) staged { return staged{view: view, owned: true} }

// pixels returns the staged view, sized to the destination box.
func (s staged) pixels() bitmap.Bitmap { return s.view }

// mutable returns the view for in-place adjustment. Only owned sources may be
// modified; a borrowed one would write through to the caller's sprite.
func (s staged) mutable() (bitmap.Bitmap, bool) {
	return s.view, s.owned
}

// innerIndent returns the sprite-local pixel that lands on box.Min when the
// sprite pivot is drawn at pos.
func innerIndent(box image.Rectangle, pos, pivot image.Point) image.Point {
	return box.Min.Sub(pos).Add(pivot)
}

// copyDirect copies the size-sized region of src starting at indent into
// scratch storage.
func (bl *Blitter) copyDirect(src bitmap.Bitmap, size, indent image.Point) bitmap.Bitmap {
	dst := bl.scratch.acquire(size)
	dst.CopyFrom(src.SubView(image.Rectangle{Min: indent, Max: indent.Add(size)}))
	return dst
}

// copyIndexed resolves the size-sized region of src starting at indent
// through pal into scratch storage. Indices at or beyond the palette length
// become transparent.
func (bl *Blitter) copyIndexed(src bitmap.Indexed, pal *bitmap.Palette, size, indent image.Point) bitmap.Bitmap {
	dst := bl.scratch.acquire(size)
	region := src.SubView(image.Rectangle{Min: indent, Max: indent.Add(size)})
	for y := range region.Height() {
		out := dst.Row(y)
		for x, index := range region.Row(y) {
			out[x] = pal.Lookup(index)
		}
	}
	return dst
}

// fetcher reads a source pixel at sprite-local coordinates.
// Out-of-range coordinates yield 0.
type fetcher struct {
	point    func(x, y int) uint32
	bilinear func(x, y float32) uint32
}

func directFetcher(src bitmap.Bitmap) fetcher {
	return fetcher{
		point: func(x, y int) uint32 { return sample.Point(src, x, y) },
		bilinear: func(x, y float32) uint32 {
			return sample.Bilinear(src, x, y)
		},
	}
}

func indexedFetcher(src bitmap.Indexed, pal *bitmap.Palette) fetcher {
	return fetcher{
		point: func(x, y int) uint32 { return sample.PointIndexed(src, pal, x, y) },
		bilinear: func(x, y float32) uint32 {
			return sample.BilinearIndexed(src, pal, x, y)
		},
	}
}

// transformedCopy fills scratch storage the size of box by sampling the
// sprite through the inverse transform.
//
// Each output pixel is sampled at its center: the offset from pos plus 0.5
// is mapped through t.Inv, then shifted back by half a pixel and by the pivot
// into sprite-local pixel coordinates.
func (bl *Blitter) transformedCopy(f fetcher, box image.Rectangle, pos, pivot image.Point, t *Transform, mode SamplingMode) bitmap.Bitmap {
	dst := bl.scratch.acquire(box.Size())
	inv := t.Inv
	px, py := float32(pivot.X), float32(pivot.Y)

	for iy := range dst.Height() {
		row := dst.Row(iy)
		dy := float32(box.Min.Y+iy-pos.Y) + 0.5
		for ix := range row {
			dx := float32(box.Min.X+ix-pos.X) + 0.5
			lx := dx*inv[0] + dy*inv[1] - 0.5
			ly := dx*inv[2] + dy*inv[3] - 0.5
			if mode == SamplingBilinear {
				row[ix] = f.bilinear(lx+px, ly+py)
			} else {
				row[ix] = f.point(sample.Round(lx)+pivot.X, sample.Round(ly)+pivot.Y)
			}
		}
	}
	return dst
}
