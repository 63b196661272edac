package blit

import (
	"image"
	"slices"

	"github.com/gogpu/blit/bitmap"
)

// scratch is the Blitter's staging area for pixels that need copying before
// they are merged into the output.
//
// Storage grows on demand and is never shrunk. A view returned by acquire is
// only valid until the next acquire: the next draw call overwrites it.
type scratch struct {
	pix []uint32
}

// acquire returns a size.X by size.Y view with stride equal to its width.
// Its contents are undefined until written.
func (s *scratch) acquire(size image.Point) bitmap.Bitmap {
	if size.X <= 0 || size.Y <= 0 {
		return bitmap.Bitmap{}
	}
	n := size.X * size.Y
	if n > cap(s.pix) {
		old := cap(s.pix)
		s.pix = slices.Grow(s.pix[:0], n)
		Logger().Debug("blit: scratch buffer grown",
			"from", old, "to", cap(s.pix), "requested", n)
	}
	// Stride equals width and the slice is exactly large enough,
	// so FromPixels cannot fail.
	b, _ := bitmap.FromPixels(s.pix[:n], size.X, size.Y, size.X)
	return b
}

// reserve grows the storage to hold at least n pixels.
func (s *scratch) reserve(n int) {
	if n > cap(s.pix) {
		s.pix = slices.Grow(s.pix[:0], n)
	}
}

// capacity returns the number of pixels that fit without reallocating.
func (s *scratch) capacity() int {
	return cap(s.pix)
}
