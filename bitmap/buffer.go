// Package bitmap provides the 2D pixel views the blitter reads from and
// writes to.
//
// A Buffer is a window into a slice of pixels with an explicit stride, so a
// sub-rectangle of a larger image can be addressed without copying. Two pixel
// widths are used: 32-bit packed colors (Bitmap) and 8-bit palette indices
// (Indexed).
//
// 32-bit pixels are packed as 0xAABBGGRR: red in the low byte, alpha in the
// high byte, straight (non-premultiplied) alpha.
package bitmap

import (
	"errors"
	"image"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than the width.
	ErrInvalidStride = errors.New("bitmap: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("bitmap: data buffer too small")
)

// Pixel is the set of pixel storage types a Buffer can hold.
type Pixel interface {
	~uint8 | ~uint32
}

// Buffer is a rectangular view of pixels.
//
// Stride is measured in pixels, not bytes. Views created by SubView share
// storage with their parent; writes through one are visible through the other.
//
// Thread safety: a Buffer carries no synchronization. Concurrent reads are
// fine; writes require external locking.
type Buffer[T Pixel] struct {
	pix    []T
	width  int
	height int
	stride int
}

// Bitmap is a view of 32-bit packed colors.
type Bitmap = Buffer[uint32]

// Indexed is a view of 8-bit palette indices.
type Indexed = Buffer[uint8]

// New allocates a zeroed 32-bit bitmap. Negative dimensions yield an empty bitmap.
func New(width, height int) Bitmap {
	return alloc[uint32](width, height)
}

// NewIndexed allocates a zeroed 8-bit indexed bitmap.
func NewIndexed(width, height int) Indexed {
	return alloc[uint8](width, height)
}

func alloc[T Pixel](width, height int) Buffer[T] {
	if width <= 0 || height <= 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{
		pix:    make([]T, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// FromPixels wraps existing pixel storage without copying.
// The caller must keep pix alive and unmodified in size for the lifetime of
// the returned view. Stride must be at least width.
func FromPixels[T Pixel](pix []T, width, height, stride int) (Buffer[T], error) {
	if width < 0 || height < 0 {
		return Buffer[T]{}, ErrInvalidDimensions
	}
	if width == 0 || height == 0 {
		return Buffer[T]{}, nil
	}
	if stride < width {
		return Buffer[T]{}, ErrInvalidStride
	}
	required := (height-1)*stride + width
	if len(pix) < required {
		return Buffer[T]{}, ErrDataTooSmall
	}
	return Buffer[T]{
		pix:    pix[:required],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the width in pixels.
func (b Buffer[T]) Width() int { return b.width }

// Height returns the height in pixels.
func (b Buffer[T]) Height() int { return b.height }

// Stride returns the distance between rows, in pixels.
func (b Buffer[T]) Stride() int { return b.stride }

// Size returns the dimensions as a point.
func (b Buffer[T]) Size() image.Point { return image.Pt(b.width, b.height) }

// Bounds returns the rectangle (0,0)-(width,height).
func (b Buffer[T]) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// Empty reports whether the view has no pixels.
func (b Buffer[T]) Empty() bool { return b.width <= 0 || b.height <= 0 }

// Pix returns the underlying storage, starting at the first pixel of the view.
// Rows are Stride apart; the slice ends after the last pixel of the last row.
func (b Buffer[T]) Pix() []T { return b.pix }

// Row returns the pixels of row y, exactly Width long.
// Returns nil if y is out of range.
func (b Buffer[T]) Row(y int) []T {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.pix[start : start+b.width : start+b.width]
}

// In reports whether (x, y) addresses a pixel inside the view.
func (b Buffer[T]) In(x, y int) bool {
	return uint(x) < uint(b.width) && uint(y) < uint(b.height)
}

// At returns the pixel at (x, y), or zero if the coordinates are out of range.
func (b Buffer[T]) At(x, y int) T {
	if !b.In(x, y) {
		return 0
	}
	return b.pix[y*b.stride+x]
}

// Set writes the pixel at (x, y). Out-of-range writes are ignored.
func (b Buffer[T]) Set(x, y int, v T) {
	if !b.In(x, y) {
		return
	}
	b.pix[y*b.stride+x] = v
}

// Fill sets every pixel of the view to v.
func (b Buffer[T]) Fill(v T) {
	for y := range b.height {
		row := b.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clear sets every pixel of the view to zero.
func (b Buffer[T]) Clear() {
	for y := range b.height {
		clear(b.Row(y))
	}
}

// SubView returns a view of the region r, clipped to the buffer bounds.
// The result shares storage with b and keeps its stride.
// An empty intersection yields an empty view.
func (b Buffer[T]) SubView(r image.Rectangle) Buffer[T] {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return Buffer[T]{}
	}
	w, h := r.Dx(), r.Dy()
	start := r.Min.Y*b.stride + r.Min.X
	end := start + (h-1)*b.stride + w
	return Buffer[T]{
		pix:    b.pix[start:end],
		width:  w,
		height: h,
		stride: b.stride,
	}
}

// CopyFrom copies the overlapping top-left region of src into b.
// Returns the number of rows copied.
func (b Buffer[T]) CopyFrom(src Buffer[T]) int {
	h := min(b.height, src.height)
	for y := range h {
		copy(b.Row(y), src.Row(y))
	}
	return h
}
