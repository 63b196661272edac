package blit

import (
	"image"

	"github.com/gogpu/blit/bitmap"
	"github.com/gogpu/blit/internal/blend"
)

// Output is a drawing target: a bitmap and the region of it draws may touch.
type Output struct {
	Bitmap bitmap.Bitmap

	// Viewport limits where draws land. It is intersected with the bitmap
	// bounds before any write.
	Viewport image.Rectangle
}

// NewOutput returns an Output whose viewport covers the whole bitmap.
func NewOutput(b bitmap.Bitmap) Output {
	return Output{Bitmap: b, Viewport: b.Bounds()}
}

// clip returns the writable region of the output.
func (o Output) clip() image.Rectangle {
	return o.Viewport.Intersect(o.Bitmap.Bounds())
}

// Sprite is a direct-color image drawn around its pivot.
type Sprite struct {
	Bitmap bitmap.Bitmap

	// Pivot is the sprite pixel placed at the draw position. Transforms
	// rotate and scale around it.
	Pivot image.Point
}

// IndexedSprite is a palette-indexed image drawn around its pivot.
type IndexedSprite struct {
	Bitmap bitmap.Indexed
	Pivot  image.Point
}

// Merger writes staged sprite pixels into an output.
//
// box is the destination rectangle in output coordinates and src has exactly
// box's size. src must be treated as read-only: it may alias the caller's
// sprite. Implementations decide blending and any depth test from opts.
type Merger interface {
	Merge(dst bitmap.Bitmap, box image.Rectangle, src bitmap.Bitmap, opts *Options)
}

// MergerFunc adapts an ordinary function to the Merger interface.
type MergerFunc func(dst bitmap.Bitmap, box image.Rectangle, src bitmap.Bitmap, opts *Options)

// Merge calls f(dst, box, src, opts).
func (f MergerFunc) Merge(dst bitmap.Bitmap, box image.Rectangle, src bitmap.Bitmap, opts *Options) {
	f(dst, box, src, opts)
}

// defaultMerger composites with the blend mode named in the options.
type defaultMerger struct{}

func (defaultMerger) Merge(dst bitmap.Bitmap, box image.Rectangle, src bitmap.Bitmap, opts *Options) {
	blend.Merge(dst, box.Min, src, opts.Blend.mergeMode())
}

// Blitter draws solid colors and sprites into 32-bit outputs.
//
// A Blitter owns a scratch buffer that staged pixels are copied into, so it
// must not be used from more than one goroutine at a time. Create one
// Blitter per rendering goroutine.
type Blitter struct {
	scratch scratch
	merger  Merger
}

// New creates a Blitter with the given options.
func New(opts ...Option) *Blitter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bl := &Blitter{merger: o.merger}
	bl.scratch.reserve(o.scratchCapacity)
	return bl
}

// BlitColor fills the output viewport with c.
//
// BlendOpaque, or an alpha of 1 or more, overwrites the region. An alpha of 0
// leaves the output unchanged. Otherwise BlendAlpha composites over the
// existing pixels.
func (bl *Blitter) BlitColor(out Output, c Color, mode BlendMode) {
	view := out.Bitmap.SubView(out.clip())
	if view.Empty() {
		return
	}

	switch {
	case mode == BlendOpaque || c.A >= 1:
		blend.FillOpaque(view, c.Packed())
	case !(c.A > 0):
		// Nothing to draw.
	case mode == BlendAlpha:
		blend.FillAlpha(view, c.Packed())
	default:
		// TODO: route translucent fills through blend.FuncFor so the
		// arithmetic modes apply to solid colors too.
		Logger().Debug("blit: solid fill blend mode unsupported, filling opaque",
			"mode", mode.String())
		blend.FillOpaque(view, c.Packed())
	}
}

// BlitSprite draws sprite with its pivot at pos. A nil opts draws with the
// zero Options.
//
// Untransformed sprites without color adjustments are merged straight from
// the sprite's pixels; every other draw is staged in the Blitter's scratch
// buffer first. The sprite itself is never modified.
func (bl *Blitter) BlitSprite(out Output, sprite Sprite, pos image.Point, opts *Options) {
	if opts == nil {
		opts = &Options{}
	}
	local := image.Rectangle{Max: sprite.Bitmap.Size()}.Sub(sprite.Pivot)
	box := cropToViewport(out.clip(), local, pos, opts.Transform)
	if box.Empty() {
		return
	}

	var src staged
	switch {
	case opts.Transform != nil:
		src = owned(bl.transformedCopy(directFetcher(sprite.Bitmap), box, pos, sprite.Pivot, opts.Transform, opts.Sampling))
	case needsAdjustment(opts):
		src = owned(bl.copyDirect(sprite.Bitmap, box.Size(), innerIndent(box, pos, sprite.Pivot)))
	default:
		indent := innerIndent(box, pos, sprite.Pivot)
		src = borrowed(sprite.Bitmap.SubView(image.Rectangle{Min: indent, Max: indent.Add(box.Size())}))
	}
	bl.finish(out, box, src, opts)
}

// BlitIndexed draws a palette-indexed sprite with its pivot at pos. Indices
// at or beyond pal.Count draw as transparent. A nil opts draws with the zero
// Options.
func (bl *Blitter) BlitIndexed(out Output, sprite IndexedSprite, pal *bitmap.Palette, pos image.Point, opts *Options) {
	if opts == nil {
		opts = &Options{}
	}
	if pal == nil {
		pal = &bitmap.Palette{}
	}
	local := image.Rectangle{Max: sprite.Bitmap.Size()}.Sub(sprite.Pivot)
	box := cropToViewport(out.clip(), local, pos, opts.Transform)
	if box.Empty() {
		return
	}

	var dst bitmap.Bitmap
	if opts.Transform != nil {
		dst = bl.transformedCopy(indexedFetcher(sprite.Bitmap, pal), box, pos, sprite.Pivot, opts.Transform, opts.Sampling)
	} else {
		dst = bl.copyIndexed(sprite.Bitmap, pal, box.Size(), innerIndent(box, pos, sprite.Pivot))
	}
	bl.finish(out, box, owned(dst), opts)
}

// finish adjusts owned pixels and hands the result to the merger.
func (bl *Blitter) finish(out Output, box image.Rectangle, src staged, opts *Options) {
	if b, ok := src.mutable(); ok && needsAdjustment(opts) {
		adjust(b, opts)
	}
	bl.merger.Merge(out.Bitmap, box, src.pixels(), opts)
}
