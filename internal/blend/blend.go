package blend

import (
	"image"

	"github.com/gogpu/blit/bitmap"
)

// Mode selects how a source pixel is combined with the destination.
type Mode uint8

const (
	// ModeOpaque overwrites the destination.
	ModeOpaque Mode = iota
	// ModeAlpha composites with straight alpha: D = S*Sa + D*(1-Sa).
	ModeAlpha
	// ModeOneBit copies the source, fully opaque, where Sa >= 0.5.
	ModeOneBit
	// ModeAdditive adds S*Sa to the destination color.
	ModeAdditive
	// ModeSubtractive subtracts S*Sa from the destination color.
	ModeSubtractive
	// ModeMultiplicative multiplies the destination color by S, weighted by Sa.
	ModeMultiplicative
	// ModeMinimum keeps the per-channel minimum, weighted by Sa.
	ModeMinimum
	// ModeMaximum keeps the per-channel maximum, weighted by Sa.
	ModeMaximum
)

const alphaShift = 24

const alphaMask = 0xff << alphaShift

// Func combines a source pixel with a destination pixel.
type Func func(s, d uint32) uint32

// FuncFor returns the per-pixel function for mode.
// Unknown modes overwrite, like ModeOpaque.
func FuncFor(mode Mode) Func {
	switch mode {
	case ModeAlpha:
		return blendAlpha
	case ModeOneBit:
		return blendOneBit
	case ModeAdditive:
		return blendAdditive
	case ModeSubtractive:
		return blendSubtractive
	case ModeMultiplicative:
		return blendMultiplicative
	case ModeMinimum:
		return blendMinimum
	case ModeMaximum:
		return blendMaximum
	default:
		return blendOpaque
	}
}

// Merge writes src into dst with its top-left corner at at, combining pixels
// with mode. Parts of src that fall outside dst are skipped.
func Merge(dst bitmap.Bitmap, at image.Point, src bitmap.Bitmap, mode Mode) {
	r := image.Rectangle{Min: at, Max: at.Add(src.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	off := r.Min.Sub(at)
	out := dst.SubView(r)
	in := src.SubView(image.Rectangle{Min: off, Max: off.Add(r.Size())})

	if mode == ModeOpaque {
		out.CopyFrom(in)
		return
	}

	fn := FuncFor(mode)
	for y := range out.Height() {
		d := out.Row(y)
		s := in.Row(y)
		for x, sc := range s {
			// Every non-opaque mode leaves the destination alone for a
			// fully transparent source.
			if sc&alphaMask == 0 {
				continue
			}
			d[x] = fn(sc, d[x])
		}
	}
}

func blendOpaque(s, _ uint32) uint32 {
	return s
}

func blendAlpha(s, d uint32) uint32 {
	a := channel(s, alphaShift)
	if a == 255 {
		return s
	}
	out := (a + mulDiv255(channel(d, alphaShift), 255-a)) << alphaShift
	for shift := uint(0); shift < alphaShift; shift += 8 {
		out |= mix(channel(s, shift), channel(d, shift), a) << shift
	}
	return out
}

func blendOneBit(s, d uint32) uint32 {
	if channel(s, alphaShift) < 0x80 {
		return d
	}
	return s | alphaMask
}

// rgbOp applies op to each color channel with the alpha-weighted source,
// keeping the destination alpha.
func rgbOp(s, d uint32, op func(sv, dv uint32) uint32) uint32 {
	a := channel(s, alphaShift)
	out := d & alphaMask
	for shift := uint(0); shift < alphaShift; shift += 8 {
		out |= op(mulDiv255(channel(s, shift), a), channel(d, shift)) << shift
	}
	return out
}

func blendAdditive(s, d uint32) uint32 {
	return rgbOp(s, d, func(sv, dv uint32) uint32 { return addClamp(dv, sv) })
}

func blendSubtractive(s, d uint32) uint32 {
	return rgbOp(s, d, func(sv, dv uint32) uint32 { return subClamp(dv, sv) })
}

// lerpOp blends the destination toward op(S, D) by the source alpha,
// keeping the destination alpha.
func lerpOp(s, d uint32, op func(sv, dv uint32) uint32) uint32 {
	a := channel(s, alphaShift)
	out := d & alphaMask
	for shift := uint(0); shift < alphaShift; shift += 8 {
		dv := channel(d, shift)
		out |= mix(op(channel(s, shift), dv), dv, a) << shift
	}
	return out
}

func blendMultiplicative(s, d uint32) uint32 {
	return lerpOp(s, d, mulDiv255)
}

func blendMinimum(s, d uint32) uint32 {
	return lerpOp(s, d, func(sv, dv uint32) uint32 { return min(sv, dv) })
}

func blendMaximum(s, d uint32) uint32 {
	return lerpOp(s, d, func(sv, dv uint32) uint32 { return max(sv, dv) })
}
