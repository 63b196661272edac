package blit

import "github.com/gogpu/blit/bitmap"

// needsAdjustment reports whether staged pixels must be modified before the
// merge, which rules out handing the merge a direct view of the sprite.
func needsAdjustment(opts *Options) bool {
	return opts.Tint != nil || opts.Added != nil || opts.SwapRedBlue
}

// adjust applies tint, then added color, then the red/blue swap, in place.
func adjust(b bitmap.Bitmap, opts *Options) {
	if opts.Tint != nil {
		applyTint(b, opts.Tint)
	}
	if opts.Added != nil {
		applyAdd(b, opts.Added)
	}
	if opts.SwapRedBlue {
		for y := range b.Height() {
			swapRedBlue(b.Row(y))
		}
	}
}

// applyTint multiplies each channel by round(tint*256) in 8.8 fixed point,
// saturating at 255. A tint of (1,1,1,1) is the identity.
func applyTint(b bitmap.Bitmap, tint *Color) {
	mult := [4]uint32{
		fixed8(tint.R, 0x100),
		fixed8(tint.G, 0x100),
		fixed8(tint.B, 0x100),
		fixed8(tint.A, 0x100),
	}
	for y := range b.Height() {
		row := b.Row(y)
		for x, c := range row {
			var out uint32
			for i, m := range mult {
				shift := uint(i) * 8
				out |= min((c>>shift&0xff)*m>>8, 0xff) << shift
			}
			row[x] = out
		}
	}
}

// applyAdd adds round(added*255) to the red, green and blue channels,
// saturating at 255. Alpha is left untouched.
func applyAdd(b bitmap.Bitmap, added *Color) {
	add := [3]uint32{
		min(fixed8(added.R, 0xff), 0xff),
		min(fixed8(added.G, 0xff), 0xff),
		min(fixed8(added.B, 0xff), 0xff),
	}
	if add == [3]uint32{} {
		return
	}
	for y := range b.Height() {
		row := b.Row(y)
		for x, c := range row {
			out := c & 0xff000000
			for i, a := range add {
				shift := uint(i) * 8
				out |= min((c>>shift&0xff)+a, 0xff) << shift
			}
			row[x] = out
		}
	}
}

// Masks for swapping two packed pixels held in one 64-bit word.
const (
	swapKeep64 = 0xff00ff00ff00ff00
	swapLow64  = 0x000000ff000000ff
	swapHigh64 = 0x00ff000000ff0000
)

// swapRedBlue exchanges the red and blue channels of every pixel in row.
// Pairs of pixels are swapped with a single 64-bit masked shift; an odd
// trailing pixel is swapped on its own. The result is identical to
// swapRedBlueScalar.
func swapRedBlue(row []uint32) {
	k := 0
	for ; k+1 < len(row); k += 2 {
		v := uint64(row[k]) | uint64(row[k+1])<<32
		v = (v&swapHigh64)>>16 | v&swapKeep64 | (v&swapLow64)<<16
		row[k], row[k+1] = uint32(v), uint32(v>>32)
	}
	swapRedBlueScalar(row[k:])
}

// swapRedBlueScalar swaps one pixel at a time.
func swapRedBlueScalar(row []uint32) {
	for i, c := range row {
		row[i] = (c&0x00ff0000)>>16 | c&0xff00ff00 | (c&0x000000ff)<<16
	}
}
