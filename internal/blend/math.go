// Package blend implements the final write of pixels into a framebuffer:
// solid fills and the merge of a staged sprite into its destination box.
//
// All colors are packed 0xAABBGGRR with straight (non-premultiplied) alpha.
//
// The div255 helpers avoid integer division; they are called for every
// channel of every blended pixel.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly for all x in [0, 65535].
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two channels and divides by 255.
func mulDiv255(a, b uint32) uint32 {
	return div255(a * b)
}

// mix returns s*a + d*(255-a), divided by 255.
func mix(s, d, a uint32) uint32 {
	return div255(s*a + d*(255-a))
}

// addClamp adds two channels and clamps to 255.
func addClamp(a, b uint32) uint32 {
	return min(a+b, 255)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// channel extracts the 8-bit channel at shift.
func channel(c uint32, shift uint) uint32 {
	return c >> shift & 0xff
}
