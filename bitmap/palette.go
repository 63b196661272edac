package bitmap

import "image/color"

// MaxPaletteEntries is the number of entries an 8-bit index can address.
const MaxPaletteEntries = 256

// Palette maps 8-bit indices to packed 32-bit colors.
//
// Only the first Count entries are valid. Lookups at or beyond Count resolve
// to 0 (fully transparent), so an indexed bitmap can never read past the table.
type Palette struct {
	Colors [MaxPaletteEntries]uint32
	Count  int
}

// NewPalette builds a palette from packed colors.
// Entries beyond MaxPaletteEntries are dropped.
func NewPalette(colors ...uint32) Palette {
	var p Palette
	p.Count = copy(p.Colors[:], colors)
	return p
}

// PaletteFromColors converts a standard library palette.
// Colors are stored with straight alpha.
func PaletteFromColors(cp color.Palette) Palette {
	var p Palette
	n := min(len(cp), MaxPaletteEntries)
	for i := range n {
		p.Colors[i] = PackColor(cp[i])
	}
	p.Count = n
	return p
}

// Len returns the number of valid entries, clamped to [0, MaxPaletteEntries].
func (p *Palette) Len() int {
	return max(0, min(p.Count, MaxPaletteEntries))
}

// Lookup returns the color for index, or 0 if index is not a valid entry.
func (p *Palette) Lookup(index uint8) uint32 {
	if int(index) < p.Count {
		return p.Colors[index]
	}
	return 0
}
