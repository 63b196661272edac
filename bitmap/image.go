package bitmap

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pack builds a packed pixel from straight-alpha channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Unpack splits a packed pixel into its straight-alpha channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// PackColor converts any color.Color to a packed straight-alpha pixel.
func PackColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}

// FromImage copies img into a new bitmap whose origin is img.Bounds().Min.
func FromImage(img image.Image) Bitmap {
	r := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		xdraw.Copy(nrgba, image.Point{}, img, r, xdraw.Src, nil)
		r = nrgba.Rect
	}

	b := New(r.Dx(), r.Dy())
	for y := range b.height {
		off := nrgba.PixOffset(r.Min.X, r.Min.Y+y)
		row := b.Row(y)
		for x := range row {
			p := nrgba.Pix[off : off+4 : off+4]
			row[x] = Pack(p[0], p[1], p[2], p[3])
			off += 4
		}
	}
	return b
}

// ToNRGBA copies the buffer into a new *image.NRGBA.
// For an Indexed buffer pass its palette; for a Bitmap pass nil.
func (b Buffer[T]) ToNRGBA(pal *Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		off := y * img.Stride
		for _, v := range b.Row(y) {
			c := uint32(v)
			if pal != nil {
				c = pal.Lookup(uint8(v))
			}
			img.Pix[off+0], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = Unpack(c)
			off += 4
		}
	}
	return img
}

// IndexedFromPaletted copies a paletted image into an indexed bitmap and its palette.
func IndexedFromPaletted(img *image.Paletted) (Indexed, Palette) {
	r := img.Bounds()
	b := NewIndexed(r.Dx(), r.Dy())
	for y := range b.height {
		off := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(b.Row(y), img.Pix[off:off+b.width])
	}
	return b, PaletteFromColors(img.Palette)
}
