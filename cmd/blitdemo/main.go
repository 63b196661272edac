// Command blitdemo demonstrates the blit software blitter.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/bitmap"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "blitdemo.png", "output file")
		spriteF = flag.String("sprite", "", "sprite image file (a generated disc if empty)")
		size    = flag.Int("size", 64, "sprite size in pixels")
		frames  = flag.Int("frames", 8, "frames in the animation strip")
		verbose = flag.Bool("v", false, "log blitter debug output")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sprite, err := loadSprite(*spriteF, *size)
	if err != nil {
		log.Fatalf("Failed to load sprite: %v", err)
	}

	out := blit.NewOutput(bitmap.New(*width, *height))
	bl := blit.New(blit.WithScratchCapacity(*size * *size * 4))

	drawBackground(bl, out)
	drawBlendModes(bl, out, sprite)
	drawAdjustments(bl, out, sprite)
	drawIndexed(bl, out)
	drawAnimationStrip(bl, out, sprite, *frames)

	if err := imaging.Save(out.Bitmap.ToNRGBA(nil), *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// loadSprite reads path, or generates a sprite when path is empty, and
// resizes it to size x size with its pivot at the center.
func loadSprite(path string, size int) (blit.Sprite, error) {
	var img image.Image
	if path == "" {
		img = generateDisc(256)
	} else {
		var err error
		img, err = imaging.Open(path)
		if err != nil {
			return blit.Sprite{}, fmt.Errorf("open %s: %w", path, err)
		}
	}
	scaled := imaging.Resize(img, size, size, imaging.Lanczos)
	b := bitmap.FromImage(scaled)
	return blit.Sprite{Bitmap: b, Pivot: image.Pt(b.Width()/2, b.Height()/2)}, nil
}

// generateDisc draws a shaded disc with a soft edge.
func generateDisc(n int) *image.NRGBA {
	img := imaging.New(n, n, color.Transparent)
	r := float64(n) / 2
	for y := range n {
		for x := range n {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			d := math.Hypot(dx, dy) / r
			if d > 1 {
				continue
			}
			edge := math.Min(1, (1-d)*8)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * (1 - d*0.5)),
				G: uint8(160 * (1 - d)),
				B: uint8(64 + 128*d),
				A: uint8(255 * edge),
			})
		}
	}
	return img
}

func drawBackground(bl *blit.Blitter, out blit.Output) {
	bl.BlitColor(out, blit.Hex("#1a1a2e"), blit.BlendOpaque)

	// Horizontal bands, each clipped by its own viewport.
	h := out.Bitmap.Height()
	steps := 6
	for i := range steps {
		band := out
		band.Viewport = image.Rect(0, i*h/steps, out.Bitmap.Width(), (i+1)*h/steps)
		t := float32(i) / float32(steps)
		bl.BlitColor(band, blit.RGBA(0.2+t*0.4, 0.3, 0.6-t*0.3, 0.25), blit.BlendAlpha)
	}
}

func drawBlendModes(bl *blit.Blitter, out blit.Output, sprite blit.Sprite) {
	step := sprite.Bitmap.Width() + 24
	y := 20 + sprite.Bitmap.Height()/2
	for i, mode := range []blit.BlendMode{
		blit.BlendOpaque, blit.BlendAlpha, blit.BlendOneBit, blit.BlendAdditive,
		blit.BlendSubtractive, blit.BlendMultiplicative, blit.BlendMinimum, blit.BlendMaximum,
	} {
		x := 20 + sprite.Bitmap.Width()/2 + i*step
		bl.BlitSprite(out, sprite, image.Pt(x, y), &blit.Options{Blend: mode})
	}
}

func drawAdjustments(bl *blit.Blitter, out blit.Output, sprite blit.Sprite) {
	tint := blit.RGBA(0.4, 0.8, 1, 1)
	added := blit.RGB(0, 0.3, 0)
	rot := blit.Rotation(math.Pi / 6)
	mirror := blit.FlipX().Then(blit.Scaling(1.5, 0.75))

	step := sprite.Bitmap.Width() + 40
	y := 160 + sprite.Bitmap.Height()/2
	for i, opts := range []*blit.Options{
		{Blend: blit.BlendAlpha, Tint: &tint},
		{Blend: blit.BlendAlpha, Added: &added},
		{Blend: blit.BlendAlpha, SwapRedBlue: true},
		{Blend: blit.BlendAlpha, Transform: &rot},
		{Blend: blit.BlendAlpha, Transform: &rot, Sampling: blit.SamplingBilinear},
		{Blend: blit.BlendAlpha, Transform: &mirror, Sampling: blit.SamplingBilinear},
	} {
		x := 40 + sprite.Bitmap.Width()/2 + i*step
		bl.BlitSprite(out, sprite, image.Pt(x, y), opts)
	}
}

// drawIndexed draws a checkerboard through a small palette. The last index
// is past the palette and draws as transparent.
func drawIndexed(bl *blit.Blitter, out blit.Output) {
	pm := image.NewPaletted(image.Rect(0, 0, 8, 8), color.Palette{
		color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		color.NRGBA{R: 40, G: 40, B: 40, A: 255},
		color.NRGBA{R: 220, G: 60, B: 60, A: 200},
	})
	for y := range 8 {
		for x := range 8 {
			pm.SetColorIndex(x, y, uint8((x+y)%4))
		}
	}
	idx, pal := bitmap.IndexedFromPaletted(pm)
	sprite := blit.IndexedSprite{Bitmap: idx, Pivot: image.Pt(4, 4)}

	scale := blit.Scaling(6, 6)
	bl.BlitIndexed(out, sprite, &pal, image.Pt(80, 340), &blit.Options{
		Blend:     blit.BlendAlpha,
		Transform: &scale,
	})

	spin := blit.Rotation(math.Pi / 4).Then(blit.Scaling(5, 5))
	bl.BlitIndexed(out, sprite, &pal, image.Pt(220, 340), &blit.Options{
		Blend:     blit.BlendAlpha,
		Transform: &spin,
		Sampling:  blit.SamplingBilinear,
	})
}

// drawAnimationStrip renders frames of a tweened spin and fade side by side.
func drawAnimationStrip(bl *blit.Blitter, out blit.Output, sprite blit.Sprite, frames int) {
	if frames < 2 {
		frames = 2
	}
	const duration = 1
	angle := gween.New(0, 2*math.Pi, duration, ease.InOutQuad)
	fade := gween.New(1, 0.3, duration, ease.Linear)
	dt := float32(duration) / float32(frames-1)

	step := out.Bitmap.Width() / frames
	y := out.Bitmap.Height() - sprite.Bitmap.Height()
	a, alpha := float32(0), float32(1)
	for i := range frames {
		rot := blit.Rotation(float64(a))
		tint := blit.RGBA(1, 1, 1, alpha)
		bl.BlitSprite(out, sprite, image.Pt(step/2+i*step, y), &blit.Options{
			Blend:     blit.BlendAlpha,
			Transform: &rot,
			Sampling:  blit.SamplingBilinear,
			Tint:      &tint,
		})
		a, _ = angle.Update(dt)
		alpha, _ = fade.Update(dt)
	}
}
