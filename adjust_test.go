package blit

import (
	"image"
	"math/rand"
	"slices"
	"testing"

	"github.com/gogpu/blit/bitmap"
)

// randomBitmap fills a bitmap with reproducible noise.
func randomBitmap(seed int64, w, h int) bitmap.Bitmap {
	rng := rand.New(rand.NewSource(seed))
	b := bitmap.New(w, h)
	for i := range b.Pix() {
		b.Pix()[i] = rng.Uint32()
	}
	return b
}

func TestNeedsAdjustment(t *testing.T) {
	white := White
	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{"none", Options{}, false},
		{"blend and transform only", Options{Blend: BlendAlpha, Sampling: SamplingBilinear}, false},
		{"tint", Options{Tint: &white}, true},
		{"added", Options{Added: &white}, true},
		{"swap", Options{SwapRedBlue: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsAdjustment(&tt.opts); got != tt.want {
				t.Errorf("needsAdjustment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTintIdentity(t *testing.T) {
	b := randomBitmap(1, 17, 5)
	want := slices.Clone(b.Pix())
	white := RGBA(1, 1, 1, 1)
	applyTint(b, &white)
	if !slices.Equal(b.Pix(), want) {
		t.Error("tint (1,1,1,1) changed pixel data")
	}
}

func TestTint(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		tint Color
		want uint32
	}{
		{"half", bitmap.Pack(200, 100, 50, 255), RGBA(0.5, 0.5, 0.5, 0.5), bitmap.Pack(100, 50, 25, 127)},
		{"per channel", bitmap.Pack(255, 255, 255, 255), RGBA(1, 0, 0.25, 1), bitmap.Pack(255, 0, 63, 255)},
		{"saturates", bitmap.Pack(200, 10, 0, 100), RGBA(2, 2, 2, 2), bitmap.Pack(255, 20, 0, 200)},
		{"zero", bitmap.Pack(200, 100, 50, 255), Transparent, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bitmap.New(1, 1)
			b.Set(0, 0, tt.in)
			applyTint(b, &tt.tint)
			if got := b.At(0, 0); got != tt.want {
				t.Errorf("applyTint(%#x, %v) = %#x, want %#x", tt.in, tt.tint, got, tt.want)
			}
		})
	}
}

func TestAddIdentity(t *testing.T) {
	b := randomBitmap(2, 9, 9)
	want := slices.Clone(b.Pix())
	zero := RGBA(0, 0, 0, 1)
	applyAdd(b, &zero)
	if !slices.Equal(b.Pix(), want) {
		t.Error("added color (0,0,0) changed pixel data")
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		in    uint32
		added Color
		want  uint32
	}{
		{"green onto red", bitmap.Pack(255, 0, 0, 255), RGB(0, 1, 0), bitmap.Pack(255, 255, 0, 255)},
		{"partial", bitmap.Pack(10, 20, 30, 40), RGB(0.5, 0, 0.1), bitmap.Pack(138, 20, 56, 40)},
		{"saturates", bitmap.Pack(200, 200, 200, 7), RGB(0.5, 0.5, 0.5), bitmap.Pack(255, 255, 255, 7)},
		{"alpha ignored", bitmap.Pack(1, 2, 3, 4), RGBA(0, 0, 0, 1), bitmap.Pack(1, 2, 3, 4)},
		{"above one clamps", bitmap.Pack(0, 0, 0, 0), RGB(3, 0, 0), bitmap.Pack(255, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bitmap.New(1, 1)
			b.Set(0, 0, tt.in)
			applyAdd(b, &tt.added)
			if got := b.At(0, 0); got != tt.want {
				t.Errorf("applyAdd(%#x, %v) = %#x, want %#x", tt.in, tt.added, got, tt.want)
			}
		})
	}
}

func TestSwapRedBlue(t *testing.T) {
	row := []uint32{bitmap.Pack(1, 2, 3, 4), bitmap.Pack(5, 6, 7, 8), bitmap.Pack(9, 10, 11, 12)}
	swapRedBlue(row)
	want := []uint32{bitmap.Pack(3, 2, 1, 4), bitmap.Pack(7, 6, 5, 8), bitmap.Pack(11, 10, 9, 12)}
	if !slices.Equal(row, want) {
		t.Errorf("swapRedBlue() = %x, want %x", row, want)
	}
}

func TestSwapRedBlueWideMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := range 20 {
		row := make([]uint32, n)
		for i := range row {
			row[i] = rng.Uint32()
		}
		wide := slices.Clone(row)
		scalar := slices.Clone(row)
		swapRedBlue(wide)
		swapRedBlueScalar(scalar)
		if !slices.Equal(wide, scalar) {
			t.Fatalf("len %d: wide = %x, scalar = %x", n, wide, scalar)
		}
	}
}

func TestSwapRedBlueTwiceRestores(t *testing.T) {
	b := randomBitmap(4, 13, 7)
	want := slices.Clone(b.Pix())
	opts := &Options{SwapRedBlue: true}
	adjust(b, opts)
	if slices.Equal(b.Pix(), want) {
		t.Fatal("single swap left random data unchanged")
	}
	adjust(b, opts)
	if !slices.Equal(b.Pix(), want) {
		t.Error("double swap did not restore the original pixels")
	}
}

func TestAdjustOrder(t *testing.T) {
	// Tint first halves red, add then fills blue, swap finally exchanges them.
	b := bitmap.New(1, 1)
	b.Set(0, 0, bitmap.Pack(200, 0, 0, 255))
	tint := RGBA(0.5, 1, 1, 1)
	added := RGB(0, 0, 1)
	adjust(b, &Options{Tint: &tint, Added: &added, SwapRedBlue: true})

	if got, want := b.At(0, 0), bitmap.Pack(255, 0, 100, 255); got != want {
		t.Errorf("adjust() = %#x, want %#x", got, want)
	}
}

func TestAdjustRespectsStride(t *testing.T) {
	parent := bitmap.New(4, 2)
	parent.Fill(bitmap.Pack(1, 2, 3, 4))

	region := parent.SubView(image.Rect(1, 0, 3, 2))
	adjust(region, &Options{SwapRedBlue: true})
	for y := range 2 {
		for x := range 4 {
			want := bitmap.Pack(1, 2, 3, 4)
			if x == 1 || x == 2 {
				want = bitmap.Pack(3, 2, 1, 4)
			}
			if got := parent.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func BenchmarkSwapRedBlue(b *testing.B) {
	row := make([]uint32, 1024)
	for i := 0; i < b.N; i++ {
		swapRedBlue(row)
	}
}

func BenchmarkSwapRedBlueScalar(b *testing.B) {
	row := make([]uint32, 1024)
	for i := 0; i < b.N; i++ {
		swapRedBlueScalar(row)
	}
}

func BenchmarkTint(b *testing.B) {
	bm := randomBitmap(5, 64, 64)
	tint := RGBA(0.8, 0.6, 0.4, 1)
	for i := 0; i < b.N; i++ {
		applyTint(bm, &tint)
	}
}
