package blit

import (
	"image"
	"math"
	"testing"
)

func TestCropToViewportUntransformed(t *testing.T) {
	viewport := image.Rect(0, 0, 100, 100)
	tests := []struct {
		name  string
		local image.Rectangle
		pos   image.Point
		want  image.Rectangle
	}{
		{"inside", image.Rect(0, 0, 4, 4), image.Pt(10, 10), image.Rect(10, 10, 14, 14)},
		{"pivot offset", image.Rect(-2, -3, 2, 1), image.Pt(10, 10), image.Rect(8, 7, 12, 11)},
		{"clipped left", image.Rect(0, 0, 8, 8), image.Pt(-4, 50), image.Rect(0, 50, 4, 58)},
		{"clipped right bottom", image.Rect(0, 0, 8, 8), image.Pt(96, 97), image.Rect(96, 97, 100, 100)},
		{"fully outside", image.Rect(0, 0, 8, 8), image.Pt(200, 10), image.Rectangle{}},
		{"touching edge", image.Rect(0, 0, 8, 8), image.Pt(100, 0), image.Rectangle{}},
		{"empty sprite", image.Rect(0, 0, 0, 5), image.Pt(10, 10), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cropToViewport(viewport, tt.local, tt.pos, nil)
			if got != tt.want && !(got.Empty() && tt.want.Empty()) {
				t.Errorf("cropToViewport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCropToViewportTransformed(t *testing.T) {
	viewport := image.Rect(0, 0, 100, 100)
	rot90 := Rotation(math.Pi / 2)
	scale2 := Scaling(2, 2)
	id := Identity()
	flip := FlipX()

	tests := []struct {
		name  string
		local image.Rectangle
		pos   image.Point
		tr    *Transform
		want  image.Rectangle
	}{
		{"identity adds inclusive margin", image.Rect(0, 0, 4, 4), image.Pt(10, 10), &id, image.Rect(10, 10, 15, 15)},
		{"scale", image.Rect(0, 0, 4, 4), image.Pt(10, 10), &scale2, image.Rect(10, 10, 19, 19)},
		{"flip around pivot", image.Rect(-2, 0, 2, 4), image.Pt(10, 10), &flip, image.Rect(8, 10, 13, 15)},
		// Corners map to x in [-4, 0], y in [0, 4] (within float error).
		{"rotate 90", image.Rect(0, 0, 4, 4), image.Pt(50, 50), &rot90, image.Rect(45, 49, 51, 55)},
		{"clipped", image.Rect(0, 0, 4, 4), image.Pt(98, 98), &id, image.Rect(98, 98, 100, 100)},
		{"outside", image.Rect(0, 0, 4, 4), image.Pt(-50, -50), &scale2, image.Rectangle{}},
		{"empty sprite", image.Rect(0, 0, 4, 0), image.Pt(10, 10), &scale2, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cropToViewport(viewport, tt.local, tt.pos, tt.tr)
			if tt.name == "rotate 90" {
				// Float error can move a rotated corner across an integer.
				if !got.In(tt.want) || !image.Rect(46, 50, 50, 54).In(got) {
					t.Errorf("cropToViewport() = %v, want within %v", got, tt.want)
				}
				return
			}
			if got != tt.want && !(got.Empty() && tt.want.Empty()) {
				t.Errorf("cropToViewport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCropToViewportCoversTransformedCorners(t *testing.T) {
	viewport := image.Rect(-1000, -1000, 1000, 1000)
	local := image.Rect(-5, -7, 11, 9)
	pos := image.Pt(3, -2)
	for i := range 24 {
		tr := Rotation(float64(i) * math.Pi / 12).Then(Scaling(1.5, 0.75))
		box := cropToViewport(viewport, local, pos, &tr)
		for _, c := range []image.Point{local.Min, {local.Max.X, local.Min.Y}, {local.Min.X, local.Max.Y}, local.Max} {
			v := tr.Apply([2]float32{float32(c.X), float32(c.Y)})
			x, y := v[0]+float32(pos.X), v[1]+float32(pos.Y)
			if x < float32(box.Min.X) || x >= float32(box.Max.X) || y < float32(box.Min.Y) || y >= float32(box.Max.Y) {
				t.Errorf("angle %d: corner (%v, %v) outside box %v", i, x, y, box)
			}
		}
	}
}

func TestFloorInt(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{1.5, 1},
		{-0.5, -1},
		{-2, -2},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), math.MaxInt32},
		{float32(math.Inf(-1)), math.MinInt32},
	}
	for _, tt := range tests {
		if got := floorInt(tt.in); got != tt.want {
			t.Errorf("floorInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
