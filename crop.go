package blit

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
)

// cropToViewport returns the part of the viewport a sprite can touch.
//
// local is the sprite rectangle in sprite-local space (its origin is minus the
// pivot) and pos is the output position the pivot lands on. With a transform,
// the bounding box of the four transformed corners is widened to whole pixels:
// floor on the min corner, floor+1 on the max corner. That over-covers by up
// to one pixel per side; pixels in the margin sample outside the sprite and
// come back transparent.
func cropToViewport(viewport, local image.Rectangle, pos image.Point, t *Transform) image.Rectangle {
	if local.Empty() {
		return image.Rectangle{}
	}

	var box image.Rectangle
	if t == nil {
		box = local.Add(pos)
	} else {
		lo := f32.Vec2{math.MaxFloat32, math.MaxFloat32}
		hi := f32.Vec2{-math.MaxFloat32, -math.MaxFloat32}
		corners := [4]image.Point{
			local.Min,
			{local.Max.X, local.Min.Y},
			{local.Min.X, local.Max.Y},
			local.Max,
		}
		for _, c := range corners {
			v := t.Apply(f32.Vec2{float32(c.X), float32(c.Y)})
			v[0] += float32(pos.X)
			v[1] += float32(pos.Y)
			lo[0], lo[1] = min(lo[0], v[0]), min(lo[1], v[1])
			hi[0], hi[1] = max(hi[0], v[0]), max(hi[1], v[1])
		}
		box = image.Rect(
			floorInt(lo[0]), floorInt(lo[1]),
			floorInt(hi[0])+1, floorInt(hi[1])+1,
		)
	}

	return box.Intersect(viewport)
}

// floorInt floors v, saturating at the int32 range so that huge or
// non-finite corners cannot overflow the rectangle arithmetic.
func floorInt(v float32) int {
	f := math.Floor(float64(v))
	switch {
	case math.IsNaN(f):
		return 0
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}
