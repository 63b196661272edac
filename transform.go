package blit

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Transform is a 2x2 linear transformation together with its inverse.
//
// M maps sprite-local coordinates to output offsets from the draw position:
//
//	x' = M[0]*x + M[1]*y
//	y' = M[2]*x + M[3]*y
//
// Inv must be the inverse of M. The blitter uses M only to bound the sprite's
// footprint and Inv to sample it; it never inverts a matrix itself, so an
// inconsistent pair draws garbage rather than failing.
type Transform struct {
	M   [4]float32
	Inv [4]float32
}

// NewTransform pairs a matrix with a caller-computed inverse.
func NewTransform(m, inv [4]float32) Transform {
	return Transform{M: m, Inv: inv}
}

// Identity returns the identity transformation.
func Identity() Transform {
	id := [4]float32{1, 0, 0, 1}
	return Transform{M: id, Inv: id}
}

// Rotation returns a rotation by angle (in radians) around the pivot.
// With y pointing down, positive angles rotate clockwise on screen.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	s, c := float32(sin), float32(cos)
	return Transform{
		M:   [4]float32{c, -s, s, c},
		Inv: [4]float32{c, s, -s, c},
	}
}

// Scaling returns a scale by (sx, sy) around the pivot.
// Use negative values to flip. A zero factor yields a zero inverse, which
// samples only the pivot pixel.
func Scaling(sx, sy float32) Transform {
	return Transform{
		M:   [4]float32{sx, 0, 0, sy},
		Inv: [4]float32{recip(sx), 0, 0, recip(sy)},
	}
}

// FlipX mirrors horizontally around the pivot.
func FlipX() Transform { return Scaling(-1, 1) }

// FlipY mirrors vertically around the pivot.
func FlipY() Transform { return Scaling(1, -1) }

// Then returns the transformation that applies t first and next second.
// The inverse is composed in reverse order, so it stays consistent with M.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		M:   mul(next.M, t.M),
		Inv: mul(t.Inv, next.Inv),
	}
}

// Apply maps a sprite-local point to an offset in output space.
func (t Transform) Apply(v f32.Vec2) f32.Vec2 {
	return apply(t.M, v)
}

// ApplyInverse maps an output-space offset back into sprite-local space.
func (t Transform) ApplyInverse(v f32.Vec2) f32.Vec2 {
	return apply(t.Inv, v)
}

func apply(m [4]float32, v f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

// mul returns a*b.
func mul(a, b [4]float32) [4]float32 {
	return [4]float32{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

func recip(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}
