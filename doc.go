// Package blit provides a software blitter for 2D sprites and solid colors.
//
// # Overview
//
// blit draws into CPU-side 32-bit framebuffers. A draw call crops the
// sprite's footprint to the output viewport, stages the visible pixels,
// applies optional color adjustments, and hands the result to a merge step
// that blends it into the output.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/blit"
//		"github.com/gogpu/blit/bitmap"
//	)
//
//	out := blit.NewOutput(bitmap.New(320, 240))
//	bl := blit.New()
//
//	bl.BlitColor(out, blit.RGB(0.1, 0.1, 0.2), blit.BlendOpaque)
//
//	rot := blit.Rotation(math.Pi / 6)
//	bl.BlitSprite(out, sprite, image.Pt(160, 120), &blit.Options{
//		Blend:     blit.BlendAlpha,
//		Transform: &rot,
//		Sampling:  blit.SamplingBilinear,
//	})
//
// # Sprites
//
// Sprites come in two kinds: direct-color (Sprite) and palette-indexed
// (IndexedSprite). Both carry a pivot, the sprite pixel placed at the draw
// position and the center of any transformation. Palette indices at or
// beyond the palette length draw as transparent.
//
// # Staging
//
// An untransformed direct-color sprite without adjustments is merged
// straight from its own pixels. Everything else is copied into a scratch
// buffer owned by the Blitter: indexed sprites are resolved through the
// palette, transformed sprites are resampled, and adjusted sprites are
// modified there. Caller sprites are never written to.
//
// Adjustments run in a fixed order: tint, then added color, then the
// red/blue swap.
//
// # Pixel Format
//
// Pixels are packed as 0xAABBGGRR with straight alpha, the in-memory layout
// of image.NRGBA on little-endian machines.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Positive rotation angles turn clockwise on screen
//
// # Concurrency
//
// A Blitter is not safe for concurrent use. Use one per goroutine; they
// share nothing but the package logger.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
