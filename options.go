package blit

import "github.com/gogpu/blit/internal/blend"

// BlendMode defines how drawn pixels combine with the output.
type BlendMode uint8

const (
	// BlendOpaque overwrites the output.
	BlendOpaque BlendMode = iota

	// BlendAlpha composites with straight alpha (source over destination).
	BlendAlpha

	// BlendOneBit writes fully opaque pixels where source alpha is at least 0.5.
	BlendOneBit

	// BlendAdditive adds the alpha-weighted source color.
	BlendAdditive

	// BlendSubtractive subtracts the alpha-weighted source color.
	BlendSubtractive

	// BlendMultiplicative multiplies the output color by the source color.
	BlendMultiplicative

	// BlendMinimum keeps the per-channel minimum.
	BlendMinimum

	// BlendMaximum keeps the per-channel maximum.
	BlendMaximum
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendOpaque:
		return "Opaque"
	case BlendAlpha:
		return "Alpha"
	case BlendOneBit:
		return "OneBit"
	case BlendAdditive:
		return "Additive"
	case BlendSubtractive:
		return "Subtractive"
	case BlendMultiplicative:
		return "Multiplicative"
	case BlendMinimum:
		return "Minimum"
	case BlendMaximum:
		return "Maximum"
	default:
		return "Unknown"
	}
}

// mergeMode maps a blend mode onto the merge primitive's modes.
func (m BlendMode) mergeMode() blend.Mode {
	switch m {
	case BlendAlpha:
		return blend.ModeAlpha
	case BlendOneBit:
		return blend.ModeOneBit
	case BlendAdditive:
		return blend.ModeAdditive
	case BlendSubtractive:
		return blend.ModeSubtractive
	case BlendMultiplicative:
		return blend.ModeMultiplicative
	case BlendMinimum:
		return blend.ModeMinimum
	case BlendMaximum:
		return blend.ModeMaximum
	default:
		return blend.ModeOpaque
	}
}

// SamplingMode defines how a transformed sprite is sampled.
type SamplingMode uint8

const (
	// SamplingPoint selects the nearest source pixel.
	SamplingPoint SamplingMode = iota

	// SamplingBilinear blends the four nearest source pixels.
	SamplingBilinear
)

// String returns a string representation of the sampling mode.
func (m SamplingMode) String() string {
	switch m {
	case SamplingPoint:
		return "Point"
	case SamplingBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Options configures a single draw call. The zero value draws an
// untransformed, unadjusted sprite with BlendOpaque.
type Options struct {
	// Blend selects how pixels combine with the output.
	Blend BlendMode

	// Transform is an optional linear transformation around the sprite pivot.
	// If nil, the sprite is drawn axis-aligned at its native size.
	Transform *Transform

	// Sampling selects point or bilinear sampling for transformed sprites.
	// Untransformed sprites are always copied pixel for pixel.
	Sampling SamplingMode

	// Tint multiplies all four channels. Nil means no tint.
	Tint *Color

	// Added is added to the red, green and blue channels, saturating.
	// Its alpha is ignored. Nil means no added color.
	Added *Color

	// SwapRedBlue exchanges the red and blue channels of every pixel.
	SwapRedBlue bool
}

// Option configures a Blitter during creation.
// Use functional options to customize Blitter behavior.
//
// Example:
//
//	// Default blitter
//	b := blit.New()
//
//	// Pre-sized scratch buffer for 256x256 sprites
//	b := blit.New(blit.WithScratchCapacity(256 * 256))
type Option func(*blitterOptions)

// blitterOptions holds optional configuration for Blitter creation.
type blitterOptions struct {
	scratchCapacity int
	merger          Merger
}

// defaultOptions returns the default blitter options.
func defaultOptions() blitterOptions {
	return blitterOptions{
		merger: defaultMerger{},
	}
}

// WithScratchCapacity pre-allocates room for the given number of staged
// pixels, so draws up to that size never allocate.
func WithScratchCapacity(pixels int) Option {
	return func(o *blitterOptions) {
		o.scratchCapacity = max(0, pixels)
	}
}

// WithMerger sets the primitive that writes staged sprite pixels into the
// output. Use this to add depth testing or custom compositing.
// A nil merger restores the default.
func WithMerger(m Merger) Option {
	return func(o *blitterOptions) {
		if m == nil {
			m = defaultMerger{}
		}
		o.merger = m
	}
}
