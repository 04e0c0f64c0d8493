package blit

import "image"

// Option configures a Draw call.
// Use functional options to select blending, opacity and the source region.
//
// Example:
//
//	// Plain copy of the whole source to (10, 20)
//	err := blit.Draw(dst, src, image.Pt(10, 20))
//
//	// Blend a sprite at half opacity
//	err := blit.Draw(dst, sprite, pt, blit.WithBlend(), blit.WithOpacity(0x80))
type Option func(*drawOptions)

// drawOptions holds optional configuration for a Draw call.
type drawOptions struct {
	blend      bool
	hasOpacity bool
	opacity    uint8
	region     image.Rectangle
}

// defaultOptions returns the options of a plain copy of the whole source.
func defaultOptions() drawOptions {
	return drawOptions{
		opacity: 0xFF,
	}
}

// mode maps the two option axes onto an operating mode.
func (o drawOptions) mode() mode {
	switch {
	case o.blend && o.hasOpacity:
		return modeBlendOpacity
	case o.blend:
		return modeBlend
	case o.hasOpacity:
		return modeCopyAlpha
	default:
		return modeCopy
	}
}

// WithBlend alpha-blends the source over the destination using the source
// pixels' alpha channel. Sources without alpha are copied.
func WithBlend() Option {
	return func(o *drawOptions) {
		o.blend = true
	}
}

// WithOpacity applies an external opacity. Without WithBlend the pixels are
// copied and the destination alpha is set to sourceAlpha*opacity; with
// WithBlend the opacity scales the blend after the source alpha.
func WithOpacity(opacity uint8) Option {
	return func(o *drawOptions) {
		o.hasOpacity = true
		o.opacity = opacity
	}
}

// WithSourceRect restricts the blit to a region of the source.
// An empty rectangle selects the whole source.
func WithSourceRect(r image.Rectangle) Option {
	return func(o *drawOptions) {
		o.region = r
	}
}
