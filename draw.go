package blit

import (
	"fmt"
	"image"

	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/color"
)

// Draw copies or blends src into dst with the source region's top-left
// corner placed at at. Options choose the operating mode:
//
//	no options                 copy, converting formats as needed
//	WithOpacity                copy, destination alpha = source alpha * opacity
//	WithBlend                  blend by source alpha
//	WithBlend + WithOpacity    blend by source alpha, then by opacity
//
// The region is clipped against both buffers; parts of the source that fall
// outside dst, including at negative coordinates, are skipped. A clipped
// area of zero is a successful no-op. Invalid formats, strides, access modes
// or inverted rectangles are reported before any pixel is written.
//
// dst and src must not overlap in memory.
func Draw(dst, src View, at image.Point, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return run(dst, src, at, o.region, o.mode(), o.opacity)
}

// Blit copies region of src to at in dst, converting pixel formats.
// An empty region copies the whole source.
func Blit(dst, src View, at image.Point, region image.Rectangle) error {
	return run(dst, src, at, region, modeCopy, 0xFF)
}

// BlitOpacity copies like Blit and sets the destination alpha to the source
// alpha scaled by opacity. Destinations without alpha get a plain copy.
func BlitOpacity(dst, src View, at image.Point, region image.Rectangle, opacity uint8) error {
	return run(dst, src, at, region, modeCopyAlpha, opacity)
}

// Blend alpha-blends region of src over dst using the source alpha.
// A source without an alpha channel is copied as by Blit.
func Blend(dst, src View, at image.Point, region image.Rectangle) error {
	return run(dst, src, at, region, modeBlend, 0xFF)
}

// BlendOpacity alpha-blends using the source alpha and then opacity.
// A source without an alpha channel is blended by opacity alone.
func BlendOpacity(dst, src View, at image.Point, region image.Rectangle, opacity uint8) error {
	return run(dst, src, at, region, modeBlendOpacity, opacity)
}

// BlendMask paints c through a coverage map: each mask pixel's alpha, then
// opacity, scales how far the destination moves toward c. Used for glyph
// masks in A-8 format; a mask without alpha paints c solidly.
//
// The alpha of c acts as a further opacity, Scale(alpha8(c), opacity), and
// c itself is painted opaque, so a destination alpha channel composes like
// source-over.
func BlendMask(dst, mask View, at image.Point, region image.Rectangle, c Color, opacity uint8) error {
	s, ok, err := prepare(dst, mask, at, region, true)
	if err != nil {
		logRejected(dst, mask, at, region, modeBlendOpacity, err)
		return err
	}
	opacity = blend.Scale(color.F32ToU8(c).A, opacity)
	if !ok || opacity == 0 {
		return nil
	}
	fn := dispatch().mask(dst.Format, mask.Format)
	if fn == nil {
		return fmt.Errorf("%w: no mask routine for %v <- %v", ErrInvalidFormat, dst.Format, mask.Format)
	}
	s.opacity = opacity
	c.A = 1
	fn(s, dst.Format.PixelFromColor(c))
	return nil
}

// Fill sets every pixel of r in dst to c. An empty r fills the whole view.
// No blending is done; c is converted to the view's format once.
func Fill(dst View, r image.Rectangle, c Color) error {
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("blit: fill: %w", err)
	}
	if !dst.Access.CanWrite() {
		return fmt.Errorf("%w: destination is %v", ErrAccessMode, dst.Access)
	}
	if err := checkRect(r); err != nil {
		return err
	}
	if r.Empty() {
		r = dst.Bounds()
	}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}

	word := dst.Format.PixelFromColor(c)
	store := dst.Format.Accessor().Store
	bpp := dst.Format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			store(row[x*bpp:], word)
		}
	}
	return nil
}
