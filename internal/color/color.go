// Package color provides the format-independent color types used by
// gogpu/blit and their conversions to image/color.
//
// Components are linear channel intensities; no gamma curve is applied.
package color

// ColorF32 represents a color with float32 components in [0,1].
// It is the interchange type between pixel formats: a format reads its
// pixel words into a ColorF32 and writes a ColorF32 back into a word.
// Color is not premultiplied by alpha.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// Color is not premultiplied by alpha.
type ColorU8 struct {
	R, G, B, A uint8
}

// Opaque reports whether the alpha component is at least 1.
func (c ColorF32) Opaque() bool {
	return c.A >= 1
}

// Clamp returns c with every component clamped to [0,1].
func (c ColorF32) Clamp() ColorF32 {
	return ColorF32{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float32) float32 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 1
	}
	return v
}
