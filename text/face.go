package text

import "golang.org/x/image/math/fixed"

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// NewFace parses data and returns a face of the given size.
// It is a shorthand for NewFontSource followed by FontSource.Face.
func NewFace(data []byte, size float64, opts ...FaceOption) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	s, err := NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return s.Face(size, opts...), nil
}

// DefaultFace returns a face of the built-in Go Regular font.
func DefaultFace(size float64, opts ...FaceOption) *Face {
	return DefaultSource().Face(size, opts...)
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Direction returns the base text direction for this face.
func (f *Face) Direction() Direction { return f.config.direction }

// Hinting returns the hinting mode for this face.
func (f *Face) Hinting() Hinting { return f.config.hinting }

// Language returns the language tag for this face.
func (f *Face) Language() string { return f.config.language }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	return f.source.metrics(f.ppem(), f.config.hinting)
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.glyphIndex(r) != 0
}

// GlyphIndex returns the glyph for r, or 0 if the font has none.
func (f *Face) GlyphIndex(r rune) GlyphID {
	return f.source.glyphIndex(r)
}

// GlyphAdvance returns the advance width of a glyph in pixels.
func (f *Face) GlyphAdvance(gid GlyphID) float64 {
	return fixedToFloat(f.source.glyphAdvance(gid, f.ppem(), f.config.hinting))
}

// Kern returns the kerning adjustment between two glyphs in pixels.
func (f *Face) Kern(a, b GlyphID) float64 {
	return fixedToFloat(f.source.kern(a, b, f.ppem(), f.config.hinting))
}

// Advance returns the total advance width of the text in pixels, as
// shaped by the current global shaper.
func (f *Face) Advance(text string) float64 {
	glyphs := Shape(text, f)
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	end := last.X + last.XAdvance
	for _, g := range glyphs {
		end = max(end, g.X+g.XAdvance)
	}
	return end
}

func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}
