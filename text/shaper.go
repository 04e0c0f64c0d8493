package text

import "sync"

// ShapedGlyph is a glyph positioned relative to the text origin on the
// baseline. X grows right and Y grows down.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first rune this glyph was shaped from.
	Cluster int

	// X, Y is the glyph origin.
	X, Y float64

	// XAdvance, YAdvance is how far the pen moves after this glyph.
	XAdvance, YAdvance float64
}

// Shaper converts text to positioned glyphs.
// Glyphs are returned in visual order, left to right.
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face *Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape, Draw and Measure.
// Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, face *Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}
