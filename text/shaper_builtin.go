package text

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It places glyphs by their advances and kerning pairs, and reorders
// right-to-left runs with the Unicode bidirectional algorithm. It supports
// Latin, Cyrillic, Greek, CJK and unjoined Hebrew.
//
// It does not do:
//   - Ligature substitution (fi, fl, etc.)
//   - Contextual forms (Arabic joining)
//   - Mark positioning
//
// For these features, use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	runes := []rune(text)
	dir := ResolveDirection(text, face.Direction())
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	prev, hasPrev := GlyphID(0), false
	for _, run := range visualRuns(text, dir) {
		for i := range run.end - run.start {
			cluster := run.start + i
			if run.rtl() {
				cluster = run.end - 1 - i
			}
			gid := face.GlyphIndex(runes[cluster])
			if hasPrev {
				x += face.Kern(prev, gid)
			}
			advance := face.GlyphAdvance(gid)

			result = append(result, ShapedGlyph{
				GID:      gid,
				Cluster:  cluster,
				X:        x,
				XAdvance: advance,
			})

			x += advance
			prev, hasPrev = gid, true
		}
	}

	return result
}
