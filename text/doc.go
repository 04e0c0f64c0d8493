// Package text draws text onto blit views.
//
// Glyphs are rasterized into 8-bit coverage masks (format A-8) and painted
// with blit.BlendMask, so text can be drawn into any of the packed formats.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data,
//     caches glyph masks)
//   - Face: lightweight font instance at a specific size
//   - Shaper: converts a string into positioned glyphs
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(16)
//	err = text.Draw(screen.Lock(blit.AccessReadWrite), "Hello", face, 10, 30, blit.RGB(1, 1, 1))
//
// The Go Regular font is built in; see DefaultSource.
//
// # Shaping
//
// The default BuiltinShaper places glyphs by their advances and the font's
// kerning table and reorders right-to-left runs with the Unicode
// bidirectional algorithm. GoTextShaper adds full OpenType shaping
// (ligatures, marks, complex scripts) through go-text/typesetting:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
package text
